// Package config loads client settings from an optional YAML file and
// environment variables. Environment values win over the file.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all client settings.
type Config struct {
	API APIConfig `yaml:"api"`
	DB  DBConfig  `yaml:"db"`
	Log LogConfig `yaml:"log"`
}

type APIConfig struct {
	// BaseURL is the API origin; requests go to <BaseURL>/api/...
	BaseURL string `yaml:"base_url"`
}

type DBConfig struct {
	Path string `yaml:"path"`
}

type LogConfig struct {
	Level    string `yaml:"level"`
	Requests bool   `yaml:"requests"`
}

// Default returns the settings used when nothing is configured. The token
// store lives under home.
func Default(home string) Config {
	return Config{
		API: APIConfig{BaseURL: "http://localhost:3000"},
		DB:  DBConfig{Path: filepath.Join(home, ".tenement", "tenement.db")},
		Log: LogConfig{Level: "warn"},
	}
}

// Load reads TENEMENT_CONFIG_PATH (if set) and then the TENEMENT_*
// environment overrides.
func Load() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("finding home directory: %w", err)
	}
	cfg := Default(home)

	if path := os.Getenv("TENEMENT_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if v := os.Getenv("TENEMENT_BASE_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv("TENEMENT_DB"); v != "" {
		cfg.DB.Path = v
	}
	if v := os.Getenv("TENEMENT_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("TENEMENT_LOG_REQUESTS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid TENEMENT_LOG_REQUESTS: %w", err)
		}
		cfg.Log.Requests = b
	}

	cfg.API.BaseURL = strings.TrimRight(cfg.API.BaseURL, "/")
	if cfg.API.BaseURL == "" {
		return Config{}, fmt.Errorf("api base url is empty")
	}
	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

// SlogLevel maps Log.Level to a slog level. Unknown names fall back to warn.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
