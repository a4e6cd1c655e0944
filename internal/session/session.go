// Package session holds the process-wide login state. Every component that
// needs the bearer token reads it from one Context instead of going to
// storage on its own.
package session

import (
	"context"
	"fmt"
	"sync"
)

// Store persists the token between invocations.
type Store interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, token, account string) error
	Clear(ctx context.Context) error
}

// Context is the single source of the current token.
type Context struct {
	mu      sync.RWMutex
	token   string
	account string
	store   Store
}

// accountStore is implemented by stores that also keep the login email.
type accountStore interface {
	Account(ctx context.Context) (string, error)
}

// Open reads the persisted token once and returns a Context backed by store.
func Open(ctx context.Context, store Store) (*Context, error) {
	tok, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading session token: %w", err)
	}
	s := &Context{token: tok, store: store}
	if as, ok := store.(accountStore); ok && tok != "" {
		if s.account, err = as.Account(ctx); err != nil {
			return nil, fmt.Errorf("loading session account: %w", err)
		}
	}
	return s, nil
}

// NewMemory returns a Context that is not persisted. Useful for tests and
// one-shot invocations with an explicit token.
func NewMemory(token string) *Context {
	return &Context{token: token}
}

// Token returns the current bearer token; "" means unauthenticated.
func (s *Context) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Account returns the email recorded at login, if any.
func (s *Context) Account() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.account
}

// IsLoggedIn reports whether a token is held.
func (s *Context) IsLoggedIn() bool {
	return s.Token() != ""
}

// Login stores a freshly issued token.
func (s *Context) Login(ctx context.Context, token, account string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.store != nil {
		if err := s.store.Save(ctx, token, account); err != nil {
			return fmt.Errorf("saving session token: %w", err)
		}
	}
	s.token = token
	s.account = account
	return nil
}

// Logout drops the token from memory and storage.
func (s *Context) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.store != nil {
		if err := s.store.Clear(ctx); err != nil {
			return fmt.Errorf("clearing session token: %w", err)
		}
	}
	s.token = ""
	s.account = ""
	return nil
}
