package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/tenement/internal/db"
)

// SQLiteKVStore implements KVStore on the kv_store table.
type SQLiteKVStore struct {
	db db.DBTX
}

// NewSQLiteKVStore creates a KVStore over conn, which may be a *sql.DB or a
// transaction handed out by a UnitOfWork.
func NewSQLiteKVStore(conn db.DBTX) *SQLiteKVStore {
	return &SQLiteKVStore{db: conn}
}

func (r *SQLiteKVStore) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM kv_store WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("kv %q: %w", key, ErrNotFound)
		}
		return "", fmt.Errorf("reading kv %q: %w", key, err)
	}
	return value, nil
}

func (r *SQLiteKVStore) Set(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO kv_store (key, value, updated_at) VALUES (?, ?, ?)`,
		key, value, nowUTC())
	if err != nil {
		return fmt.Errorf("writing kv %q: %w", key, err)
	}
	return nil
}

func (r *SQLiteKVStore) Delete(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		if _, err := r.db.ExecContext(ctx, `DELETE FROM kv_store WHERE key = ?`, key); err != nil {
			return fmt.Errorf("deleting kv %q: %w", key, err)
		}
	}
	return nil
}
