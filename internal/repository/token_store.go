package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/tenement/internal/db"
)

// Fixed storage keys.
const (
	KeyToken     = "token"
	KeyUserEmail = "user_email"
)

// TokenStore persists the session token and the account it was issued to.
// Both keys are written and cleared together.
type TokenStore struct {
	kv  KVStore
	uow db.UnitOfWork
}

// NewTokenStore creates a TokenStore. kv serves plain reads; uow scopes the
// paired writes.
func NewTokenStore(kv KVStore, uow db.UnitOfWork) *TokenStore {
	return &TokenStore{kv: kv, uow: uow}
}

// Load returns the stored token, or "" when nobody is logged in.
func (s *TokenStore) Load(ctx context.Context) (string, error) {
	tok, err := s.kv.Get(ctx, KeyToken)
	if errors.Is(err, ErrNotFound) {
		return "", nil
	}
	return tok, err
}

// Account returns the email stored at login, or "".
func (s *TokenStore) Account(ctx context.Context) (string, error) {
	email, err := s.kv.Get(ctx, KeyUserEmail)
	if errors.Is(err, ErrNotFound) {
		return "", nil
	}
	return email, err
}

// Save stores token and account in one transaction.
func (s *TokenStore) Save(ctx context.Context, token, account string) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		kv := NewSQLiteKVStore(tx)
		if err := kv.Set(ctx, KeyToken, token); err != nil {
			return err
		}
		return kv.Set(ctx, KeyUserEmail, account)
	})
}

// Clear removes token and account in one transaction.
func (s *TokenStore) Clear(ctx context.Context) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return NewSQLiteKVStore(tx).Delete(ctx, KeyToken, KeyUserEmail)
	})
}
