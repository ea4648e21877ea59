package service

import (
	"context"
	"errors"
	"fmt"

	"contabilito/internal/domain" // Domain models and errors
	"contabilito/internal/store"  // Credential store

	"golang.org/x/crypto/bcrypt" // Password verification
)

// Auth verifies credentials against the store.
type Auth struct {
	store *store.Store
}

// NewAuth returns an authenticator bound to the given store.
func NewAuth(st *store.Store) *Auth {
	return &Auth{store: st}
}

// Login looks the user up by email or username, case-insensitively, and
// verifies the password against the stored hash. An unknown identifier and
// a wrong password both return domain.ErrInvalidCredentials so the response
// never reveals which one it was.
func (a *Auth) Login(ctx context.Context, identifier, password string) (*domain.User, error) {
	if identifier == "" || password == "" {
		return nil, domain.ErrMissingCredentials
	}

	user, err := a.store.FindUserByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}
