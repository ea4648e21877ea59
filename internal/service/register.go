package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"contabilito/internal/domain" // Domain models and errors
	"contabilito/internal/store"  // Credential store

	"golang.org/x/crypto/bcrypt" // Password hashing
)

// MinPasswordLength is the shortest password accepted at registration.
const MinPasswordLength = 6

// Registration coordinates the atomic multi-row registration write:
// user insert, optional company insert, optional owner role insert.
type Registration struct {
	store        *store.Store
	requireTerms bool
}

// NewRegistration returns a coordinator bound to the given store.
// requireTerms controls server-side enforcement of the terms checkbox.
func NewRegistration(st *store.Store, requireTerms bool) *Registration {
	return &Registration{store: st, requireTerms: requireTerms}
}

// RegisterInput carries the registration form fields.
type RegisterInput struct {
	FirstName     string // First name, required
	LastName      string // Last name, required
	Username      string // Username, required, unique
	Email         string // Email, required, unique
	Password      string // Plaintext password, hashed before storage
	TermsAccepted bool   // Terms and conditions flag
	CompanyName   string // Optional, non-blank triggers company creation
}

// RegisterResult reports the rows created by a successful registration.
type RegisterResult struct {
	UserID    uint  // ID of the new user
	CompanyID *uint // ID of the new company, nil when none was requested
}

// Register validates the input, hashes the password, and creates the user
// plus, when a company name is given, the company and its owner role row,
// all inside one transaction. Any failure rolls every write back: the user
// row never survives a company name conflict or a constraint race.
func (r *Registration) Register(ctx context.Context, in RegisterInput) (*RegisterResult, error) {
	// Validation happens before any storage access
	if in.FirstName == "" || in.LastName == "" || in.Username == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrMissingField
	}
	if r.requireTerms && !in.TermsAccepted {
		return nil, domain.ErrTermsNotAccepted
	}
	if len(in.Password) < MinPasswordLength {
		return nil, domain.ErrWeakPassword
	}

	// Only the hash is ever stored
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	var result RegisterResult
	err = r.store.RunInTransaction(ctx, func(tx *store.Store) error {
		user := &domain.User{
			Email:         in.Email,
			Username:      in.Username,
			PasswordHash:  string(hash),
			FirstName:     in.FirstName,
			LastName:      in.LastName,
			TermsAccepted: in.TermsAccepted,
		}
		if err := tx.InsertUser(ctx, user); err != nil {
			return err
		}
		result.UserID = user.ID

		name := strings.TrimSpace(in.CompanyName)
		if name == "" {
			return nil // No company requested
		}

		// Pre-check is an optimization for a clean conflict message; the
		// unique index on name_key is the correctness mechanism under races
		if _, err := tx.FindCompanyByName(ctx, name); err == nil {
			return &domain.ConflictError{Constraint: domain.ConstraintCompanyName}
		} else if !errors.Is(err, domain.ErrNotFound) {
			return err
		}

		company := &domain.Company{Name: name, OwnerUserID: &user.ID}
		if err := tx.InsertCompany(ctx, company); err != nil {
			return err
		}

		role := &domain.UserCompanyRole{
			UserID:    user.ID,
			CompanyID: company.ID,
			Role:      domain.RoleOwner,
		}
		if err := tx.InsertRole(ctx, role); err != nil {
			return err
		}
		result.CompanyID = &company.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
