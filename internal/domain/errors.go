package domain

import "errors"

// Unique constraint names reported by conflict errors
const (
	ConstraintUserEmail    = "user.email"    // users.email unique index
	ConstraintUserUsername = "user.username" // users.username unique index
	ConstraintCompanyName  = "company.name"  // companies.name_key unique index
	ConstraintAccountName  = "account.name"  // accounts (company_id, name) unique index
)

// Validation and authentication failures
var (
	ErrNotFound           = errors.New("record not found")                              // Lookup matched nothing
	ErrMissingField       = errors.New("all required fields must be completed")         // A required registration field is absent
	ErrTermsNotAccepted   = errors.New("the terms and conditions must be accepted")     // Terms flag not set
	ErrWeakPassword       = errors.New("password must be at least 6 characters long")   // Password below minimum length
	ErrMissingCredentials = errors.New("user/email and password are required")          // Login input incomplete
	ErrInvalidCredentials = errors.New("invalid credentials")                           // Unknown identifier or wrong password, intentionally indistinct
)

// ConflictError reports a violated uniqueness invariant, naming the constraint.
type ConflictError struct {
	Constraint string // One of the Constraint constants
}

// Error returns the client-facing message for the violated constraint.
func (e *ConflictError) Error() string {
	switch e.Constraint {
	case ConstraintUserEmail:
		return "this email is already registered"
	case ConstraintUserUsername:
		return "this username is already in use"
	case ConstraintCompanyName:
		return "a company with this name already exists"
	case ConstraintAccountName:
		return "an account with this name already exists"
	}
	return "unique constraint violated: " + e.Constraint
}

// IsConflict reports whether err is a uniqueness conflict.
func IsConflict(err error) bool {
	var conflict *ConflictError
	return errors.As(err, &conflict)
}
