package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"contabilito/internal/domain" // Domain models and errors

	"gorm.io/gorm" // GORM ORM library
)

// FindUserByIdentifier returns the non-deleted user whose email or username
// matches the identifier, case-insensitively. Both columns are stored
// lowercase, so lowering the probe keeps the comparison index-friendly.
func (s *Store) FindUserByIdentifier(ctx context.Context, identifier string) (*domain.User, error) {
	ident := strings.ToLower(strings.TrimSpace(identifier))
	var user domain.User
	err := s.db.WithContext(ctx).
		Where("email = ? OR username = ?", ident, ident).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by identifier: %w", err)
	}
	return &user, nil
}

// FindCompanyByName returns the non-deleted company whose name matches,
// case-insensitively and ignoring surrounding whitespace.
func (s *Store) FindCompanyByName(ctx context.Context, name string) (*domain.Company, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	var company domain.Company
	err := s.db.WithContext(ctx).
		Where("name_key = ?", key).
		First(&company).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find company by name: %w", err)
	}
	return &company, nil
}

// InsertUser appends one user row and fills in the generated ID. Email and
// username are normalized to lowercase at write time, so the unique indexes
// are the authoritative case-insensitivity guard.
func (s *Store) InsertUser(ctx context.Context, user *domain.User) error {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	user.Username = strings.ToLower(strings.TrimSpace(user.Username))
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return s.translateConflict(err)
	}
	return nil
}

// InsertCompany appends one company row and fills in the generated ID.
// Display casing is kept; the lowercased name key enforces uniqueness.
func (s *Store) InsertCompany(ctx context.Context, company *domain.Company) error {
	company.Name = strings.TrimSpace(company.Name)
	company.NameKey = strings.ToLower(company.Name)
	if err := s.db.WithContext(ctx).Create(company).Error; err != nil {
		return s.translateConflict(err)
	}
	return nil
}

// InsertRole appends one role assignment row and fills in the generated ID.
func (s *Store) InsertRole(ctx context.Context, role *domain.UserCompanyRole) error {
	if err := s.db.WithContext(ctx).Create(role).Error; err != nil {
		return fmt.Errorf("failed to insert role: %w", err)
	}
	return nil
}

// translateConflict maps a duplicate-key error onto the domain conflict
// naming the violated constraint. MySQL reports "Duplicate entry ... for key"
// with the index name, SQLite "UNIQUE constraint failed" with the
// table.column pair, so both spellings are matched.
func (s *Store) translateConflict(err error) error {
	msg := err.Error()
	if !strings.Contains(msg, "Duplicate entry") && !strings.Contains(msg, "UNIQUE constraint failed") {
		return fmt.Errorf("insert failed: %w", err)
	}
	switch {
	case strings.Contains(msg, "uniq_users_email") || strings.Contains(msg, "users.email"):
		return &domain.ConflictError{Constraint: domain.ConstraintUserEmail}
	case strings.Contains(msg, "uniq_users_username") || strings.Contains(msg, "users.username"):
		return &domain.ConflictError{Constraint: domain.ConstraintUserUsername}
	case strings.Contains(msg, "uniq_companies_name") || strings.Contains(msg, "companies.name_key"):
		return &domain.ConflictError{Constraint: domain.ConstraintCompanyName}
	case strings.Contains(msg, "uniq_company_account") || strings.Contains(msg, "accounts."):
		return &domain.ConflictError{Constraint: domain.ConstraintAccountName}
	}
	return fmt.Errorf("insert failed: %w", err)
}
