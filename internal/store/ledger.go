package store

import (
	"context"
	"errors"
	"fmt"

	"contabilito/internal/domain" // Domain models and errors

	"gorm.io/gorm" // GORM ORM library
)

// RoleFor returns the role the user holds within the company, or
// domain.ErrNotFound when no assignment exists.
func (s *Store) RoleFor(ctx context.Context, userID, companyID uint) (string, error) {
	var role domain.UserCompanyRole
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND company_id = ?", userID, companyID).
		First(&role).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("failed to look up role: %w", err)
	}
	return role.Role, nil
}

// CompanyBalance sums the initial balances of the company's non-deleted
// accounts. Soft-deleted rows are filtered by gorm automatically.
func (s *Store) CompanyBalance(ctx context.Context, companyID uint) (float64, error) {
	var total float64
	err := s.db.WithContext(ctx).
		Model(&domain.Account{}).
		Where("company_id = ?", companyID).
		Select("COALESCE(SUM(initial_balance), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to sum account balances: %w", err)
	}
	return total, nil
}

// LatestTransactions returns the company's most recent non-deleted
// transactions, newest transaction date first.
func (s *Store) LatestTransactions(ctx context.Context, companyID uint, limit int) ([]domain.Transaction, error) {
	var txs []domain.Transaction
	err := s.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("transaction_date desc").
		Limit(limit).
		Find(&txs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}
	return txs, nil
}

// FindAccount returns the company's account with the given ID, or
// domain.ErrNotFound when it does not exist or belongs to another company.
func (s *Store) FindAccount(ctx context.Context, companyID, accountID uint) (*domain.Account, error) {
	var account domain.Account
	err := s.db.WithContext(ctx).
		Where("id = ? AND company_id = ?", accountID, companyID).
		First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account: %w", err)
	}
	return &account, nil
}

// InsertAccount appends one account row and fills in the generated ID.
func (s *Store) InsertAccount(ctx context.Context, account *domain.Account) error {
	if err := s.db.WithContext(ctx).Create(account).Error; err != nil {
		return s.translateConflict(err)
	}
	return nil
}

// InsertTransaction appends one financial record and fills in the generated ID.
func (s *Store) InsertTransaction(ctx context.Context, tx *domain.Transaction) error {
	if err := s.db.WithContext(ctx).Create(tx).Error; err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	return nil
}
