package store

import (
	"context"

	"contabilito/internal/domain" // Domain models and errors

	"gorm.io/driver/mysql" // MySQL driver for GORM
	"gorm.io/gorm"         // GORM ORM library
)

// Store is the credential and ledger store backing the whole application.
// One Store is opened at boot and passed by reference into services and
// handlers; each test opens its own isolated instance.
type Store struct {
	db *gorm.DB
}

// Open connects to MySQL and returns a Store.
func Open(dsn string) (*Store, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// New wraps an already-opened gorm connection.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// EnsureSchema idempotently provisions every table and constraint.
// Safe to call on every process start.
func (s *Store) EnsureSchema() error {
	return s.db.AutoMigrate(
		&domain.User{},
		&domain.Company{},
		&domain.UserCompanyRole{},
		&domain.Account{},
		&domain.Category{},
		&domain.Transaction{},
		&domain.CollaborationRequest{},
	)
}

// RunInTransaction runs work inside one database transaction. The work
// receives a transactional Store; a nil return commits every write as one
// unit, any error rolls them all back and is returned to the caller.
func (s *Store) RunInTransaction(ctx context.Context, work func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return work(&Store{db: tx})
	})
}
