package domain

import (
	"time"

	"gorm.io/gorm" // GORM ORM library
)

// Transaction types
const (
	TypeIncome  = "income"  // Money coming in
	TypeExpense = "expense" // Money going out
)

// Transaction Model: a financial record scoped to a company
type Transaction struct {
	ID              uint           `gorm:"primaryKey" json:"id"`                      // Primary key
	CompanyID       uint           `gorm:"not null;index" json:"company_id"`          // Foreign key to Company
	UserID          uint           `gorm:"not null" json:"user_id"`                   // User who recorded the transaction
	AccountID       uint           `gorm:"not null" json:"account_id"`                // Foreign key to Account
	CategoryID      *uint          `json:"category_id,omitempty"`                     // Optional foreign key to Category
	Type            string         `gorm:"type:varchar(10);not null" json:"type"`     // Transaction type: income or expense
	Amount          float64        `gorm:"not null" json:"amount"`                    // Transaction amount
	Description     string         `gorm:"type:varchar(255)" json:"description"`      // Free-form description
	TransactionDate time.Time      `gorm:"not null;index" json:"transaction_date"`    // Date the transaction applies to
	CreatedAt       time.Time      `json:"created_at"`                                // Timestamp of creation
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`                            // Soft delete marker
}

// Account Model: a company ledger account
type Account struct {
	ID             uint           `gorm:"primaryKey" json:"id"`                                              // Primary key
	CompanyID      uint           `gorm:"uniqueIndex:uniq_company_account;not null" json:"company_id"`       // Foreign key to Company
	Name           string         `gorm:"type:varchar(100);uniqueIndex:uniq_company_account;not null" json:"name"` // Account name, unique within the company
	InitialBalance float64        `gorm:"not null;default:0" json:"initial_balance"`                         // Opening balance
	CreatedAt      time.Time      `json:"created_at"`                                                        // Timestamp of creation
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`                                                    // Soft delete marker
}

// Category Model: a company income/expense category
type Category struct {
	ID        uint           `gorm:"primaryKey" json:"id"`                                                       // Primary key
	CompanyID uint           `gorm:"uniqueIndex:uniq_company_category;not null" json:"company_id"`               // Foreign key to Company
	Name      string         `gorm:"type:varchar(100);uniqueIndex:uniq_company_category;not null" json:"name"`   // Category name, unique within the company
	Type      string         `gorm:"type:varchar(10);not null" json:"type"`                                      // Category type: income or expense
	CreatedAt time.Time      `json:"created_at"`                                                                 // Timestamp of creation
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                                                             // Soft delete marker
}
