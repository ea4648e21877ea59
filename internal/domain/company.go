package domain

import (
	"time"

	"gorm.io/gorm" // GORM ORM library
)

// Company Model
type Company struct {
	ID          uint           `gorm:"primaryKey" json:"id"`                                                  // Primary key
	Name        string         `gorm:"type:varchar(100);not null" json:"name"`                                // Display name, original casing
	NameKey     string         `gorm:"type:varchar(100);uniqueIndex:uniq_companies_name;not null" json:"-"`   // Lowercased name, authoritative uniqueness guard
	OwnerUserID *uint          `json:"owner_user_id"`                                                         // Owner user ID, set at creation
	Industry    string         `gorm:"type:varchar(100)" json:"industry,omitempty"`                           // Optional industry metadata
	Address     string         `gorm:"type:varchar(255)" json:"address,omitempty"`                            // Optional address metadata
	CreatedAt   time.Time      `json:"created_at"`                                                            // Timestamp of creation
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                                                        // Soft delete marker

	// Role assignments and financial rows scoped to this company, removed with it
	Roles        []UserCompanyRole `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE" json:"-"`
	Accounts     []Account         `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE" json:"-"`
	Categories   []Category        `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE" json:"-"`
	Transactions []Transaction     `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE" json:"-"`
}

// Role values a user can hold within a company
const (
	RoleOwner      = "owner"      // Company owner
	RoleAdmin      = "admin"      // Administrator
	RoleAccountant = "accountant" // Accountant
	RoleMember     = "member"     // Regular member
)

// UserCompanyRole Model: grants a user a single role within a company
type UserCompanyRole struct {
	ID        uint      `gorm:"primaryKey" json:"id"`                                       // Primary key
	UserID    uint      `gorm:"uniqueIndex:uniq_user_company;not null" json:"user_id"`      // Foreign key to User
	CompanyID uint      `gorm:"uniqueIndex:uniq_user_company;not null" json:"company_id"`   // Foreign key to Company
	Role      string    `gorm:"type:varchar(20);not null" json:"role"`                      // One of the Role constants
	CreatedAt time.Time `json:"created_at"`                                                 // Timestamp of creation
}
