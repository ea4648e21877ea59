package domain

import (
	"time"

	"gorm.io/gorm" // GORM ORM library
)

// User Model
type User struct {
	ID                  uint           `gorm:"primaryKey" json:"id"`                                                      // Primary key
	Email               string         `gorm:"type:varchar(100);uniqueIndex:uniq_users_email;not null" json:"email"`     // Unique email, stored lowercase
	Username            string         `gorm:"type:varchar(50);uniqueIndex:uniq_users_username;not null" json:"username"` // Unique username, stored lowercase
	PasswordHash        string         `gorm:"type:varchar(255);not null" json:"-"`                                       // Hashed password, never serialized
	FirstName           string         `gorm:"type:varchar(50);not null" json:"first_name"`                               // First name
	LastName            string         `gorm:"type:varchar(50);not null" json:"last_name"`                                // Last name
	TermsAccepted       bool           `gorm:"not null" json:"terms_accepted"`                                            // Terms and conditions flag
	ResetToken          *string        `gorm:"type:varchar(255)" json:"-"`                                                // Password reset token, never serialized
	ResetTokenExpiresAt *time.Time     `json:"-"`                                                                         // Reset token expiry, never serialized
	CreatedAt           time.Time      `json:"created_at"`                                                                // Timestamp of creation
	DeletedAt           gorm.DeletedAt `gorm:"index" json:"-"`                                                            // Soft delete marker

	// One role per company for this user, removed together with the user
	Roles []UserCompanyRole `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// UserView is the sanitized user representation returned to clients.
// It carries no password hash and no reset token fields.
type UserView struct {
	ID        uint   `json:"id"`         // User ID
	Email     string `json:"email"`      // Email address
	Username  string `json:"username"`   // Username
	FirstName string `json:"first_name"` // First name
	LastName  string `json:"last_name"`  // Last name
}

// View returns the sanitized representation of the user.
func (u *User) View() UserView {
	return UserView{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}
