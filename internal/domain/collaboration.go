package domain

import "time"

// Collaboration request statuses
const (
	RequestPending  = "pending"  // Awaiting a response
	RequestAccepted = "accepted" // Granted by a company admin
	RequestRejected = "rejected" // Declined by a company admin
)

// CollaborationRequest Model: a user asking to join a company with a role
type CollaborationRequest struct {
	ID                uint       `gorm:"primaryKey" json:"id"`                        // Primary key
	RequestingUserID  uint       `gorm:"not null" json:"requesting_user_id"`          // User asking for access
	TargetCompanyID   uint       `gorm:"not null" json:"target_company_id"`           // Company being joined
	RequestedRole     string     `gorm:"type:varchar(20);not null" json:"requested_role"` // Role being asked for, never owner
	Status            string     `gorm:"type:varchar(10);not null" json:"status"`     // One of the Request constants
	CreatedAt         time.Time  `json:"created_at"`                                  // Timestamp of creation
	RespondedAt       *time.Time `json:"responded_at,omitempty"`                      // When the request was answered
	RespondedByUserID *uint      `json:"responded_by_user_id,omitempty"`              // Who answered the request
}
