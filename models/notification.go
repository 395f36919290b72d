package models

import (
	"time"

	"github.com/google/uuid"
)

// Notification recipient roles
const (
	RoleFranchisor = "franchisor"
	RoleFranchisee = "franchisee"
)

// Notification is an in-app notification row written by the order-events
// consumer for the dashboard.
type Notification struct {
	ID            uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	RecipientRole string    `gorm:"type:varchar(20);not null;index" json:"recipient_role"`
	EventType     string    `gorm:"type:varchar(40);not null" json:"event_type"`
	OrderID       uuid.UUID `gorm:"type:uuid;index" json:"order_id"`
	Message       string    `gorm:"not null" json:"message"`
	Read          bool      `gorm:"not null;default:false" json:"read"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}
