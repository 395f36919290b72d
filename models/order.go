package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Order statuses
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// Order priorities
const (
	OrderPriorityStandard = "standard"
	OrderPriorityUrgent   = "urgent"
)

// TaxRateBps is the flat order tax rate in basis points.
const TaxRateBps = 800

// Order is a franchisee stock request against the franchisor catalog.
// All money fields are minor units.
type Order struct {
	ID              uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrderNumber     string    `gorm:"uniqueIndex;not null" json:"order_number"`
	LocationID      uuid.UUID `gorm:"type:uuid;not null;index" json:"location_id"`
	PlacedByID      uuid.UUID `gorm:"type:uuid;not null;index" json:"placed_by_id"`
	Priority        string    `gorm:"type:varchar(20);not null;default:'standard'" json:"priority"`
	Status          string    `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	Subtotal        int       `gorm:"not null" json:"subtotal"`
	Tax             int       `gorm:"not null" json:"tax"`
	Total           int       `gorm:"not null" json:"total"`
	RejectionReason string    `json:"rejection_reason,omitempty"`
	IdempotencyKey  *string   `gorm:"uniqueIndex" json:"-"`
	ApprovedAt      *time.Time
	CancelledAt     *time.Time
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
	Items           []OrderItem    `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
}

// OrderItem captures the unit price at order time.
type OrderItem struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index" json:"order_id"`
	ProductID uuid.UUID `gorm:"type:uuid;not null" json:"product_id"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	UnitPrice int       `gorm:"not null" json:"unit_price"`
}

// ValidationResult collects business-rule violations. Errors block the
// pipeline, warnings do not. It is never persisted.
type ValidationResult struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// Merge folds another result into this one.
func (v *ValidationResult) Merge(other ValidationResult) {
	v.Errors = append(v.Errors, other.Errors...)
	v.Warnings = append(v.Warnings, other.Warnings...)
	v.Valid = len(v.Errors) == 0
}
