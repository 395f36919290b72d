package models

import (
	"time"

	"github.com/google/uuid"
)

// Invoice statuses
const (
	InvoiceStatusSent    = "sent"
	InvoiceStatusPaid    = "paid"
	InvoiceStatusOverdue = "overdue"
)

// Shipment statuses
const (
	ShipmentStatusPreparing = "preparing"
	ShipmentStatusInTransit = "in_transit"
	ShipmentStatusDelivered = "delivered"
)

// Invoice is issued one-to-one with an order. Totals are copied from the
// order at creation; the invoice status moves independently afterwards.
type Invoice struct {
	ID            uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	InvoiceNumber string    `gorm:"uniqueIndex;not null" json:"invoice_number"`
	OrderID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"order_id"`
	Subtotal      int       `gorm:"not null" json:"subtotal"`
	Tax           int       `gorm:"not null" json:"tax"`
	Total         int       `gorm:"not null" json:"total"`
	IssueDate     time.Time `gorm:"not null" json:"issue_date"`
	DueDate       time.Time `gorm:"not null" json:"due_date"`
	Status        string    `gorm:"type:varchar(20);not null;default:'sent'" json:"status"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// Shipment exists only for approved orders.
type Shipment struct {
	ID                    uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrderID               uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex" json:"order_id"`
	LocationID            uuid.UUID  `gorm:"type:uuid;not null;index" json:"location_id"`
	Status                string     `gorm:"type:varchar(20);not null;default:'preparing'" json:"status"`
	EstimatedDeliveryDate time.Time  `gorm:"not null" json:"estimated_delivery_date"`
	ShippedAt             *time.Time `json:"shipped_at,omitempty"`
	DeliveredAt           *time.Time `json:"delivered_at,omitempty"`
	CreatedAt             time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt             time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}
