package models

import (
	"time"

	"github.com/google/uuid"
)

// Location statuses
const (
	LocationStatusOpen      = "open"
	LocationStatusClosed    = "closed"
	LocationStatusSuspended = "suspended"
)

// FranchiseLocation is a single franchisee-operated site.
type FranchiseLocation struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Status       string    `gorm:"type:varchar(20);not null;default:'open'" json:"status"`
	FranchiseeID uuid.UUID `gorm:"type:uuid;not null;index" json:"franchisee_id"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// Product is a catalog item franchisees order from the franchisor.
// Price is stored in minor units.
type Product struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	SKU         string    `gorm:"uniqueIndex;not null" json:"sku"`
	Name        string    `gorm:"not null" json:"name"`
	Active      bool      `gorm:"not null;default:true" json:"active"`
	Price       int       `gorm:"not null" json:"price"`
	MinOrderQty int       `gorm:"not null;default:1" json:"min_order_qty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
