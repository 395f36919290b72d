package models

import (
	"time"

	"github.com/google/uuid"
)

// Movement types
const (
	MovementTypeIn  = "in"
	MovementTypeOut = "out"
)

// Movement reference types
const (
	ReferenceOrderReservation  = "order_reservation"
	ReferenceOrderCancellation = "order_cancellation"
	ReferenceRestock           = "restock"
)

// InventoryRecord tracks stock for one (location, product) pair.
// Rows are only ever updated, never deleted.
type InventoryRecord struct {
	ID                uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	LocationID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_location_product" json:"location_id"`
	ProductID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_location_product" json:"product_id"`
	AvailableQuantity int       `gorm:"not null;default:0" json:"available_quantity"`
	ReorderLevel      int       `gorm:"not null;default:0" json:"reorder_level"`
	MaxStockLevel     int       `gorm:"not null;default:0" json:"max_stock_level"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// InventoryMovement is an append-only ledger entry. QuantityChange is
// negative for reservations and positive for releases/restocks.
type InventoryMovement struct {
	ID             uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	LocationID     uuid.UUID `gorm:"type:uuid;not null;index" json:"location_id"`
	ProductID      uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	QuantityChange int       `gorm:"not null" json:"quantity_change"`
	MovementType   string    `gorm:"type:varchar(10);not null" json:"movement_type"`
	ReferenceType  string    `gorm:"type:varchar(30);not null" json:"reference_type"`
	ReferenceID    uuid.UUID `gorm:"type:uuid;index" json:"reference_id"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// ReorderSuggestion is the recommendation helper's output. Not persisted.
type ReorderSuggestion struct {
	ProductID         uuid.UUID `json:"product_id"`
	AvailableQuantity int       `json:"available_quantity"`
	ReorderLevel      int       `json:"reorder_level"`
	SuggestedQuantity int       `json:"suggested_quantity"`
	Priority          string    `json:"priority"`
}

// Recommendation priorities
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)
