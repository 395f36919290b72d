package models

import "time"

// Order event types published to SNS/Kafka and consumed from SQS.
const (
	EventOrderCreated   = "order_created"
	EventOrderApproved  = "order_approved"
	EventOrderRejected  = "order_rejected"
	EventOrderShipped   = "order_shipped"
	EventOrderDelivered = "order_delivered"
	EventLowStock       = "low_stock"
)

// OrderEvent is the wire payload for every order lifecycle transition.
type OrderEvent struct {
	EventType   string    `json:"event_type"`
	OrderID     string    `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	LocationID  string    `json:"location_id"`
	Status      string    `json:"status"`
	Total       int       `json:"total,omitempty"`
	Reason      string    `json:"reason,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// LowStockEvent is emitted when a reservation leaves a record at or below
// its reorder level.
type LowStockEvent struct {
	EventType         string    `json:"event_type"`
	LocationID        string    `json:"location_id"`
	ProductID         string    `json:"product_id"`
	AvailableQuantity int       `json:"available_quantity"`
	ReorderLevel      int       `json:"reorder_level"`
	Timestamp         time.Time `json:"timestamp"`
}
