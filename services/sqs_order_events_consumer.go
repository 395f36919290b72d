package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"

	aws_pkg "franchise-service/pkg/aws"

	"franchise-service/models"
	"franchise-service/repository"
)

// SQSOrderEventsConsumer consumes order lifecycle events from SQS and turns
// them into in-app notification rows for the dashboard.
type SQSOrderEventsConsumer struct {
	sqsConsumer *aws_pkg.SQSConsumer
	repo        repository.NotificationRepository
}

// NewSQSOrderEventsConsumer creates a new SQS-based order events consumer.
func NewSQSOrderEventsConsumer(sqsConsumer *aws_pkg.SQSConsumer, repo repository.NotificationRepository) *SQSOrderEventsConsumer {
	return &SQSOrderEventsConsumer{
		sqsConsumer: sqsConsumer,
		repo:        repo,
	}
}

// Start begins polling the order events queue.
func (c *SQSOrderEventsConsumer) Start(ctx context.Context) {
	log.Println("[OrderEventsConsumer] Starting order events queue consumer")

	err := c.sqsConsumer.StartPolling(ctx, func(ctx context.Context, body string) error {
		return c.HandleMessage(ctx, body)
	})
	if err != nil && err != context.Canceled {
		log.Printf("[OrderEventsConsumer] polling error: %v", err)
	}
}

// HandleMessage processes a single raw SQS message body.
func (c *SQSOrderEventsConsumer) HandleMessage(ctx context.Context, body string) error {
	// Unwrap SNS envelope if present
	var snsEnvelope struct {
		Message string `json:"Message"`
	}
	if err := json.Unmarshal([]byte(body), &snsEnvelope); err == nil && snsEnvelope.Message != "" {
		body = snsEnvelope.Message
	}

	var evt models.OrderEvent
	if err := json.Unmarshal([]byte(body), &evt); err != nil {
		log.Printf("[OrderEventsConsumer] invalid JSON: %v payload=%s", err, body)
		return nil // don't retry invalid JSON
	}
	if evt.EventType == "" || evt.OrderID == "" {
		log.Printf("[OrderEventsConsumer] missing event_type or order_id, skipping")
		return nil
	}

	orderID, err := uuid.Parse(evt.OrderID)
	if err != nil {
		log.Printf("[OrderEventsConsumer] invalid order_id UUID: %s", evt.OrderID)
		return nil
	}

	notification := &models.Notification{
		RecipientRole: recipientForEvent(evt.EventType),
		EventType:     evt.EventType,
		OrderID:       orderID,
		Message:       messageForEvent(evt),
	}
	if err := c.repo.Create(ctx, notification); err != nil {
		// Returning the error leaves the message visible for a retry.
		return fmt.Errorf("failed to store notification: %w", err)
	}
	return nil
}

// recipientForEvent routes creation events to the franchisor (who must act
// on them) and lifecycle updates back to the franchisee.
func recipientForEvent(eventType string) string {
	if eventType == models.EventOrderCreated || eventType == models.EventLowStock {
		return models.RoleFranchisor
	}
	return models.RoleFranchisee
}

func messageForEvent(evt models.OrderEvent) string {
	switch evt.EventType {
	case models.EventOrderCreated:
		return fmt.Sprintf("Order %s awaiting approval", evt.OrderNumber)
	case models.EventOrderApproved:
		return fmt.Sprintf("Order %s approved and being prepared", evt.OrderNumber)
	case models.EventOrderRejected:
		if evt.Reason != "" {
			return fmt.Sprintf("Order %s rejected: %s", evt.OrderNumber, evt.Reason)
		}
		return fmt.Sprintf("Order %s rejected", evt.OrderNumber)
	case models.EventOrderShipped:
		return fmt.Sprintf("Order %s is on its way", evt.OrderNumber)
	case models.EventOrderDelivered:
		return fmt.Sprintf("Order %s delivered", evt.OrderNumber)
	default:
		return fmt.Sprintf("Order %s: %s", evt.OrderNumber, evt.EventType)
	}
}
