package services

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	aws_pkg "franchise-service/pkg/aws"

	"franchise-service/kafka"
	"franchise-service/models"
)

// Notifier fans order lifecycle events out to SNS and Kafka. Delivery is
// best-effort: callers log the returned error and carry on.
type Notifier interface {
	PublishOrderEvent(ctx context.Context, event models.OrderEvent) error
	PublishLowStock(ctx context.Context, event models.LowStockEvent) error
}

type notifierImpl struct {
	snsClient   aws_pkg.SNSPublisher
	snsTopicArn string
	producer    kafka.ProducerAPI
	logger      *zap.Logger
}

// NewNotifier creates a Notifier. Either transport may be nil/empty; the
// notifier then only logs.
func NewNotifier(snsClient aws_pkg.SNSPublisher, snsTopicArn string, producer kafka.ProducerAPI, logger *zap.Logger) Notifier {
	return &notifierImpl{
		snsClient:   snsClient,
		snsTopicArn: snsTopicArn,
		producer:    producer,
		logger:      logger,
	}
}

func (n *notifierImpl) PublishOrderEvent(ctx context.Context, event models.OrderEvent) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	n.logger.Info("Order event",
		zap.String("event_type", event.EventType),
		zap.String("order_id", event.OrderID),
		zap.String("order_number", event.OrderNumber),
		zap.String("status", event.Status),
	)

	b, err := json.Marshal(event)
	if err != nil {
		n.logger.Error("Failed to marshal order event", zap.Error(err))
		return err
	}
	return n.publish(ctx, event.OrderID, b)
}

func (n *notifierImpl) PublishLowStock(ctx context.Context, event models.LowStockEvent) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	n.logger.Warn("Low stock",
		zap.String("location_id", event.LocationID),
		zap.String("product_id", event.ProductID),
		zap.Int("available", event.AvailableQuantity),
		zap.Int("reorder_level", event.ReorderLevel),
	)

	b, err := json.Marshal(event)
	if err != nil {
		n.logger.Error("Failed to marshal low stock event", zap.Error(err))
		return err
	}
	return n.publish(ctx, event.ProductID, b)
}

// publish sends to both transports and returns the first failure after
// attempting all of them.
func (n *notifierImpl) publish(ctx context.Context, key string, payload []byte) error {
	var firstErr error

	if n.snsClient != nil && n.snsTopicArn != "" {
		if err := n.snsClient.Publish(ctx, n.snsTopicArn, payload); err != nil {
			n.logger.Error("Failed to publish SNS event", zap.Error(err))
			firstErr = err
		}
	}

	if n.producer != nil {
		if err := n.producer.Publish(key, payload); err != nil {
			n.logger.Error("Failed to publish Kafka event", zap.Error(err))
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	return firstErr
}
