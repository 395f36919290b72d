package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"franchise-service/models"
	"franchise-service/repository"
)

// ShipmentLeadDays is the delivery estimate attached to approved orders.
const ShipmentLeadDays = 7

// ServiceError is a typed error with an HTTP status code.
type ServiceError struct {
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string { return e.Message }

// CreateOrderRequest is a franchisee stock request.
type CreateOrderRequest struct {
	LocationID     uuid.UUID          `json:"location_id" binding:"required"`
	Priority       string             `json:"priority"`
	IdempotencyKey string             `json:"idempotency_key"`
	Items          []OrderItemRequest `json:"items"`
}

// OrderItemRequest is one requested line.
type OrderItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity"`
}

// OrderResult reports what the creation pipeline managed to do. Everything
// after the order insert is best-effort, so callers need to see which
// sub-steps failed to retry just those.
type OrderResult struct {
	Order               *models.Order   `json:"order"`
	Invoice             *models.Invoice `json:"invoice,omitempty"`
	Warnings            []string        `json:"warnings,omitempty"`
	Reserved            bool            `json:"reserved"`
	ReservationFailures []string        `json:"reservation_failures,omitempty"`
	InvoiceCreated      bool            `json:"invoice_created"`
	Notified            bool            `json:"notified"`
	Duplicate           bool            `json:"duplicate,omitempty"`
}

// TransitionResult reports an approval/rejection and its side effects.
type TransitionResult struct {
	Order           *models.Order    `json:"order"`
	Shipment        *models.Shipment `json:"shipment,omitempty"`
	ShipmentCreated bool             `json:"shipment_created,omitempty"`
	Released        bool             `json:"released,omitempty"`
	ReleaseFailures []string         `json:"release_failures,omitempty"`
	Notified        bool             `json:"notified"`
}

// OrderListResponse is the paginated listing payload.
type OrderListResponse struct {
	Orders []models.Order `json:"orders"`
	Meta   MetaData       `json:"meta"`
}

type MetaData struct {
	Page        int   `json:"page"`
	Limit       int   `json:"limit"`
	TotalOrders int64 `json:"total_orders"`
	TotalPages  int64 `json:"total_pages"`
	HasMore     bool  `json:"has_more"`
}

// OrderService drives the order lifecycle end to end.
type OrderService interface {
	CreateOrder(ctx context.Context, userID uuid.UUID, req *CreateOrderRequest) (*OrderResult, *ServiceError)
	ApproveOrder(ctx context.Context, orderID, approverID uuid.UUID) (*TransitionResult, *ServiceError)
	RejectOrder(ctx context.Context, orderID uuid.UUID, reason string) (*TransitionResult, *ServiceError)
	MarkShipped(ctx context.Context, orderID uuid.UUID) (*models.Order, *ServiceError)
	MarkDelivered(ctx context.Context, orderID uuid.UUID) (*models.Order, *ServiceError)
	GetOrder(ctx context.Context, orderID uuid.UUID) (*models.Order, *ServiceError)
	GetOrders(ctx context.Context, role string, locationID uuid.UUID, page, limit int) (*OrderListResponse, *ServiceError)
	GetMovements(ctx context.Context, orderID uuid.UUID) ([]models.InventoryMovement, *ServiceError)
	GetShipment(ctx context.Context, orderID uuid.UUID) (*models.Shipment, *ServiceError)
}

type orderServiceImpl struct {
	orderRepo     repository.OrderRepository
	catalogRepo   repository.CatalogRepository
	inventoryRepo repository.InventoryRepository
	shipmentRepo  repository.ShipmentRepository
	validation    ValidationService
	invoices      InvoiceService
	notifier      Notifier
	idempotency   IdempotencyStore
	logger        *zap.Logger
}

// NewOrderService creates a new OrderService. idempotency may be nil, in
// which case duplicate requests are not detected.
func NewOrderService(
	orderRepo repository.OrderRepository,
	catalogRepo repository.CatalogRepository,
	inventoryRepo repository.InventoryRepository,
	shipmentRepo repository.ShipmentRepository,
	validation ValidationService,
	invoices InvoiceService,
	notifier Notifier,
	idempotency IdempotencyStore,
	logger *zap.Logger,
) OrderService {
	return &orderServiceImpl{
		orderRepo:     orderRepo,
		catalogRepo:   catalogRepo,
		inventoryRepo: inventoryRepo,
		shipmentRepo:  shipmentRepo,
		validation:    validation,
		invoices:      invoices,
		notifier:      notifier,
		idempotency:   idempotency,
		logger:        logger,
	}
}

// CreateOrder runs the full pipeline: validate, check inventory, persist,
// reserve, invoice, notify. Validation failures abort before any write.
func (s *orderServiceImpl) CreateOrder(ctx context.Context, userID uuid.UUID, req *CreateOrderRequest) (*OrderResult, *ServiceError) {
	if req.IdempotencyKey != "" && s.idempotency != nil {
		existing, err := s.idempotency.Get(ctx, req.IdempotencyKey)
		if err != nil {
			s.logger.Warn("Idempotency lookup failed", zap.Error(err))
		} else if existing != "" {
			s.logger.Info("Duplicate order request",
				zap.String("idempotency_key", req.IdempotencyKey),
				zap.String("order_id", existing),
			)
			orderID, parseErr := uuid.Parse(existing)
			if parseErr == nil {
				if order, findErr := s.orderRepo.FindByID(ctx, orderID); findErr == nil {
					return &OrderResult{Order: order, Duplicate: true}, nil
				}
			}
			return nil, &ServiceError{StatusCode: 409, Message: "Order already created for this idempotency key"}
		}
	}

	result := &OrderResult{}

	vres, err := s.validation.ValidateOrder(ctx, req)
	if err != nil {
		s.logger.Error("Order validation failed", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to validate order"}
	}

	ires, err := s.validation.CheckInventory(ctx, req)
	if err != nil {
		s.logger.Error("Inventory check failed", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to check inventory"}
	}
	vres.Merge(ires)

	if !vres.Valid {
		return nil, &ServiceError{StatusCode: 400, Message: strings.Join(vres.Errors, "; ")}
	}
	result.Warnings = vres.Warnings

	order, svcErr := s.buildOrder(ctx, userID, req)
	if svcErr != nil {
		return nil, svcErr
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		s.logger.Error("Failed to persist order", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to create order"}
	}
	result.Order = order

	// Reservations run after the insert; a failure here leaves the order
	// persisted and is reported in the result instead of rolled back.
	result.Reserved = true
	for _, item := range order.Items {
		if err := s.reserveItem(ctx, order, item); err != nil {
			result.Reserved = false
			result.ReservationFailures = append(result.ReservationFailures,
				fmt.Sprintf("product %s: %v", item.ProductID, err))
		}
	}

	invoice, err := s.invoices.GenerateForOrder(ctx, order)
	if err != nil {
		s.logger.Error("Invoice creation failed",
			zap.String("order_id", order.ID.String()),
			zap.Error(err),
		)
	} else {
		result.Invoice = invoice
		result.InvoiceCreated = true
	}

	notifyErr := s.notifier.PublishOrderEvent(ctx, models.OrderEvent{
		EventType:   models.EventOrderCreated,
		OrderID:     order.ID.String(),
		OrderNumber: order.OrderNumber,
		LocationID:  order.LocationID.String(),
		Status:      order.Status,
		Total:       order.Total,
	})
	result.Notified = notifyErr == nil

	if req.IdempotencyKey != "" && s.idempotency != nil {
		if err := s.idempotency.Set(ctx, req.IdempotencyKey, order.ID.String()); err != nil {
			s.logger.Warn("Failed to store idempotency key", zap.Error(err))
		}
	}

	s.logger.Info("Order created",
		zap.String("order_id", order.ID.String()),
		zap.String("order_number", order.OrderNumber),
		zap.Bool("reserved", result.Reserved),
		zap.Bool("invoice_created", result.InvoiceCreated),
	)
	return result, nil
}

// buildOrder prices the request against the current catalog.
func (s *orderServiceImpl) buildOrder(ctx context.Context, userID uuid.UUID, req *CreateOrderRequest) (*models.Order, *ServiceError) {
	ids := make([]uuid.UUID, 0, len(req.Items))
	for _, item := range req.Items {
		ids = append(ids, item.ProductID)
	}
	products, err := s.catalogRepo.FindProductsByIDs(ctx, ids)
	if err != nil {
		s.logger.Error("Failed to price order items", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to create order"}
	}
	priceByID := make(map[uuid.UUID]int, len(products))
	for _, p := range products {
		priceByID[p.ID] = p.Price
	}

	priority := req.Priority
	if priority == "" {
		priority = models.OrderPriorityStandard
	}

	order := &models.Order{
		OrderNumber: generateOrderNumber(),
		LocationID:  req.LocationID,
		PlacedByID:  userID,
		Priority:    priority,
		Status:      models.OrderStatusPending,
	}
	if req.IdempotencyKey != "" {
		key := req.IdempotencyKey
		order.IdempotencyKey = &key
	}

	subtotal := 0
	for _, item := range req.Items {
		unitPrice := priceByID[item.ProductID]
		subtotal += unitPrice * item.Quantity
		order.Items = append(order.Items, models.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: unitPrice,
		})
	}
	order.Subtotal = subtotal
	order.Tax = subtotal * models.TaxRateBps / 10000
	order.Total = order.Subtotal + order.Tax

	return order, nil
}

// reserveItem decrements stock with a conditional update, then appends the
// reservation to the movement ledger and raises a low-stock event if the
// record landed at or below its reorder level.
func (s *orderServiceImpl) reserveItem(ctx context.Context, order *models.Order, item models.OrderItem) error {
	if err := s.inventoryRepo.ReserveStock(ctx, order.LocationID, item.ProductID, item.Quantity); err != nil {
		if errors.Is(err, repository.ErrStockConflict) {
			s.logger.Warn("Stock moved between check and reservation",
				zap.String("order_id", order.ID.String()),
				zap.String("product_id", item.ProductID.String()),
				zap.Int("quantity", item.Quantity),
			)
		}
		return err
	}

	movement := &models.InventoryMovement{
		LocationID:     order.LocationID,
		ProductID:      item.ProductID,
		QuantityChange: -item.Quantity,
		MovementType:   models.MovementTypeOut,
		ReferenceType:  models.ReferenceOrderReservation,
		ReferenceID:    order.ID,
	}
	if err := s.inventoryRepo.CreateMovement(ctx, movement); err != nil {
		return err
	}

	if rec, err := s.inventoryRepo.FindRecord(ctx, order.LocationID, item.ProductID); err == nil {
		if rec.AvailableQuantity <= rec.ReorderLevel {
			_ = s.notifier.PublishLowStock(ctx, models.LowStockEvent{
				EventType:         models.EventLowStock,
				LocationID:        order.LocationID.String(),
				ProductID:         item.ProductID.String(),
				AvailableQuantity: rec.AvailableQuantity,
				ReorderLevel:      rec.ReorderLevel,
			})
		}
	}

	return nil
}

// ApproveOrder moves a pending order to processing and opens a shipment.
func (s *orderServiceImpl) ApproveOrder(ctx context.Context, orderID, approverID uuid.UUID) (*TransitionResult, *ServiceError) {
	order, svcErr := s.GetOrder(ctx, orderID)
	if svcErr != nil {
		return nil, svcErr
	}
	if order.Status != models.OrderStatusPending {
		return nil, &ServiceError{StatusCode: 409, Message: fmt.Sprintf("Only pending orders can be approved; order is %s", order.Status)}
	}

	now := time.Now()
	order.Status = models.OrderStatusProcessing
	order.ApprovedAt = &now
	if err := s.orderRepo.Update(ctx, order); err != nil {
		s.logger.Error("Failed to update order status", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to approve order"}
	}

	result := &TransitionResult{Order: order}

	shipment := &models.Shipment{
		OrderID:               order.ID,
		LocationID:            order.LocationID,
		Status:                models.ShipmentStatusPreparing,
		EstimatedDeliveryDate: now.AddDate(0, 0, ShipmentLeadDays),
	}
	if err := s.shipmentRepo.Create(ctx, shipment); err != nil {
		// Order stays processing without a shipment; the result flags it.
		s.logger.Error("Shipment creation failed after approval",
			zap.String("order_id", order.ID.String()),
			zap.Error(err),
		)
	} else {
		result.Shipment = shipment
		result.ShipmentCreated = true
	}

	notifyErr := s.notifier.PublishOrderEvent(ctx, models.OrderEvent{
		EventType:   models.EventOrderApproved,
		OrderID:     order.ID.String(),
		OrderNumber: order.OrderNumber,
		LocationID:  order.LocationID.String(),
		Status:      order.Status,
	})
	result.Notified = notifyErr == nil

	s.logger.Info("Order approved",
		zap.String("order_id", order.ID.String()),
		zap.String("approver_id", approverID.String()),
		zap.Bool("shipment_created", result.ShipmentCreated),
	)
	return result, nil
}

// RejectOrder cancels a pending order and releases its reservations.
func (s *orderServiceImpl) RejectOrder(ctx context.Context, orderID uuid.UUID, reason string) (*TransitionResult, *ServiceError) {
	order, svcErr := s.GetOrder(ctx, orderID)
	if svcErr != nil {
		return nil, svcErr
	}
	if order.Status != models.OrderStatusPending {
		return nil, &ServiceError{StatusCode: 409, Message: fmt.Sprintf("Only pending orders can be rejected; order is %s", order.Status)}
	}

	now := time.Now()
	order.Status = models.OrderStatusCancelled
	order.RejectionReason = reason
	order.CancelledAt = &now
	if err := s.orderRepo.Update(ctx, order); err != nil {
		s.logger.Error("Failed to update order status", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to reject order"}
	}

	result := &TransitionResult{Order: order, Released: true}

	for _, item := range order.Items {
		if err := s.releaseItem(ctx, order, item); err != nil {
			// Stock stays reserved for this item; flagged for retry.
			s.logger.Error("Inventory release failed after rejection",
				zap.String("order_id", order.ID.String()),
				zap.String("product_id", item.ProductID.String()),
				zap.Error(err),
			)
			result.Released = false
			result.ReleaseFailures = append(result.ReleaseFailures,
				fmt.Sprintf("product %s: %v", item.ProductID, err))
		}
	}

	notifyErr := s.notifier.PublishOrderEvent(ctx, models.OrderEvent{
		EventType:   models.EventOrderRejected,
		OrderID:     order.ID.String(),
		OrderNumber: order.OrderNumber,
		LocationID:  order.LocationID.String(),
		Status:      order.Status,
		Reason:      reason,
	})
	result.Notified = notifyErr == nil

	s.logger.Info("Order rejected",
		zap.String("order_id", order.ID.String()),
		zap.String("reason", reason),
		zap.Bool("released", result.Released),
	)
	return result, nil
}

func (s *orderServiceImpl) releaseItem(ctx context.Context, order *models.Order, item models.OrderItem) error {
	if err := s.inventoryRepo.ReleaseStock(ctx, order.LocationID, item.ProductID, item.Quantity); err != nil {
		return err
	}
	return s.inventoryRepo.CreateMovement(ctx, &models.InventoryMovement{
		LocationID:     order.LocationID,
		ProductID:      item.ProductID,
		QuantityChange: item.Quantity,
		MovementType:   models.MovementTypeIn,
		ReferenceType:  models.ReferenceOrderCancellation,
		ReferenceID:    order.ID,
	})
}

// MarkShipped advances a processing order and its shipment.
func (s *orderServiceImpl) MarkShipped(ctx context.Context, orderID uuid.UUID) (*models.Order, *ServiceError) {
	order, svcErr := s.GetOrder(ctx, orderID)
	if svcErr != nil {
		return nil, svcErr
	}
	if order.Status != models.OrderStatusProcessing {
		return nil, &ServiceError{StatusCode: 409, Message: fmt.Sprintf("Only processing orders can be shipped; order is %s", order.Status)}
	}

	now := time.Now()
	order.Status = models.OrderStatusShipped
	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to update order"}
	}

	if shipment, err := s.shipmentRepo.FindByOrderID(ctx, orderID); err == nil {
		shipment.Status = models.ShipmentStatusInTransit
		shipment.ShippedAt = &now
		if err := s.shipmentRepo.Update(ctx, shipment); err != nil {
			s.logger.Warn("Failed to update shipment status", zap.Error(err))
		}
	}

	_ = s.notifier.PublishOrderEvent(ctx, models.OrderEvent{
		EventType:   models.EventOrderShipped,
		OrderID:     order.ID.String(),
		OrderNumber: order.OrderNumber,
		LocationID:  order.LocationID.String(),
		Status:      order.Status,
	})
	return order, nil
}

// MarkDelivered closes out a shipped order.
func (s *orderServiceImpl) MarkDelivered(ctx context.Context, orderID uuid.UUID) (*models.Order, *ServiceError) {
	order, svcErr := s.GetOrder(ctx, orderID)
	if svcErr != nil {
		return nil, svcErr
	}
	if order.Status != models.OrderStatusShipped {
		return nil, &ServiceError{StatusCode: 409, Message: fmt.Sprintf("Only shipped orders can be delivered; order is %s", order.Status)}
	}

	now := time.Now()
	order.Status = models.OrderStatusDelivered
	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to update order"}
	}

	if shipment, err := s.shipmentRepo.FindByOrderID(ctx, orderID); err == nil {
		shipment.Status = models.ShipmentStatusDelivered
		shipment.DeliveredAt = &now
		if err := s.shipmentRepo.Update(ctx, shipment); err != nil {
			s.logger.Warn("Failed to update shipment status", zap.Error(err))
		}
	}

	_ = s.notifier.PublishOrderEvent(ctx, models.OrderEvent{
		EventType:   models.EventOrderDelivered,
		OrderID:     order.ID.String(),
		OrderNumber: order.OrderNumber,
		LocationID:  order.LocationID.String(),
		Status:      order.Status,
	})
	return order, nil
}

// GetOrder retrieves one order with items.
func (s *orderServiceImpl) GetOrder(ctx context.Context, orderID uuid.UUID) (*models.Order, *ServiceError) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &ServiceError{StatusCode: 404, Message: "Order not found"}
		}
		s.logger.Error("Failed to fetch order", zap.String("order_id", orderID.String()), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to fetch order"}
	}
	return order, nil
}

// GetOrders lists orders. Franchisees see their own location; franchisors
// see everything.
func (s *orderServiceImpl) GetOrders(ctx context.Context, role string, locationID uuid.UUID, page, limit int) (*OrderListResponse, *ServiceError) {
	var (
		orders []models.Order
		total  int64
		err    error
	)
	if role == models.RoleFranchisor {
		orders, total, err = s.orderRepo.FindAll(ctx, page, limit)
	} else {
		orders, total, err = s.orderRepo.FindByLocationID(ctx, locationID, page, limit)
	}
	if err != nil {
		s.logger.Error("Failed to fetch orders", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to fetch orders"}
	}

	return &OrderListResponse{
		Orders: orders,
		Meta: MetaData{
			Page:        page,
			Limit:       limit,
			TotalOrders: total,
			TotalPages:  calculateTotalPages(total, limit),
			HasMore:     total > int64(page*limit),
		},
	}, nil
}

// GetMovements returns the ledger entries referencing an order.
func (s *orderServiceImpl) GetMovements(ctx context.Context, orderID uuid.UUID) ([]models.InventoryMovement, *ServiceError) {
	movements, err := s.inventoryRepo.FindMovementsByReference(ctx, orderID)
	if err != nil {
		s.logger.Error("Failed to fetch movements", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to fetch inventory movements"}
	}
	return movements, nil
}

// GetShipment returns the shipment for an approved order.
func (s *orderServiceImpl) GetShipment(ctx context.Context, orderID uuid.UUID) (*models.Shipment, *ServiceError) {
	shipment, err := s.shipmentRepo.FindByOrderID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &ServiceError{StatusCode: 404, Message: "No shipment for this order"}
		}
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to fetch shipment"}
	}
	return shipment, nil
}

func generateOrderNumber() string {
	suffix := strings.Split(uuid.New().String(), "-")[0]
	return fmt.Sprintf("ORD-%s-%s", time.Now().Format("20060102"), strings.ToUpper(suffix))
}

func calculateTotalPages(total int64, limit int) int64 {
	if limit == 0 {
		return 0
	}
	return (total + int64(limit) - 1) / int64(limit)
}
