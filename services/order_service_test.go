package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"franchise-service/models"
	"franchise-service/repository"
	"franchise-service/services"
)

// ---- mock repositories ----

type mockOrderRepo struct {
	createErr error
	created   *models.Order
	stored    *models.Order
	updateErr error
	updated   *models.Order
}

func (m *mockOrderRepo) Create(_ context.Context, order *models.Order) error {
	if m.createErr != nil {
		return m.createErr
	}
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	m.created = order
	return nil
}
func (m *mockOrderRepo) FindByID(_ context.Context, id uuid.UUID) (*models.Order, error) {
	if m.stored != nil && m.stored.ID == id {
		return m.stored, nil
	}
	return nil, gorm.ErrRecordNotFound
}
func (m *mockOrderRepo) FindByLocationID(_ context.Context, _ uuid.UUID, _, _ int) ([]models.Order, int64, error) {
	return []models.Order{}, 0, nil
}
func (m *mockOrderRepo) FindAll(_ context.Context, _, _ int) ([]models.Order, int64, error) {
	return []models.Order{}, 0, nil
}
func (m *mockOrderRepo) Update(_ context.Context, order *models.Order) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.updated = order
	return nil
}

type mockCatalogRepo struct {
	location    *models.FranchiseLocation
	locationErr error
	products    []models.Product
	productsErr error
}

func (m *mockCatalogRepo) FindLocationByID(_ context.Context, _ uuid.UUID) (*models.FranchiseLocation, error) {
	if m.locationErr != nil {
		return nil, m.locationErr
	}
	if m.location == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return m.location, nil
}
func (m *mockCatalogRepo) ListLocations(_ context.Context, _, _ int) ([]models.FranchiseLocation, int64, error) {
	return nil, 0, nil
}
func (m *mockCatalogRepo) FindProductByID(_ context.Context, id uuid.UUID) (*models.Product, error) {
	for i := range m.products {
		if m.products[i].ID == id {
			return &m.products[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}
func (m *mockCatalogRepo) FindProductsByIDs(_ context.Context, ids []uuid.UUID) ([]models.Product, error) {
	if m.productsErr != nil {
		return nil, m.productsErr
	}
	var out []models.Product
	for _, id := range ids {
		for _, p := range m.products {
			if p.ID == id {
				out = append(out, p)
			}
		}
	}
	return out, nil
}
func (m *mockCatalogRepo) ListProducts(_ context.Context, _, _ int) ([]models.Product, int64, error) {
	return m.products, int64(len(m.products)), nil
}

type stockCall struct {
	productID uuid.UUID
	quantity  int
}

type mockInventoryRepo struct {
	records     []models.InventoryRecord
	findErr     error
	reserveErr  error
	releaseErr  error
	movementErr error
	reserved    []stockCall
	released    []stockCall
	movements   []models.InventoryMovement
}

func (m *mockInventoryRepo) FindByLocation(_ context.Context, _ uuid.UUID) ([]models.InventoryRecord, error) {
	return m.records, m.findErr
}
func (m *mockInventoryRepo) FindRecord(_ context.Context, _, productID uuid.UUID) (*models.InventoryRecord, error) {
	for i := range m.records {
		if m.records[i].ProductID == productID {
			return &m.records[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}
func (m *mockInventoryRepo) ReserveStock(_ context.Context, _, productID uuid.UUID, quantity int) error {
	if m.reserveErr != nil {
		return m.reserveErr
	}
	for i := range m.records {
		if m.records[i].ProductID == productID {
			m.records[i].AvailableQuantity -= quantity
		}
	}
	m.reserved = append(m.reserved, stockCall{productID: productID, quantity: quantity})
	return nil
}
func (m *mockInventoryRepo) ReleaseStock(_ context.Context, _, productID uuid.UUID, quantity int) error {
	if m.releaseErr != nil {
		return m.releaseErr
	}
	for i := range m.records {
		if m.records[i].ProductID == productID {
			m.records[i].AvailableQuantity += quantity
		}
	}
	m.released = append(m.released, stockCall{productID: productID, quantity: quantity})
	return nil
}
func (m *mockInventoryRepo) CreateMovement(_ context.Context, movement *models.InventoryMovement) error {
	if m.movementErr != nil {
		return m.movementErr
	}
	m.movements = append(m.movements, *movement)
	return nil
}
func (m *mockInventoryRepo) FindMovementsByReference(_ context.Context, referenceID uuid.UUID) ([]models.InventoryMovement, error) {
	var out []models.InventoryMovement
	for _, mv := range m.movements {
		if mv.ReferenceID == referenceID {
			out = append(out, mv)
		}
	}
	return out, nil
}

type mockShipmentRepoSvc struct {
	createErr error
	created   *models.Shipment
	stored    *models.Shipment
	findErr   error
	updateErr error
}

func (m *mockShipmentRepoSvc) Create(_ context.Context, s *models.Shipment) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = s
	return nil
}
func (m *mockShipmentRepoSvc) FindByOrderID(_ context.Context, _ uuid.UUID) (*models.Shipment, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	if m.stored == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return m.stored, nil
}
func (m *mockShipmentRepoSvc) Update(_ context.Context, s *models.Shipment) error {
	return m.updateErr
}

type mockInvoiceRepo struct {
	nextNum   int64
	nextErr   error
	createErr error
	created   *models.Invoice
}

func (m *mockInvoiceRepo) Create(_ context.Context, invoice *models.Invoice) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = invoice
	return nil
}
func (m *mockInvoiceRepo) FindByOrderID(_ context.Context, _ uuid.UUID) (*models.Invoice, error) {
	if m.created == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return m.created, nil
}
func (m *mockInvoiceRepo) NextInvoiceNumber(_ context.Context) (int64, error) {
	return m.nextNum, m.nextErr
}
func (m *mockInvoiceRepo) Update(_ context.Context, _ *models.Invoice) error { return nil }

// ---- mock notifier and idempotency store ----

type mockNotifier struct {
	err      error
	events   []models.OrderEvent
	lowStock []models.LowStockEvent
}

func (m *mockNotifier) PublishOrderEvent(_ context.Context, event models.OrderEvent) error {
	m.events = append(m.events, event)
	return m.err
}
func (m *mockNotifier) PublishLowStock(_ context.Context, event models.LowStockEvent) error {
	m.lowStock = append(m.lowStock, event)
	return m.err
}

type mockIdemStore struct {
	entries map[string]string
	getErr  error
	setErr  error
}

func (m *mockIdemStore) Get(_ context.Context, key string) (string, error) {
	if m.getErr != nil {
		return "", m.getErr
	}
	return m.entries[key], nil
}
func (m *mockIdemStore) Set(_ context.Context, key, orderID string) error {
	if m.setErr != nil {
		return m.setErr
	}
	if m.entries == nil {
		m.entries = map[string]string{}
	}
	m.entries[key] = orderID
	return nil
}

// ---- fixtures ----

type orderServiceFixture struct {
	orders    *mockOrderRepo
	catalog   *mockCatalogRepo
	inventory *mockInventoryRepo
	shipments *mockShipmentRepoSvc
	invoices  *mockInvoiceRepo
	notifier  *mockNotifier
	idem      *mockIdemStore
	svc       services.OrderService
}

func newOrderServiceFixture() *orderServiceFixture {
	logger, _ := zap.NewDevelopment()
	f := &orderServiceFixture{
		orders:    &mockOrderRepo{},
		catalog:   &mockCatalogRepo{},
		inventory: &mockInventoryRepo{},
		shipments: &mockShipmentRepoSvc{},
		invoices:  &mockInvoiceRepo{nextNum: 1001},
		notifier:  &mockNotifier{},
		idem:      &mockIdemStore{},
	}
	f.svc = services.NewOrderService(
		f.orders,
		f.catalog,
		f.inventory,
		f.shipments,
		services.NewValidationService(f.catalog, f.inventory),
		services.NewInvoiceService(f.invoices, logger),
		f.notifier,
		f.idem,
		logger,
	)
	return f
}

func (f *orderServiceFixture) seedLocation(status string) uuid.UUID {
	id := uuid.New()
	f.catalog.location = &models.FranchiseLocation{ID: id, Name: "Downtown", Status: status}
	return id
}

func (f *orderServiceFixture) seedProduct(price, minQty int) uuid.UUID {
	id := uuid.New()
	f.catalog.products = append(f.catalog.products, models.Product{
		ID: id, SKU: "SKU-" + id.String()[:8], Name: "Espresso Beans 1kg",
		Active: true, Price: price, MinOrderQty: minQty,
	})
	return id
}

func (f *orderServiceFixture) seedStock(locationID, productID uuid.UUID, available, reorder, maxStock int) {
	f.inventory.records = append(f.inventory.records, models.InventoryRecord{
		ID: uuid.New(), LocationID: locationID, ProductID: productID,
		AvailableQuantity: available, ReorderLevel: reorder, MaxStockLevel: maxStock,
	})
}

// ---- creation ----

func TestCreateOrder_Success(t *testing.T) {
	f := newOrderServiceFixture()
	loc := f.seedLocation(models.LocationStatusOpen)
	prod := f.seedProduct(500, 1)
	f.seedStock(loc, prod, 100, 20, 200)

	result, svcErr := f.svc.CreateOrder(context.Background(), uuid.New(), &services.CreateOrderRequest{
		LocationID: loc,
		Items:      []services.OrderItemRequest{{ProductID: prod, Quantity: 10}},
	})

	assert.Nil(t, svcErr)
	assert.NotNil(t, result.Order)
	assert.Equal(t, models.OrderStatusPending, result.Order.Status)
	assert.Contains(t, result.Order.OrderNumber, "ORD-")
	assert.Equal(t, 5000, result.Order.Subtotal)
	assert.Equal(t, 400, result.Order.Tax)
	assert.Equal(t, 5400, result.Order.Total)

	assert.True(t, result.Reserved)
	if assert.Len(t, f.inventory.reserved, 1) {
		assert.Equal(t, prod, f.inventory.reserved[0].productID)
		assert.Equal(t, 10, f.inventory.reserved[0].quantity)
	}
	if assert.Len(t, f.inventory.movements, 1) {
		mv := f.inventory.movements[0]
		assert.Equal(t, -10, mv.QuantityChange)
		assert.Equal(t, models.MovementTypeOut, mv.MovementType)
		assert.Equal(t, models.ReferenceOrderReservation, mv.ReferenceType)
		assert.Equal(t, result.Order.ID, mv.ReferenceID)
	}

	assert.True(t, result.InvoiceCreated)
	if assert.NotNil(t, result.Invoice) {
		assert.Equal(t, result.Order.ID, result.Invoice.OrderID)
		assert.Equal(t, 5400, result.Invoice.Total)
		assert.Equal(t, models.InvoiceStatusSent, result.Invoice.Status)
		expectedDue := result.Invoice.IssueDate.AddDate(0, 0, 30)
		assert.WithinDuration(t, expectedDue, result.Invoice.DueDate, time.Second)
	}

	assert.True(t, result.Notified)
	if assert.Len(t, f.notifier.events, 1) {
		assert.Equal(t, models.EventOrderCreated, f.notifier.events[0].EventType)
	}
}

func TestCreateOrder_InsufficientStock(t *testing.T) {
	f := newOrderServiceFixture()
	loc := f.seedLocation(models.LocationStatusOpen)
	prod := f.seedProduct(500, 1)
	f.seedStock(loc, prod, 5, 2, 50)

	result, svcErr := f.svc.CreateOrder(context.Background(), uuid.New(), &services.CreateOrderRequest{
		LocationID: loc,
		Items:      []services.OrderItemRequest{{ProductID: prod, Quantity: 10}},
	})

	assert.Nil(t, result)
	if assert.NotNil(t, svcErr) {
		assert.Equal(t, 400, svcErr.StatusCode)
		assert.Contains(t, svcErr.Message, "Insufficient inventory for product "+prod.String())
		assert.Contains(t, svcErr.Message, "Available: 5, Requested: 10")
	}
	assert.Nil(t, f.orders.created)
	assert.Empty(t, f.inventory.reserved)
	assert.Empty(t, f.inventory.movements)
}

func TestCreateOrder_EmptyItems(t *testing.T) {
	f := newOrderServiceFixture()
	loc := f.seedLocation(models.LocationStatusOpen)

	_, svcErr := f.svc.CreateOrder(context.Background(), uuid.New(), &services.CreateOrderRequest{
		LocationID: loc,
	})

	if assert.NotNil(t, svcErr) {
		assert.Equal(t, 400, svcErr.StatusCode)
		assert.Contains(t, svcErr.Message, "at least one item")
	}
	assert.Nil(t, f.orders.created)
}

func TestCreateOrder_BelowMinimumIsWarningOnly(t *testing.T) {
	f := newOrderServiceFixture()
	loc := f.seedLocation(models.LocationStatusOpen)
	prod := f.seedProduct(500, 24)
	f.seedStock(loc, prod, 100, 20, 200)

	result, svcErr := f.svc.CreateOrder(context.Background(), uuid.New(), &services.CreateOrderRequest{
		LocationID: loc,
		Items:      []services.OrderItemRequest{{ProductID: prod, Quantity: 10}},
	})

	assert.Nil(t, svcErr)
	assert.NotNil(t, result.Order)
	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "minimum order quantity") {
			found = true
		}
	}
	assert.True(t, found, "expected a minimum order quantity warning, got %v", result.Warnings)
}

func TestCreateOrder_DuplicateIdempotencyKey(t *testing.T) {
	f := newOrderServiceFixture()
	existing := &models.Order{ID: uuid.New(), OrderNumber: "ORD-20260829-ABCD1234", Status: models.OrderStatusPending}
	f.orders.stored = existing
	f.idem.entries = map[string]string{"req-42": existing.ID.String()}

	loc := f.seedLocation(models.LocationStatusOpen)
	prod := f.seedProduct(500, 1)
	f.seedStock(loc, prod, 100, 20, 200)

	result, svcErr := f.svc.CreateOrder(context.Background(), uuid.New(), &services.CreateOrderRequest{
		LocationID:     loc,
		IdempotencyKey: "req-42",
		Items:          []services.OrderItemRequest{{ProductID: prod, Quantity: 10}},
	})

	assert.Nil(t, svcErr)
	assert.True(t, result.Duplicate)
	assert.Equal(t, existing.ID, result.Order.ID)
	assert.Nil(t, f.orders.created)
	assert.Empty(t, f.inventory.reserved)
}

func TestCreateOrder_StoresIdempotencyKey(t *testing.T) {
	f := newOrderServiceFixture()
	loc := f.seedLocation(models.LocationStatusOpen)
	prod := f.seedProduct(500, 1)
	f.seedStock(loc, prod, 100, 20, 200)

	result, svcErr := f.svc.CreateOrder(context.Background(), uuid.New(), &services.CreateOrderRequest{
		LocationID:     loc,
		IdempotencyKey: "req-77",
		Items:          []services.OrderItemRequest{{ProductID: prod, Quantity: 10}},
	})

	assert.Nil(t, svcErr)
	assert.Equal(t, result.Order.ID.String(), f.idem.entries["req-77"])
}

func TestCreateOrder_ReservationConflictReported(t *testing.T) {
	f := newOrderServiceFixture()
	loc := f.seedLocation(models.LocationStatusOpen)
	prod := f.seedProduct(500, 1)
	f.seedStock(loc, prod, 100, 20, 200)
	f.inventory.reserveErr = repository.ErrStockConflict

	result, svcErr := f.svc.CreateOrder(context.Background(), uuid.New(), &services.CreateOrderRequest{
		LocationID: loc,
		Items:      []services.OrderItemRequest{{ProductID: prod, Quantity: 10}},
	})

	assert.Nil(t, svcErr)
	assert.NotNil(t, result.Order)
	assert.False(t, result.Reserved)
	assert.Len(t, result.ReservationFailures, 1)
	assert.Empty(t, f.inventory.movements)
}

func TestCreateOrder_LowStockEventAfterReservation(t *testing.T) {
	f := newOrderServiceFixture()
	loc := f.seedLocation(models.LocationStatusOpen)
	prod := f.seedProduct(500, 1)
	f.seedStock(loc, prod, 25, 20, 200)

	result, svcErr := f.svc.CreateOrder(context.Background(), uuid.New(), &services.CreateOrderRequest{
		LocationID: loc,
		Items:      []services.OrderItemRequest{{ProductID: prod, Quantity: 10}},
	})

	assert.Nil(t, svcErr)
	assert.True(t, result.Reserved)
	if assert.Len(t, f.notifier.lowStock, 1) {
		assert.Equal(t, models.EventLowStock, f.notifier.lowStock[0].EventType)
		assert.Equal(t, prod.String(), f.notifier.lowStock[0].ProductID)
	}
}

// ---- approval ----

func TestApproveOrder_Success(t *testing.T) {
	f := newOrderServiceFixture()
	order := &models.Order{
		ID: uuid.New(), OrderNumber: "ORD-20260829-AAAA1111",
		LocationID: uuid.New(), Status: models.OrderStatusPending,
	}
	f.orders.stored = order

	result, svcErr := f.svc.ApproveOrder(context.Background(), order.ID, uuid.New())

	assert.Nil(t, svcErr)
	assert.Equal(t, models.OrderStatusProcessing, result.Order.Status)
	assert.NotNil(t, result.Order.ApprovedAt)
	assert.True(t, result.ShipmentCreated)
	if assert.NotNil(t, result.Shipment) {
		assert.Equal(t, order.ID, result.Shipment.OrderID)
		assert.Equal(t, models.ShipmentStatusPreparing, result.Shipment.Status)
		assert.WithinDuration(t, time.Now().AddDate(0, 0, 7), result.Shipment.EstimatedDeliveryDate, time.Minute)
	}
	if assert.Len(t, f.notifier.events, 1) {
		assert.Equal(t, models.EventOrderApproved, f.notifier.events[0].EventType)
	}
}

func TestApproveOrder_NotPending(t *testing.T) {
	f := newOrderServiceFixture()
	order := &models.Order{ID: uuid.New(), Status: models.OrderStatusProcessing}
	f.orders.stored = order

	_, svcErr := f.svc.ApproveOrder(context.Background(), order.ID, uuid.New())

	if assert.NotNil(t, svcErr) {
		assert.Equal(t, 409, svcErr.StatusCode)
	}
	assert.Nil(t, f.shipments.created)
}

func TestApproveOrder_NotFound(t *testing.T) {
	f := newOrderServiceFixture()

	_, svcErr := f.svc.ApproveOrder(context.Background(), uuid.New(), uuid.New())

	if assert.NotNil(t, svcErr) {
		assert.Equal(t, 404, svcErr.StatusCode)
	}
}

func TestApproveOrder_ShipmentFailureKeepsApproval(t *testing.T) {
	f := newOrderServiceFixture()
	order := &models.Order{ID: uuid.New(), Status: models.OrderStatusPending}
	f.orders.stored = order
	f.shipments.createErr = errors.New("db down")

	result, svcErr := f.svc.ApproveOrder(context.Background(), order.ID, uuid.New())

	assert.Nil(t, svcErr)
	assert.Equal(t, models.OrderStatusProcessing, result.Order.Status)
	assert.False(t, result.ShipmentCreated)
	assert.Nil(t, result.Shipment)
}

// ---- rejection ----

func TestRejectOrder_Success(t *testing.T) {
	f := newOrderServiceFixture()
	prod := uuid.New()
	order := &models.Order{
		ID: uuid.New(), LocationID: uuid.New(), Status: models.OrderStatusPending,
		Items: []models.OrderItem{{ProductID: prod, Quantity: 10, UnitPrice: 500}},
	}
	f.orders.stored = order

	result, svcErr := f.svc.RejectOrder(context.Background(), order.ID, "budget freeze")

	assert.Nil(t, svcErr)
	assert.Equal(t, models.OrderStatusCancelled, result.Order.Status)
	assert.Equal(t, "budget freeze", result.Order.RejectionReason)
	assert.NotNil(t, result.Order.CancelledAt)
	assert.True(t, result.Released)

	if assert.Len(t, f.inventory.released, 1) {
		assert.Equal(t, prod, f.inventory.released[0].productID)
		assert.Equal(t, 10, f.inventory.released[0].quantity)
	}
	if assert.Len(t, f.inventory.movements, 1) {
		mv := f.inventory.movements[0]
		assert.Equal(t, 10, mv.QuantityChange)
		assert.Equal(t, models.MovementTypeIn, mv.MovementType)
		assert.Equal(t, models.ReferenceOrderCancellation, mv.ReferenceType)
	}
	if assert.Len(t, f.notifier.events, 1) {
		assert.Equal(t, models.EventOrderRejected, f.notifier.events[0].EventType)
		assert.Equal(t, "budget freeze", f.notifier.events[0].Reason)
	}
}

func TestRejectOrder_NotPending(t *testing.T) {
	f := newOrderServiceFixture()
	order := &models.Order{ID: uuid.New(), Status: models.OrderStatusProcessing}
	f.orders.stored = order

	_, svcErr := f.svc.RejectOrder(context.Background(), order.ID, "too late")

	if assert.NotNil(t, svcErr) {
		assert.Equal(t, 409, svcErr.StatusCode)
	}
	assert.Empty(t, f.inventory.released)
}

func TestRejectOrder_ReleaseFailureReported(t *testing.T) {
	f := newOrderServiceFixture()
	order := &models.Order{
		ID: uuid.New(), LocationID: uuid.New(), Status: models.OrderStatusPending,
		Items: []models.OrderItem{{ProductID: uuid.New(), Quantity: 5}},
	}
	f.orders.stored = order
	f.inventory.releaseErr = errors.New("record missing")

	result, svcErr := f.svc.RejectOrder(context.Background(), order.ID, "duplicate request")

	assert.Nil(t, svcErr)
	assert.Equal(t, models.OrderStatusCancelled, result.Order.Status)
	assert.False(t, result.Released)
	assert.Len(t, result.ReleaseFailures, 1)
}

// ---- shipping and delivery ----

func TestMarkShipped_Success(t *testing.T) {
	f := newOrderServiceFixture()
	order := &models.Order{ID: uuid.New(), Status: models.OrderStatusProcessing}
	f.orders.stored = order
	f.shipments.stored = &models.Shipment{OrderID: order.ID, Status: models.ShipmentStatusPreparing}

	updated, svcErr := f.svc.MarkShipped(context.Background(), order.ID)

	assert.Nil(t, svcErr)
	assert.Equal(t, models.OrderStatusShipped, updated.Status)
	assert.Equal(t, models.ShipmentStatusInTransit, f.shipments.stored.Status)
	assert.NotNil(t, f.shipments.stored.ShippedAt)
}

func TestMarkShipped_FromPending(t *testing.T) {
	f := newOrderServiceFixture()
	order := &models.Order{ID: uuid.New(), Status: models.OrderStatusPending}
	f.orders.stored = order

	_, svcErr := f.svc.MarkShipped(context.Background(), order.ID)

	if assert.NotNil(t, svcErr) {
		assert.Equal(t, 409, svcErr.StatusCode)
	}
}

func TestMarkDelivered_Success(t *testing.T) {
	f := newOrderServiceFixture()
	order := &models.Order{ID: uuid.New(), Status: models.OrderStatusShipped}
	f.orders.stored = order
	f.shipments.stored = &models.Shipment{OrderID: order.ID, Status: models.ShipmentStatusInTransit}

	updated, svcErr := f.svc.MarkDelivered(context.Background(), order.ID)

	assert.Nil(t, svcErr)
	assert.Equal(t, models.OrderStatusDelivered, updated.Status)
	assert.Equal(t, models.ShipmentStatusDelivered, f.shipments.stored.Status)
	assert.NotNil(t, f.shipments.stored.DeliveredAt)
}

func TestMarkDelivered_FromProcessing(t *testing.T) {
	f := newOrderServiceFixture()
	order := &models.Order{ID: uuid.New(), Status: models.OrderStatusProcessing}
	f.orders.stored = order

	_, svcErr := f.svc.MarkDelivered(context.Background(), order.ID)

	if assert.NotNil(t, svcErr) {
		assert.Equal(t, 409, svcErr.StatusCode)
	}
}
