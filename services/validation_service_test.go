package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"franchise-service/models"
	"franchise-service/services"
)

func newValidationFixture() (*mockCatalogRepo, *mockInventoryRepo, services.ValidationService) {
	catalog := &mockCatalogRepo{}
	inventory := &mockInventoryRepo{}
	return catalog, inventory, services.NewValidationService(catalog, inventory)
}

func TestValidateOrder_LocationMissing(t *testing.T) {
	_, _, svc := newValidationFixture()
	locID := uuid.New()

	res, err := svc.ValidateOrder(context.Background(), &services.CreateOrderRequest{
		LocationID: locID,
		Items:      []services.OrderItemRequest{},
	})

	assert.NoError(t, err)
	assert.False(t, res.Valid)
	assert.Contains(t, res.Errors, fmt.Sprintf("Location %s does not exist", locID))
}

func TestValidateOrder_ClosedLocationIsWarning(t *testing.T) {
	catalog, _, svc := newValidationFixture()
	locID := uuid.New()
	prodID := uuid.New()
	catalog.location = &models.FranchiseLocation{ID: locID, Status: models.LocationStatusClosed}
	catalog.products = []models.Product{{ID: prodID, Name: "Filters", Active: true, MinOrderQty: 1}}

	res, err := svc.ValidateOrder(context.Background(), &services.CreateOrderRequest{
		LocationID: locID,
		Items:      []services.OrderItemRequest{{ProductID: prodID, Quantity: 5}},
	})

	assert.NoError(t, err)
	assert.True(t, res.Valid)
	assert.Empty(t, res.Errors)
	assert.Contains(t, res.Warnings, fmt.Sprintf("Location %s is closed", locID))
}

func TestValidateOrder_EmptyItems(t *testing.T) {
	catalog, _, svc := newValidationFixture()
	locID := uuid.New()
	catalog.location = &models.FranchiseLocation{ID: locID, Status: models.LocationStatusOpen}

	res, err := svc.ValidateOrder(context.Background(), &services.CreateOrderRequest{LocationID: locID})

	assert.NoError(t, err)
	assert.False(t, res.Valid)
	assert.Contains(t, res.Errors, "Order must contain at least one item")
}

func TestValidateOrder_UnknownProduct(t *testing.T) {
	catalog, _, svc := newValidationFixture()
	locID := uuid.New()
	prodID := uuid.New()
	catalog.location = &models.FranchiseLocation{ID: locID, Status: models.LocationStatusOpen}

	res, err := svc.ValidateOrder(context.Background(), &services.CreateOrderRequest{
		LocationID: locID,
		Items:      []services.OrderItemRequest{{ProductID: prodID, Quantity: 5}},
	})

	assert.NoError(t, err)
	assert.False(t, res.Valid)
	assert.Contains(t, res.Errors, fmt.Sprintf("Product %s does not exist", prodID))
}

func TestValidateOrder_InactiveProduct(t *testing.T) {
	catalog, _, svc := newValidationFixture()
	locID := uuid.New()
	prodID := uuid.New()
	catalog.location = &models.FranchiseLocation{ID: locID, Status: models.LocationStatusOpen}
	catalog.products = []models.Product{{ID: prodID, Name: "Legacy Cups", Active: false, MinOrderQty: 1}}

	res, err := svc.ValidateOrder(context.Background(), &services.CreateOrderRequest{
		LocationID: locID,
		Items:      []services.OrderItemRequest{{ProductID: prodID, Quantity: 5}},
	})

	assert.NoError(t, err)
	assert.False(t, res.Valid)
	assert.Contains(t, res.Errors, "Product Legacy Cups is not active")
}

func TestValidateOrder_NonPositiveQuantity(t *testing.T) {
	catalog, _, svc := newValidationFixture()
	locID := uuid.New()
	prodID := uuid.New()
	catalog.location = &models.FranchiseLocation{ID: locID, Status: models.LocationStatusOpen}
	catalog.products = []models.Product{{ID: prodID, Name: "Napkins", Active: true, MinOrderQty: 1}}

	res, err := svc.ValidateOrder(context.Background(), &services.CreateOrderRequest{
		LocationID: locID,
		Items:      []services.OrderItemRequest{{ProductID: prodID, Quantity: 0}},
	})

	assert.NoError(t, err)
	assert.False(t, res.Valid)
	assert.Contains(t, res.Errors, fmt.Sprintf("Quantity for product %s must be a positive integer", prodID))
}

func TestValidateOrder_BelowMinimumIsWarning(t *testing.T) {
	catalog, _, svc := newValidationFixture()
	locID := uuid.New()
	prodID := uuid.New()
	catalog.location = &models.FranchiseLocation{ID: locID, Status: models.LocationStatusOpen}
	catalog.products = []models.Product{{ID: prodID, Name: "Beans", Active: true, MinOrderQty: 24}}

	res, err := svc.ValidateOrder(context.Background(), &services.CreateOrderRequest{
		LocationID: locID,
		Items:      []services.OrderItemRequest{{ProductID: prodID, Quantity: 10}},
	})

	assert.NoError(t, err)
	assert.True(t, res.Valid)
	assert.Contains(t, res.Warnings, "Quantity 10 for Beans is below the minimum order quantity of 24")
}

// A request with several independent problems reports all of them at once
// rather than stopping at the first.
func TestValidateOrder_AllChecksEvaluated(t *testing.T) {
	catalog, _, svc := newValidationFixture()
	activeID := uuid.New()
	inactiveID := uuid.New()
	missingID := uuid.New()
	catalog.products = []models.Product{
		{ID: activeID, Name: "Beans", Active: true, MinOrderQty: 1},
		{ID: inactiveID, Name: "Old Blend", Active: false, MinOrderQty: 1},
	}

	res, err := svc.ValidateOrder(context.Background(), &services.CreateOrderRequest{
		LocationID: uuid.New(),
		Items: []services.OrderItemRequest{
			{ProductID: activeID, Quantity: -1},
			{ProductID: inactiveID, Quantity: 5},
			{ProductID: missingID, Quantity: 5},
		},
	})

	assert.NoError(t, err)
	assert.False(t, res.Valid)
	assert.Len(t, res.Errors, 4)
}

func TestCheckInventory_MissingRecord(t *testing.T) {
	_, _, svc := newValidationFixture()
	locID := uuid.New()
	prodID := uuid.New()

	res, err := svc.CheckInventory(context.Background(), &services.CreateOrderRequest{
		LocationID: locID,
		Items:      []services.OrderItemRequest{{ProductID: prodID, Quantity: 5}},
	})

	assert.NoError(t, err)
	assert.False(t, res.Valid)
	assert.Contains(t, res.Errors, fmt.Sprintf("No inventory record for product %s at location %s", prodID, locID))
}

func TestCheckInventory_Shortage(t *testing.T) {
	_, inventory, svc := newValidationFixture()
	locID := uuid.New()
	prodID := uuid.New()
	inventory.records = []models.InventoryRecord{
		{LocationID: locID, ProductID: prodID, AvailableQuantity: 5, ReorderLevel: 2},
	}

	res, err := svc.CheckInventory(context.Background(), &services.CreateOrderRequest{
		LocationID: locID,
		Items:      []services.OrderItemRequest{{ProductID: prodID, Quantity: 10}},
	})

	assert.NoError(t, err)
	assert.False(t, res.Valid)
	assert.Contains(t, res.Errors,
		fmt.Sprintf("Insufficient inventory for product %s. Available: 5, Requested: 10", prodID))
}

func TestCheckInventory_ReorderLevelWarning(t *testing.T) {
	_, inventory, svc := newValidationFixture()
	locID := uuid.New()
	prodID := uuid.New()
	inventory.records = []models.InventoryRecord{
		{LocationID: locID, ProductID: prodID, AvailableQuantity: 25, ReorderLevel: 20},
	}

	res, err := svc.CheckInventory(context.Background(), &services.CreateOrderRequest{
		LocationID: locID,
		Items:      []services.OrderItemRequest{{ProductID: prodID, Quantity: 10}},
	})

	assert.NoError(t, err)
	assert.True(t, res.Valid)
	assert.Contains(t, res.Warnings,
		fmt.Sprintf("Product %s will drop to 15, at or below reorder level 20", prodID))
}

func TestCheckInventory_ExactQuantityIsEnough(t *testing.T) {
	_, inventory, svc := newValidationFixture()
	locID := uuid.New()
	prodID := uuid.New()
	inventory.records = []models.InventoryRecord{
		{LocationID: locID, ProductID: prodID, AvailableQuantity: 10, ReorderLevel: 0},
	}

	res, err := svc.CheckInventory(context.Background(), &services.CreateOrderRequest{
		LocationID: locID,
		Items:      []services.OrderItemRequest{{ProductID: prodID, Quantity: 10}},
	})

	assert.NoError(t, err)
	assert.True(t, res.Valid)
	assert.Empty(t, res.Errors)
}
