package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"franchise-service/models"
	"franchise-service/repository"
)

// ValidationService runs the read-only pre-flight checks for an order
// request. Business-rule violations are collected into the result, never
// returned as Go errors; only backend failures surface as errors.
type ValidationService interface {
	ValidateOrder(ctx context.Context, req *CreateOrderRequest) (models.ValidationResult, error)
	CheckInventory(ctx context.Context, req *CreateOrderRequest) (models.ValidationResult, error)
}

type validationServiceImpl struct {
	catalog   repository.CatalogRepository
	inventory repository.InventoryRepository
}

// NewValidationService creates a new ValidationService.
func NewValidationService(catalog repository.CatalogRepository, inventory repository.InventoryRepository) ValidationService {
	return &validationServiceImpl{
		catalog:   catalog,
		inventory: inventory,
	}
}

// ValidateOrder checks the location, the item list, and each product.
// Every check runs so the caller sees all problems at once.
func (s *validationServiceImpl) ValidateOrder(ctx context.Context, req *CreateOrderRequest) (models.ValidationResult, error) {
	var res models.ValidationResult

	loc, err := s.catalog.FindLocationByID(ctx, req.LocationID)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		res.Errors = append(res.Errors, fmt.Sprintf("Location %s does not exist", req.LocationID))
	case err != nil:
		return res, err
	case loc.Status != models.LocationStatusOpen:
		res.Warnings = append(res.Warnings, fmt.Sprintf("Location %s is %s", req.LocationID, loc.Status))
	}

	if len(req.Items) == 0 {
		res.Errors = append(res.Errors, "Order must contain at least one item")
	}

	ids := make([]uuid.UUID, 0, len(req.Items))
	for _, item := range req.Items {
		ids = append(ids, item.ProductID)
	}
	products, err := s.catalog.FindProductsByIDs(ctx, ids)
	if err != nil {
		return res, err
	}
	byID := make(map[uuid.UUID]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	for _, item := range req.Items {
		if item.Quantity <= 0 {
			res.Errors = append(res.Errors, fmt.Sprintf("Quantity for product %s must be a positive integer", item.ProductID))
		}

		p, ok := byID[item.ProductID]
		if !ok {
			res.Errors = append(res.Errors, fmt.Sprintf("Product %s does not exist", item.ProductID))
			continue
		}
		if !p.Active {
			res.Errors = append(res.Errors, fmt.Sprintf("Product %s is not active", p.Name))
			continue
		}
		if item.Quantity > 0 && item.Quantity < p.MinOrderQty {
			res.Warnings = append(res.Warnings, fmt.Sprintf("Quantity %d for %s is below the minimum order quantity of %d", item.Quantity, p.Name, p.MinOrderQty))
		}
	}

	res.Valid = len(res.Errors) == 0
	return res, nil
}

// CheckInventory cross-references requested quantities against the
// location's stock. One bulk fetch per location regardless of order size.
func (s *validationServiceImpl) CheckInventory(ctx context.Context, req *CreateOrderRequest) (models.ValidationResult, error) {
	var res models.ValidationResult

	records, err := s.inventory.FindByLocation(ctx, req.LocationID)
	if err != nil {
		return res, err
	}
	byProduct := make(map[uuid.UUID]models.InventoryRecord, len(records))
	for _, rec := range records {
		byProduct[rec.ProductID] = rec
	}

	for _, item := range req.Items {
		rec, ok := byProduct[item.ProductID]
		if !ok {
			res.Errors = append(res.Errors, fmt.Sprintf("No inventory record for product %s at location %s", item.ProductID, req.LocationID))
			continue
		}

		if rec.AvailableQuantity < item.Quantity {
			res.Errors = append(res.Errors, fmt.Sprintf("Insufficient inventory for product %s. Available: %d, Requested: %d", item.ProductID, rec.AvailableQuantity, item.Quantity))
			continue
		}

		if rec.AvailableQuantity-item.Quantity <= rec.ReorderLevel {
			res.Warnings = append(res.Warnings, fmt.Sprintf("Product %s will drop to %d, at or below reorder level %d", item.ProductID, rec.AvailableQuantity-item.Quantity, rec.ReorderLevel))
		}
	}

	res.Valid = len(res.Errors) == 0
	return res, nil
}
