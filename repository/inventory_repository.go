package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"franchise-service/models"
)

// ErrStockConflict is returned when a conditional stock decrement matches no
// row, either because the record is missing or available quantity dropped
// below the requested amount since validation.
var ErrStockConflict = errors.New("insufficient stock for conditional update")

// InventoryRepository manages stock records and the movement ledger.
type InventoryRepository interface {
	FindByLocation(ctx context.Context, locationID uuid.UUID) ([]models.InventoryRecord, error)
	FindRecord(ctx context.Context, locationID, productID uuid.UUID) (*models.InventoryRecord, error)
	ReserveStock(ctx context.Context, locationID, productID uuid.UUID, quantity int) error
	ReleaseStock(ctx context.Context, locationID, productID uuid.UUID, quantity int) error
	CreateMovement(ctx context.Context, movement *models.InventoryMovement) error
	FindMovementsByReference(ctx context.Context, referenceID uuid.UUID) ([]models.InventoryMovement, error)
}

// GormInventoryRepository implements InventoryRepository using GORM.
type GormInventoryRepository struct {
	db *gorm.DB
}

// NewGormInventoryRepository creates a new GormInventoryRepository.
func NewGormInventoryRepository(db *gorm.DB) InventoryRepository {
	return &GormInventoryRepository{db: db}
}

// FindByLocation returns the full inventory snapshot for a location in one
// query.
func (r *GormInventoryRepository) FindByLocation(ctx context.Context, locationID uuid.UUID) ([]models.InventoryRecord, error) {
	var records []models.InventoryRecord
	if err := r.db.WithContext(ctx).
		Where("location_id = ?", locationID).
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *GormInventoryRepository) FindRecord(ctx context.Context, locationID, productID uuid.UUID) (*models.InventoryRecord, error) {
	var record models.InventoryRecord
	if err := r.db.WithContext(ctx).
		Where("location_id = ? AND product_id = ?", locationID, productID).
		First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// ReserveStock decrements available quantity with a guard against going
// negative. Zero rows affected means the stock moved under us.
func (r *GormInventoryRepository) ReserveStock(ctx context.Context, locationID, productID uuid.UUID, quantity int) error {
	res := r.db.WithContext(ctx).
		Model(&models.InventoryRecord{}).
		Where("location_id = ? AND product_id = ? AND available_quantity >= ?", locationID, productID, quantity).
		UpdateColumn("available_quantity", gorm.Expr("available_quantity - ?", quantity))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStockConflict
	}
	return nil
}

// ReleaseStock increments available quantity back after a rejection.
func (r *GormInventoryRepository) ReleaseStock(ctx context.Context, locationID, productID uuid.UUID, quantity int) error {
	res := r.db.WithContext(ctx).
		Model(&models.InventoryRecord{}).
		Where("location_id = ? AND product_id = ?", locationID, productID).
		UpdateColumn("available_quantity", gorm.Expr("available_quantity + ?", quantity))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormInventoryRepository) CreateMovement(ctx context.Context, movement *models.InventoryMovement) error {
	return r.db.WithContext(ctx).Create(movement).Error
}

func (r *GormInventoryRepository) FindMovementsByReference(ctx context.Context, referenceID uuid.UUID) ([]models.InventoryMovement, error) {
	var movements []models.InventoryMovement
	if err := r.db.WithContext(ctx).
		Where("reference_id = ?", referenceID).
		Order("created_at ASC").
		Find(&movements).Error; err != nil {
		return nil, err
	}
	return movements, nil
}
