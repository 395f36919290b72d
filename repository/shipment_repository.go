package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"franchise-service/models"
)

// ShipmentRepository defines data-access operations for shipments.
type ShipmentRepository interface {
	Create(ctx context.Context, shipment *models.Shipment) error
	FindByOrderID(ctx context.Context, orderID uuid.UUID) (*models.Shipment, error)
	Update(ctx context.Context, shipment *models.Shipment) error
}

// GormShipmentRepository implements ShipmentRepository using GORM.
type GormShipmentRepository struct {
	db *gorm.DB
}

// NewGormShipmentRepository creates a new GormShipmentRepository.
func NewGormShipmentRepository(db *gorm.DB) ShipmentRepository {
	return &GormShipmentRepository{db: db}
}

func (r *GormShipmentRepository) Create(ctx context.Context, shipment *models.Shipment) error {
	return r.db.WithContext(ctx).Create(shipment).Error
}

func (r *GormShipmentRepository) FindByOrderID(ctx context.Context, orderID uuid.UUID) (*models.Shipment, error) {
	var s models.Shipment
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *GormShipmentRepository) Update(ctx context.Context, shipment *models.Shipment) error {
	return r.db.WithContext(ctx).Save(shipment).Error
}
