package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"franchise-service/models"
)

// InvoiceRepository manages invoice rows and the backing number sequence.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *models.Invoice) error
	FindByOrderID(ctx context.Context, orderID uuid.UUID) (*models.Invoice, error)
	NextInvoiceNumber(ctx context.Context) (int64, error)
	Update(ctx context.Context, invoice *models.Invoice) error
}

// GormInvoiceRepository implements InvoiceRepository using GORM.
type GormInvoiceRepository struct {
	db *gorm.DB
}

// NewGormInvoiceRepository creates a new GormInvoiceRepository.
func NewGormInvoiceRepository(db *gorm.DB) InvoiceRepository {
	return &GormInvoiceRepository{db: db}
}

func (r *GormInvoiceRepository) Create(ctx context.Context, invoice *models.Invoice) error {
	return r.db.WithContext(ctx).Create(invoice).Error
}

func (r *GormInvoiceRepository) FindByOrderID(ctx context.Context, orderID uuid.UUID) (*models.Invoice, error) {
	var invoice models.Invoice
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		First(&invoice).Error; err != nil {
		return nil, err
	}
	return &invoice, nil
}

// NextInvoiceNumber reads the database-side invoice number generator.
func (r *GormInvoiceRepository) NextInvoiceNumber(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).
		Raw("SELECT nextval('invoice_number_seq')").
		Scan(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (r *GormInvoiceRepository) Update(ctx context.Context, invoice *models.Invoice) error {
	return r.db.WithContext(ctx).Save(invoice).Error
}
