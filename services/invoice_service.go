package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"franchise-service/models"
	"franchise-service/repository"
)

// InvoiceDueDays is how long after issue an invoice falls due.
const InvoiceDueDays = 30

// InvoiceService issues invoices for created orders.
type InvoiceService interface {
	GenerateForOrder(ctx context.Context, order *models.Order) (*models.Invoice, error)
	GetByOrderID(ctx context.Context, orderID uuid.UUID) (*models.Invoice, error)
}

type invoiceServiceImpl struct {
	repo   repository.InvoiceRepository
	logger *zap.Logger
}

// NewInvoiceService creates a new InvoiceService.
func NewInvoiceService(repo repository.InvoiceRepository, logger *zap.Logger) InvoiceService {
	return &invoiceServiceImpl{repo: repo, logger: logger}
}

// GenerateForOrder creates one invoice copying the order's totals. The
// invoice number comes from the database sequence; if that read fails a
// timestamp-based number is used instead.
func (s *invoiceServiceImpl) GenerateForOrder(ctx context.Context, order *models.Order) (*models.Invoice, error) {
	now := time.Now()

	number := ""
	if seq, err := s.repo.NextInvoiceNumber(ctx); err == nil {
		number = fmt.Sprintf("INV-%s-%d", now.Format("20060102"), seq)
	} else {
		s.logger.Warn("Invoice number sequence unavailable, falling back to timestamp",
			zap.Error(err),
		)
		number = fmt.Sprintf("INV-%d", now.UnixNano())
	}

	invoice := &models.Invoice{
		InvoiceNumber: number,
		OrderID:       order.ID,
		Subtotal:      order.Subtotal,
		Tax:           order.Tax,
		Total:         order.Total,
		IssueDate:     now,
		DueDate:       now.AddDate(0, 0, InvoiceDueDays),
		Status:        models.InvoiceStatusSent,
	}

	if err := s.repo.Create(ctx, invoice); err != nil {
		return nil, err
	}

	s.logger.Info("Invoice issued",
		zap.String("invoice_number", invoice.InvoiceNumber),
		zap.String("order_id", order.ID.String()),
		zap.Int("total", invoice.Total),
	)
	return invoice, nil
}

func (s *invoiceServiceImpl) GetByOrderID(ctx context.Context, orderID uuid.UUID) (*models.Invoice, error) {
	return s.repo.FindByOrderID(ctx, orderID)
}
