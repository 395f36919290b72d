package services_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"franchise-service/models"
	"franchise-service/services"
)

func newInvoiceFixture(repo *mockInvoiceRepo) services.InvoiceService {
	logger, _ := zap.NewDevelopment()
	return services.NewInvoiceService(repo, logger)
}

func TestGenerateForOrder_SequenceNumber(t *testing.T) {
	repo := &mockInvoiceRepo{nextNum: 1042}
	svc := newInvoiceFixture(repo)
	order := &models.Order{ID: uuid.New(), Subtotal: 5000, Tax: 400, Total: 5400}

	invoice, err := svc.GenerateForOrder(context.Background(), order)

	assert.NoError(t, err)
	expected := fmt.Sprintf("INV-%s-1042", time.Now().Format("20060102"))
	assert.Equal(t, expected, invoice.InvoiceNumber)
	assert.Equal(t, order.ID, invoice.OrderID)
	assert.Equal(t, 5000, invoice.Subtotal)
	assert.Equal(t, 400, invoice.Tax)
	assert.Equal(t, 5400, invoice.Total)
	assert.Equal(t, models.InvoiceStatusSent, invoice.Status)
	assert.WithinDuration(t, invoice.IssueDate.AddDate(0, 0, 30), invoice.DueDate, time.Second)
	assert.Equal(t, invoice, repo.created)
}

func TestGenerateForOrder_TimestampFallback(t *testing.T) {
	repo := &mockInvoiceRepo{nextErr: errors.New("sequence unavailable")}
	svc := newInvoiceFixture(repo)
	order := &models.Order{ID: uuid.New(), Total: 100}

	invoice, err := svc.GenerateForOrder(context.Background(), order)

	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(invoice.InvoiceNumber, "INV-"))
	// Fallback numbers are INV-<nanos>, no date segment.
	assert.Equal(t, 1, strings.Count(invoice.InvoiceNumber, "-"))
}

func TestGenerateForOrder_CreateError(t *testing.T) {
	repo := &mockInvoiceRepo{nextNum: 1, createErr: errors.New("insert failed")}
	svc := newInvoiceFixture(repo)

	invoice, err := svc.GenerateForOrder(context.Background(), &models.Order{ID: uuid.New()})

	assert.Error(t, err)
	assert.Nil(t, invoice)
}

func TestGetByOrderID(t *testing.T) {
	repo := &mockInvoiceRepo{created: &models.Invoice{ID: uuid.New(), InvoiceNumber: "INV-20260829-1001"}}
	svc := newInvoiceFixture(repo)

	invoice, err := svc.GetByOrderID(context.Background(), uuid.New())

	assert.NoError(t, err)
	assert.Equal(t, "INV-20260829-1001", invoice.InvoiceNumber)
}
