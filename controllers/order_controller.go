package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"franchise-service/middleware"
	"franchise-service/services"
)

type OrderController struct {
	orderService   services.OrderService
	invoiceService services.InvoiceService
}

func NewOrderController(orderService services.OrderService, invoiceService services.InvoiceService) *OrderController {
	return &OrderController{
		orderService:   orderService,
		invoiceService: invoiceService,
	}
}

// CreateOrder handles franchisee order creation requests
func (oc *OrderController) CreateOrder(ctx *gin.Context) {
	userID, err := middleware.GetUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req services.CreateOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	result, svcErr := oc.orderService.CreateOrder(ctx.Request.Context(), userID, &req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	if result.Duplicate {
		ctx.JSON(http.StatusOK, result)
		return
	}
	ctx.JSON(http.StatusCreated, result)
}

// GetOrders returns paginated orders scoped by role
func (oc *OrderController) GetOrders(ctx *gin.Context) {
	role := middleware.GetRole(ctx)
	locationID := middleware.GetLocationID(ctx)

	page, limit := parsePaginationParams(ctx)

	result, svcErr := oc.orderService.GetOrders(ctx.Request.Context(), role, locationID, page, limit)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// GetOrderByID returns a specific order
func (oc *OrderController) GetOrderByID(ctx *gin.Context) {
	orderID, ok := parseOrderID(ctx)
	if !ok {
		return
	}

	order, svcErr := oc.orderService.GetOrder(ctx.Request.Context(), orderID)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"order": order})
}

// ApproveOrder transitions a pending order to processing (franchisor only)
func (oc *OrderController) ApproveOrder(ctx *gin.Context) {
	approverID, err := middleware.GetUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	orderID, ok := parseOrderID(ctx)
	if !ok {
		return
	}

	result, svcErr := oc.orderService.ApproveOrder(ctx.Request.Context(), orderID, approverID)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// RejectOrder cancels a pending order and releases its reservation
func (oc *OrderController) RejectOrder(ctx *gin.Context) {
	orderID, ok := parseOrderID(ctx)
	if !ok {
		return
	}

	var body struct {
		Reason string `json:"reason" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Rejection reason is required"})
		return
	}

	result, svcErr := oc.orderService.RejectOrder(ctx.Request.Context(), orderID, body.Reason)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// MarkShipped advances a processing order to shipped
func (oc *OrderController) MarkShipped(ctx *gin.Context) {
	orderID, ok := parseOrderID(ctx)
	if !ok {
		return
	}

	order, svcErr := oc.orderService.MarkShipped(ctx.Request.Context(), orderID)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"order": order})
}

// MarkDelivered closes out a shipped order
func (oc *OrderController) MarkDelivered(ctx *gin.Context) {
	orderID, ok := parseOrderID(ctx)
	if !ok {
		return
	}

	order, svcErr := oc.orderService.MarkDelivered(ctx.Request.Context(), orderID)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"order": order})
}

// GetMovements returns the ledger entries referencing an order
func (oc *OrderController) GetMovements(ctx *gin.Context) {
	orderID, ok := parseOrderID(ctx)
	if !ok {
		return
	}

	movements, svcErr := oc.orderService.GetMovements(ctx.Request.Context(), orderID)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"movements": movements})
}

// GetInvoice returns the invoice issued for an order
func (oc *OrderController) GetInvoice(ctx *gin.Context) {
	orderID, ok := parseOrderID(ctx)
	if !ok {
		return
	}

	invoice, err := oc.invoiceService.GetByOrderID(ctx.Request.Context(), orderID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "No invoice for this order"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"invoice": invoice})
}

// GetShipment returns the shipment for an approved order
func (oc *OrderController) GetShipment(ctx *gin.Context) {
	orderID, ok := parseOrderID(ctx)
	if !ok {
		return
	}

	shipment, svcErr := oc.orderService.GetShipment(ctx.Request.Context(), orderID)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"shipment": shipment})
}

func parseOrderID(ctx *gin.Context) (uuid.UUID, bool) {
	orderID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID format"})
		return uuid.Nil, false
	}
	return orderID, true
}

// parsePaginationParams extracts and validates pagination parameters
func parsePaginationParams(ctx *gin.Context) (int, int) {
	const MaxLimit = 100
	const DefaultPage = 1
	const DefaultLimit = 10

	page := ctx.DefaultQuery("page", "1")
	limit := ctx.DefaultQuery("limit", "10")

	pageInt := DefaultPage
	limitInt := DefaultLimit

	if p, err := strconv.Atoi(page); err == nil && p > 0 {
		pageInt = p
	}

	if l, err := strconv.Atoi(limit); err == nil && l > 0 {
		limitInt = l
		if limitInt > MaxLimit {
			limitInt = MaxLimit
		}
	}

	return pageInt, limitInt
}
