package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"franchise-service/controllers"
	"franchise-service/middleware"
	"franchise-service/models"
	awspkg "franchise-service/pkg/aws"
)

// Register sets up all routes. The franchisor-only group covers approvals
// and fulfillment; everything else is shared by both roles.
func Register(
	r *gin.Engine,
	jwtSecret []byte,
	metricsClient *awspkg.MetricsClient,
	oc *controllers.OrderController,
	ic *controllers.InventoryController,
	cc *controllers.CatalogController,
	nc *controllers.NotificationController,
) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimitMiddleware())
	api.Use(middleware.MetricsMiddleware(metricsClient, "franchise-service"))
	api.Use(middleware.AuthMiddleware(jwtSecret))

	// Orders
	api.POST("/orders", middleware.RequireRole(models.RoleFranchisee), oc.CreateOrder)
	api.GET("/orders", oc.GetOrders)
	api.GET("/orders/:id", oc.GetOrderByID)
	api.GET("/orders/:id/movements", oc.GetMovements)
	api.GET("/orders/:id/invoice", oc.GetInvoice)
	api.GET("/orders/:id/shipment", oc.GetShipment)

	// Franchisor-side lifecycle transitions
	franchisor := api.Group("")
	franchisor.Use(middleware.RequireRole(models.RoleFranchisor))
	franchisor.POST("/orders/:id/approve", oc.ApproveOrder)
	franchisor.POST("/orders/:id/reject", oc.RejectOrder)
	franchisor.POST("/orders/:id/ship", oc.MarkShipped)
	franchisor.POST("/orders/:id/deliver", oc.MarkDelivered)

	// Inventory
	api.GET("/locations/:id/inventory", ic.GetLocationInventory)
	api.GET("/locations/:id/recommendations", ic.GetRecommendations)

	// Catalog
	api.GET("/products", cc.ListProducts)
	api.GET("/locations", cc.ListLocations)

	// Notifications
	api.GET("/notifications", nc.GetNotifications)
	api.POST("/notifications/:id/read", nc.MarkNotificationRead)
}
