package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"franchise-service/middleware"
	"franchise-service/repository"
)

type NotificationController struct {
	repo repository.NotificationRepository
}

func NewNotificationController(repo repository.NotificationRepository) *NotificationController {
	return &NotificationController{repo: repo}
}

// GetNotifications lists in-app notifications for the caller's role
func (nc *NotificationController) GetNotifications(ctx *gin.Context) {
	role := middleware.GetRole(ctx)
	page, limit := parsePaginationParams(ctx)

	notifications, total, err := nc.repo.FindByRole(ctx.Request.Context(), role, page, limit)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch notifications"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"notifications": notifications, "total": total})
}

// MarkNotificationRead flags one notification as read
func (nc *NotificationController) MarkNotificationRead(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid notification ID format"})
		return
	}

	if err := nc.repo.MarkRead(ctx.Request.Context(), id); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update notification"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
}
