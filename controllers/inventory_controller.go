package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"franchise-service/repository"
	"franchise-service/services"
)

type InventoryController struct {
	inventoryRepo   repository.InventoryRepository
	recommendations services.RecommendationService
}

func NewInventoryController(inventoryRepo repository.InventoryRepository, recommendations services.RecommendationService) *InventoryController {
	return &InventoryController{
		inventoryRepo:   inventoryRepo,
		recommendations: recommendations,
	}
}

// GetLocationInventory returns the full stock snapshot for a location
func (ic *InventoryController) GetLocationInventory(ctx *gin.Context) {
	locationID, ok := parseLocationID(ctx)
	if !ok {
		return
	}

	records, err := ic.inventoryRepo.FindByLocation(ctx.Request.Context(), locationID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch inventory"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"inventory": records})
}

// GetRecommendations returns prioritized reorder suggestions
func (ic *InventoryController) GetRecommendations(ctx *gin.Context) {
	locationID, ok := parseLocationID(ctx)
	if !ok {
		return
	}

	suggestions, svcErr := ic.recommendations.GetRecommendations(ctx.Request.Context(), locationID)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"recommendations": suggestions})
}

func parseLocationID(ctx *gin.Context) (uuid.UUID, bool) {
	locationID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid location ID format"})
		return uuid.Nil, false
	}
	return locationID, true
}
