package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"franchise-service/repository"
)

type CatalogController struct {
	catalogRepo repository.CatalogRepository
}

func NewCatalogController(catalogRepo repository.CatalogRepository) *CatalogController {
	return &CatalogController{catalogRepo: catalogRepo}
}

// ListProducts returns the franchisor catalog
func (cc *CatalogController) ListProducts(ctx *gin.Context) {
	page, limit := parsePaginationParams(ctx)

	products, total, err := cc.catalogRepo.ListProducts(ctx.Request.Context(), page, limit)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"products": products, "total": total})
}

// ListLocations returns all franchise locations
func (cc *CatalogController) ListLocations(ctx *gin.Context) {
	page, limit := parsePaginationParams(ctx)

	locations, total, err := cc.catalogRepo.ListLocations(ctx.Request.Context(), page, limit)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch locations"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"locations": locations, "total": total})
}
