package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"franchise-service/models"
)

// CatalogRepository reads franchisor-managed locations and products.
type CatalogRepository interface {
	FindLocationByID(ctx context.Context, id uuid.UUID) (*models.FranchiseLocation, error)
	ListLocations(ctx context.Context, page, limit int) ([]models.FranchiseLocation, int64, error)
	FindProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	FindProductsByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Product, error)
	ListProducts(ctx context.Context, page, limit int) ([]models.Product, int64, error)
}

// GormCatalogRepository implements CatalogRepository using GORM.
type GormCatalogRepository struct {
	db *gorm.DB
}

// NewGormCatalogRepository creates a new GormCatalogRepository.
func NewGormCatalogRepository(db *gorm.DB) CatalogRepository {
	return &GormCatalogRepository{db: db}
}

func (r *GormCatalogRepository) FindLocationByID(ctx context.Context, id uuid.UUID) (*models.FranchiseLocation, error) {
	var loc models.FranchiseLocation
	if err := r.db.WithContext(ctx).First(&loc, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &loc, nil
}

func (r *GormCatalogRepository) ListLocations(ctx context.Context, page, limit int) ([]models.FranchiseLocation, int64, error) {
	var locations []models.FranchiseLocation
	var total int64

	query := r.db.WithContext(ctx).Model(&models.FranchiseLocation{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.
		Offset(offset).Limit(limit).
		Order("name ASC").
		Find(&locations).Error; err != nil {
		return nil, 0, err
	}

	return locations, total, nil
}

func (r *GormCatalogRepository) FindProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var p models.Product
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// FindProductsByIDs returns the products that exist; missing ids are simply
// absent from the result.
func (r *GormCatalogRepository) FindProductsByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Product, error) {
	var products []models.Product
	if len(ids) == 0 {
		return products, nil
	}
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *GormCatalogRepository) ListProducts(ctx context.Context, page, limit int) ([]models.Product, int64, error) {
	var products []models.Product
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Product{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.
		Offset(offset).Limit(limit).
		Order("name ASC").
		Find(&products).Error; err != nil {
		return nil, 0, err
	}

	return products, total, nil
}
