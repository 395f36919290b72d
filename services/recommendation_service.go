package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"franchise-service/models"
	"franchise-service/repository"
)

// recommendationCacheTTL bounds how stale a cached suggestion list can get.
const recommendationCacheTTL = 5 * time.Minute

var priorityRank = map[string]int{
	models.PriorityHigh:   3,
	models.PriorityMedium: 2,
	models.PriorityLow:    1,
}

// RecommendationService suggests reorder quantities for low-stock items.
type RecommendationService interface {
	GetRecommendations(ctx context.Context, locationID uuid.UUID) ([]models.ReorderSuggestion, *ServiceError)
}

type recommendationServiceImpl struct {
	inventory repository.InventoryRepository
	cache     *redis.Client
	logger    *zap.Logger
}

// NewRecommendationService creates a new RecommendationService. cache may be
// nil to disable caching.
func NewRecommendationService(inventory repository.InventoryRepository, cache *redis.Client, logger *zap.Logger) RecommendationService {
	return &recommendationServiceImpl{
		inventory: inventory,
		cache:     cache,
		logger:    logger,
	}
}

// GetRecommendations is a pure read: fetch the snapshot, filter to items at
// or below reorder level, and rank them. Output ordering is deterministic
// for an unchanged snapshot.
func (s *recommendationServiceImpl) GetRecommendations(ctx context.Context, locationID uuid.UUID) ([]models.ReorderSuggestion, *ServiceError) {
	cacheKey := fmt.Sprintf("reorder:location:%s", locationID)

	if s.cache != nil {
		if data, err := s.cache.Get(ctx, cacheKey).Result(); err == nil {
			var cached []models.ReorderSuggestion
			if err := json.Unmarshal([]byte(data), &cached); err == nil {
				return cached, nil
			}
		}
	}

	records, err := s.inventory.FindByLocation(ctx, locationID)
	if err != nil {
		s.logger.Error("Failed to fetch inventory for recommendations", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to compute recommendations"}
	}

	suggestions := make([]models.ReorderSuggestion, 0, len(records))
	for _, rec := range records {
		if rec.AvailableQuantity > rec.ReorderLevel {
			continue
		}

		deficit := rec.ReorderLevel - rec.AvailableQuantity
		refill := rec.MaxStockLevel - rec.AvailableQuantity
		suggested := deficit
		if refill > suggested {
			suggested = refill
		}

		priority := models.PriorityLow
		switch {
		case rec.AvailableQuantity == 0:
			priority = models.PriorityHigh
		case rec.AvailableQuantity <= rec.ReorderLevel/2:
			priority = models.PriorityMedium
		}

		suggestions = append(suggestions, models.ReorderSuggestion{
			ProductID:         rec.ProductID,
			AvailableQuantity: rec.AvailableQuantity,
			ReorderLevel:      rec.ReorderLevel,
			SuggestedQuantity: suggested,
			Priority:          priority,
		})
	}

	// Product id breaks ties so repeat calls return identical ordering.
	sort.Slice(suggestions, func(i, j int) bool {
		ri, rj := priorityRank[suggestions[i].Priority], priorityRank[suggestions[j].Priority]
		if ri != rj {
			return ri > rj
		}
		return suggestions[i].ProductID.String() < suggestions[j].ProductID.String()
	})

	if s.cache != nil {
		if data, err := json.Marshal(suggestions); err == nil {
			if err := s.cache.Set(ctx, cacheKey, data, recommendationCacheTTL).Err(); err != nil {
				s.logger.Warn("Failed to cache recommendations", zap.Error(err))
			}
		}
	}

	return suggestions, nil
}
