package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/DianaCarolina3/recipes/internal/apperr"
	"github.com/DianaCarolina3/recipes/internal/model"
)

const (
	categoryCacheKey = "categories:all"
	categoryCacheTTL = 10 * time.Minute
)

// CategoryService serves the category lookup table. The list is read-heavy
// and rarely changes, so it is cached in Redis as JSON when a client is
// available; cache failures fall back to the database.
type CategoryService struct {
	db    *gorm.DB
	cache *redis.Client
}

func NewCategoryService(db *gorm.DB, cache *redis.Client) *CategoryService {
	return &CategoryService{db: db, cache: cache}
}

// List returns all categories ordered by name.
func (s *CategoryService) List(ctx context.Context) ([]model.Category, error) {
	if s.cache != nil {
		if data, err := s.cache.Get(ctx, categoryCacheKey).Bytes(); err == nil {
			var categories []model.Category
			if err := json.Unmarshal(data, &categories); err == nil {
				return categories, nil
			}
		}
	}

	var categories []model.Category
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, apperr.Internal(err)
	}

	if s.cache != nil {
		if data, err := json.Marshal(categories); err == nil {
			s.cache.Set(ctx, categoryCacheKey, data, categoryCacheTTL)
		}
	}
	return categories, nil
}
