// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Food
// catalog, including the lookup primitive used by reference enrichment.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mealmesh/food-delivery-backend/internal/domain"
)

// CreateFood inserts a new catalog entry with a generated UUID.
func CreateFood(ctx context.Context, db *gorm.DB, f *domain.Food) (*domain.Food, error) {
	f.ID = uuid.NewString()
	f.CreatedAt = time.Now().UTC()
	if err := db.WithContext(ctx).Create(f).Error; err != nil {
		return nil, err
	}
	return f, nil
}

// GetFood fetches a catalog entry by ID, or ErrNotFound if missing.
func GetFood(ctx context.Context, db *gorm.DB, id string) (*domain.Food, error) {
	var f domain.Food
	if err := db.WithContext(ctx).Where("id = ?", id).First(&f).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

// CountFoods returns the catalog size, optionally narrowed by a name filter.
func CountFoods(ctx context.Context, db *gorm.DB, nameQuery string) (int64, error) {
	q := db.WithContext(ctx).Model(&domain.Food{})
	if nameQuery != "" {
		q = q.Where("name LIKE ?", "%"+nameQuery+"%")
	}
	var total int64
	err := q.Count(&total).Error
	return total, err
}

// ListFoodsPage returns a paginated slice of catalog entries ordered by name.
// nameQuery, when non-empty, narrows the result with a substring match.
// The caller computes offset and limit (e.g., (page-1)*pageSize).
func ListFoodsPage(ctx context.Context, db *gorm.DB, nameQuery string, offset, limit int) ([]domain.Food, error) {
	q := db.WithContext(ctx).Model(&domain.Food{})
	if nameQuery != "" {
		q = q.Where("name LIKE ?", "%"+nameQuery+"%")
	}
	var out []domain.Food
	err := q.Order("name ASC, id ASC").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	return out, err
}
