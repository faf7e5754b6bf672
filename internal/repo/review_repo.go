// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Review
// model, including the grouped-average queries that back the aggregation
// service.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations. They
// follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Aggregation semantics:
//   - Averages are computed by the database (AVG over float64 rating), grouped
//     by the chosen key. Rows whose group key is empty are excluded, so an
//     unattributed review never produces a phantom group.
//   - FoodAverages orders by mean descending with food_id ascending as the
//     deterministic tie-break, then truncates to the requested limit.
//
// Error semantics:
//   - When a record is not found, functions return gorm.ErrRecordNotFound
//     (also exported here as ErrNotFound for convenience).
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mealmesh/food-delivery-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// CreateReview inserts a new review row. The review ID is a randomly
// generated UUID and CreatedAt is set to UTC. On failure, it returns the raw
// DB error and nothing is persisted.
func CreateReview(ctx context.Context, db *gorm.DB, r *domain.Review) (*domain.Review, error) {
	r.ID = uuid.NewString()
	r.CreatedAt = time.Now().UTC()
	if err := db.WithContext(ctx).Create(r).Error; err != nil {
		return nil, err
	}
	return r, nil
}

// ListReviews returns reviews in store-native order (no explicit sort; the
// insertion order of the underlying table is not part of the contract).
// ownerID and customerID, when non-empty, narrow the result to matching rows.
func ListReviews(ctx context.Context, db *gorm.DB, ownerID, customerID string) ([]domain.Review, error) {
	q := db.WithContext(ctx).Model(&domain.Review{})
	if ownerID != "" {
		q = q.Where("owner_id = ?", ownerID)
	}
	if customerID != "" {
		q = q.Where("customer_id = ?", customerID)
	}
	var out []domain.Review
	err := q.Find(&out).Error
	return out, err
}

// OwnerAverages returns the arithmetic-mean rating for every distinct owner
// present in the reviews table. Reviews without an owner key are excluded;
// the result is empty (not an error) when no attributable review exists.
func OwnerAverages(ctx context.Context, db *gorm.DB) ([]domain.OwnerAverage, error) {
	var out []domain.OwnerAverage
	err := db.WithContext(ctx).
		Model(&domain.Review{}).
		Select("owner_id, AVG(rating) AS average_rating").
		Where("owner_id <> ''").
		Group("owner_id").
		Scan(&out).Error
	return out, err
}

// FoodAverages returns the top `limit` foods by arithmetic-mean rating,
// sorted by mean descending. Ties are broken by food_id ascending so the
// ranking is deterministic. Reviews without a food key are excluded.
func FoodAverages(ctx context.Context, db *gorm.DB, limit int) ([]domain.FoodAverage, error) {
	var out []domain.FoodAverage
	q := db.WithContext(ctx).
		Model(&domain.Review{}).
		Select("food_id, AVG(rating) AS average_rating").
		Where("food_id <> ''").
		Group("food_id").
		Order("average_rating DESC, food_id ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Scan(&out).Error
	return out, err
}
