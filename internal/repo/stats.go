// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides small aggregate/statistics queries used
// primarily for conditional responses (ETag generation) in the HTTP layer.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/mealmesh/food-delivery-backend/internal/domain"
)

// ReviewsStats returns aggregate metadata for the reviews table: the total
// number of rows and the maximum CreatedAt timestamp among them. Reviews are
// append-only, so (count, max created_at) uniquely fingerprints the table
// state for weak-ETag purposes.
//
// When there are no reviews, the returned count is 0 and maxCreatedAt is nil.
func ReviewsStats(ctx context.Context, db *gorm.DB) (count int64, maxCreatedAt *time.Time, err error) {
	q := db.WithContext(ctx).Model(&domain.Review{})

	if err = q.Count(&count).Error; err != nil {
		return 0, nil, err
	}
	if count == 0 {
		return 0, nil, nil
	}

	// Get latest created_at (avoid MAX() -> TEXT in SQLite)
	var row struct {
		CreatedAt time.Time
	}
	if err = q.Select("created_at").Order("created_at DESC").Limit(1).Scan(&row).Error; err != nil {
		return 0, nil, err
	}
	return count, &row.CreatedAt, nil
}
