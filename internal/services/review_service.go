// Package services – ReviewService
//
// This file implements the ReviewService, the aggregation core of the
// application. It computes grouped average ratings along two independent keys
// (owning entity, food item), ranks top-rated foods, enriches ranked entries
// with their catalog records, and handles review creation and listing.
//
// Aggregates are computed fresh on every call, with no cache and no
// incremental maintenance, and are never persisted. A computation either
// completes over the whole reviews table or fails; partial results are never
// returned.
package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/mealmesh/food-delivery-backend/internal/domain"
	"github.com/mealmesh/food-delivery-backend/internal/repo"
)

// DefaultTopFoodLimit is the ranking size used when the caller does not
// override it.
const DefaultTopFoodLimit = 10

// CreateReviewInput carries the caller-supplied fields for a new review.
// Rating is a pointer so that an explicit zero rating is distinguishable from
// an absent one.
type CreateReviewInput struct {
	CustomerID string
	FoodID     string
	OwnerID    string
	Rating     *float64
	Comment    string
}

// ReviewFilter narrows review listings. Zero values mean "no filter".
type ReviewFilter struct {
	OwnerID    string
	CustomerID string
}

// ReviewService implements review creation, listing, and the grouped-average
// computations. It is context-aware and safe for concurrent use; aggregation
// reads are not isolated from concurrent writes (no snapshot is taken).
type ReviewService struct {
	// DB is the database handle used for all review operations.
	DB *gorm.DB
	// TopLimit is the default ranking size for TopFoods. Zero means
	// DefaultTopFoodLimit.
	TopLimit int
}

// NewReviewService constructs a ReviewService with the default ranking size.
func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{DB: db, TopLimit: DefaultTopFoodLimit}
}

// Create validates and persists a review. CustomerID and Rating are required;
// FoodID, OwnerID, and Comment are optional. Nothing is persisted when
// validation fails (ErrReviewInvalid).
func (s *ReviewService) Create(ctx context.Context, in CreateReviewInput) (*domain.Review, error) {
	if strings.TrimSpace(in.CustomerID) == "" || in.Rating == nil {
		return nil, ErrReviewInvalid
	}
	r := &domain.Review{
		CustomerID: strings.TrimSpace(in.CustomerID),
		FoodID:     strings.TrimSpace(in.FoodID),
		OwnerID:    strings.TrimSpace(in.OwnerID),
		Rating:     *in.Rating,
		Comment:    in.Comment,
	}
	return repo.CreateReview(ctx, s.DB, r)
}

// List returns reviews in store-native order, optionally narrowed by owner or
// customer.
func (s *ReviewService) List(ctx context.Context, f ReviewFilter) ([]domain.Review, error) {
	return repo.ListReviews(ctx, s.DB, f.OwnerID, f.CustomerID)
}

// AverageByOwner returns the mean rating across all reviews attributed to
// ownerID. It computes the means for every distinct owner group and then
// selects the requested entry; filtering first would be equivalent since the
// filter and the group share the same key, but the compute-all shape is kept
// so the two NotFound cases (empty store, unknown owner) stay behaviorally
// identical. Returns ErrNoReviews when the owner has no attributed reviews.
func (s *ReviewService) AverageByOwner(ctx context.Context, ownerID string) (float64, error) {
	all, err := repo.OwnerAverages(ctx, s.DB)
	if err != nil {
		return 0, err
	}
	for _, a := range all {
		if a.OwnerID == ownerID {
			return a.AverageRating, nil
		}
	}
	return 0, ErrNoReviews
}

// OwnerAverages returns the mean rating for every distinct owner present in
// the store. Returns ErrNoReviews when no review carries an owner key.
func (s *ReviewService) OwnerAverages(ctx context.Context) ([]domain.OwnerAverage, error) {
	all, err := repo.OwnerAverages(ctx, s.DB)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, ErrNoReviews
	}
	return all, nil
}

// TopFoods returns at most `limit` foods ranked by mean rating descending
// (ties broken by food id ascending), each enriched with its catalog record.
// A limit <= 0 falls back to the service default. Returns ErrNoReviews when
// no review carries a food key.
func (s *ReviewService) TopFoods(ctx context.Context, limit int) ([]domain.FoodAverage, error) {
	if limit <= 0 {
		limit = s.TopLimit
	}
	if limit <= 0 {
		limit = DefaultTopFoodLimit
	}
	ranked, err := repo.FoodAverages(ctx, s.DB, limit)
	if err != nil {
		return nil, err
	}
	if len(ranked) == 0 {
		return nil, ErrNoReviews
	}
	return s.EnrichFoods(ctx, ranked)
}

// Stats returns the review count and the newest creation timestamp (nil when
// the store is empty). Reviews are append-only, so the pair fingerprints the
// full listing and backs its conditional-response validator.
func (s *ReviewService) Stats(ctx context.Context) (int64, *time.Time, error) {
	return repo.ReviewsStats(ctx, s.DB)
}

// EnrichFoods substitutes the full catalog record into each aggregate whose
// Food pointer is still nil. Entries referencing a deleted catalog record
// keep the bare identifier. The operation is idempotent: already-resolved
// entries are left untouched, so enriching a second time is a no-op.
func (s *ReviewService) EnrichFoods(ctx context.Context, items []domain.FoodAverage) ([]domain.FoodAverage, error) {
	for i := range items {
		if items[i].Food != nil {
			continue
		}
		f, err := repo.GetFood(ctx, s.DB, items[i].FoodID)
		if err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				continue // dangling reference: leave the raw id
			}
			return nil, err
		}
		items[i].Food = f
	}
	return items, nil
}
