// Review HTTP handlers.
//
// This file exposes the REST endpoints for the review aggregation subsystem:
//   - POST /reviews              (create review)
//   - GET  /reviews              (list, optional owner/customer filters, ETag)
//   - GET  /reviews/top          (top-N foods by average rating, enriched)
//   - GET  /reviews/owners/avg   (average rating per owner)
//   - GET  /reviews/owners/{id}/avg (average rating for one owner)
//
// Handlers are transport-thin: they validate input, delegate to the review
// service, and translate service errors into HTTP results. Averages are
// emitted unrounded, exactly as computed.
package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mealmesh/food-delivery-backend/internal/domain"
	"github.com/mealmesh/food-delivery-backend/internal/services"
	"github.com/mealmesh/food-delivery-backend/internal/utils"
)

// ReviewService defines the aggregation operations consumed by HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type ReviewService interface {
	// Create validates and persists a new review.
	Create(ctx context.Context, in services.CreateReviewInput) (*domain.Review, error)
	// List returns reviews in store order, optionally filtered.
	List(ctx context.Context, f services.ReviewFilter) ([]domain.Review, error)
	// AverageByOwner returns the mean rating attributed to one owner.
	AverageByOwner(ctx context.Context, ownerID string) (float64, error)
	// OwnerAverages returns the mean rating per distinct owner.
	OwnerAverages(ctx context.Context) ([]domain.OwnerAverage, error)
	// TopFoods returns the enriched top-N foods by mean rating.
	TopFoods(ctx context.Context, limit int) ([]domain.FoodAverage, error)
	// Stats returns the review count and newest creation timestamp, the
	// fingerprint behind the listing's conditional responses.
	Stats(ctx context.Context) (int64, *time.Time, error)
}

// CreateReviewRequest is the JSON payload for creating a review. Rating is a
// pointer so an explicit zero is accepted; customer_id and rating are the
// only required fields.
type CreateReviewRequest struct {
	CustomerID string   `json:"customer_id" binding:"required" example:"0b54c519-dd46-4dd1-8d39-1e2f75bbb05e"`
	FoodID     string   `json:"food_id,omitempty" example:"f7a0c6d9-9a1a-4a0e-bd15-1fb586f6a97b"`
	OwnerID    string   `json:"owner_id,omitempty" example:"owner-42"`
	Rating     *float64 `json:"rating" binding:"required" example:"4.5"`
	Comment    string   `json:"comment,omitempty" example:"Great paneer tikka"`
}

// ReviewsResponse wraps review listings and creations in the upstream API's
// message/result envelope.
type ReviewsResponse struct {
	Message string `json:"message"`
	Result  any    `json:"result"`
}

// TopReviewsResponse wraps the enriched food ranking.
type TopReviewsResponse struct {
	TopReviews []domain.FoodAverage `json:"top_reviews"`
}

// OwnerAveragesResponse wraps the per-owner average listing.
type OwnerAveragesResponse struct {
	AverageRating []domain.OwnerAverage `json:"average_rating"`
}

// OwnerAverageResponse carries the single-owner average.
type OwnerAverageResponse struct {
	AverageRating float64 `json:"average_rating"`
}

// CreateReview godoc
// @ID          createReview
// @Summary     Create a review
// @Description Persists a review for a food item and/or an owning entity. Customer id and rating are required.
// @Tags        Reviews
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.CreateReviewRequest  true  "Review payload"
//
// @Success     201  {object} handlers.ReviewsResponse
// @Failure     400  {object} handlers.ErrorResponse "Missing customer id or rating"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /reviews [post]
func (h *Handlers) CreateReview(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "customer_id and rating are required")
		return
	}

	r, err := h.reviewSvc.Create(c.Request.Context(), services.CreateReviewInput{
		CustomerID: req.CustomerID,
		FoodID:     req.FoodID,
		OwnerID:    req.OwnerID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	})
	if err != nil {
		switch err {
		case services.ErrReviewInvalid:
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		default:
			fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		}
		return
	}

	ok(c, http.StatusCreated, ReviewsResponse{Message: "review added successfully", Result: r})
}

// ListReviews godoc
// @ID          listReviews
// @Summary     List reviews
// @Description Returns every review in store order. Supports owner_id / customer_id query filters and a weak ETag via If-None-Match.
// @Tags        Reviews
// @Produce     json
//
// @Param       owner_id       query   string  false "Filter by owning entity"
// @Param       customer_id    query   string  false "Filter by authoring customer"
// @Param       If-None-Match  header  string  false "Return 304 if ETag matches"
//
// @Success     200  {object} handlers.ReviewsResponse
// @Success     304  {string} string "Not Modified"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /reviews [get]
func (h *Handlers) ListReviews(c *gin.Context) {
	ctx := c.Request.Context()

	// ETag pre-check (best effort): reviews are append-only, so the table
	// count plus the newest created_at fingerprints the result.
	if c.Query("owner_id") == "" && c.Query("customer_id") == "" {
		count, maxTS, err := h.reviewSvc.Stats(ctx)
		if err == nil {
			var ts int64
			if maxTS != nil {
				ts = maxTS.Unix()
			}
			etag := fmt.Sprintf(`W/"reviews:%d:%d"`, count, ts)
			c.Header("ETag", etag)
			if inm := c.GetHeader("If-None-Match"); inm != "" && inm == etag {
				c.Status(http.StatusNotModified)
				return
			}
		}
	}

	items, err := h.reviewSvc.List(ctx, services.ReviewFilter{
		OwnerID:    c.Query("owner_id"),
		CustomerID: c.Query("customer_id"),
	})
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}

	ok(c, http.StatusOK, ReviewsResponse{Message: "all reviews", Result: items})
}

// TopReviews godoc
// @ID          topReviews
// @Summary     Top foods by average rating
// @Description Groups reviews by food, ranks mean ratings descending (food id ascending on ties), truncates to the limit (default 10), and enriches each entry with its catalog record.
// @Tags        Reviews
// @Produce     json
//
// @Param       limit  query  int  false  "Ranking size"  minimum(1) maximum(100) default(10)
//
// @Success     200  {object} handlers.TopReviewsResponse
// @Failure     404  {object} handlers.ErrorResponse "No food-attributed reviews"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /reviews/top [get]
func (h *Handlers) TopReviews(c *gin.Context) {
	limit := utils.AtoiDefault(c.Query("limit"), 0) // 0 → service default
	if limit > maxTopLimit {
		limit = maxTopLimit
	}

	ranked, err := h.reviewSvc.TopFoods(c.Request.Context(), limit)
	if err != nil {
		switch err {
		case services.ErrNoReviews:
			fail(c, http.StatusNotFound, ErrCodeNotFound, "no reviews found")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}

	ok(c, http.StatusOK, TopReviewsResponse{TopReviews: ranked})
}

// OwnerAverages godoc
// @ID          ownerAverages
// @Summary     Average rating per owner
// @Description Computes the mean rating for every owning entity that has at least one attributed review. Owner entries are not enriched.
// @Tags        Reviews
// @Produce     json
//
// @Success     200  {object} handlers.OwnerAveragesResponse
// @Failure     404  {object} handlers.ErrorResponse "No owner-attributed reviews"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /reviews/owners/avg [get]
func (h *Handlers) OwnerAverages(c *gin.Context) {
	all, err := h.reviewSvc.OwnerAverages(c.Request.Context())
	if err != nil {
		switch err {
		case services.ErrNoReviews:
			fail(c, http.StatusNotFound, ErrCodeNotFound, "no reviews found")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}

	ok(c, http.StatusOK, OwnerAveragesResponse{AverageRating: all})
}

// OwnerAverage godoc
// @ID          ownerAverage
// @Summary     Average rating for one owner
// @Description Returns the unrounded mean rating across all reviews attributed to the owner.
// @Tags        Reviews
// @Produce     json
//
// @Param       id  path  string  true  "Owner ID"  example(owner-42)
//
// @Success     200  {object} handlers.OwnerAverageResponse
// @Failure     404  {object} handlers.ErrorResponse "No reviews for this owner"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /reviews/owners/{id}/avg [get]
func (h *Handlers) OwnerAverage(c *gin.Context) {
	avg, err := h.reviewSvc.AverageByOwner(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch err {
		case services.ErrNoReviews:
			fail(c, http.StatusNotFound, ErrCodeNotFound, "no reviews found for this owner")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}

	ok(c, http.StatusOK, OwnerAverageResponse{AverageRating: avg})
}

// maxTopLimit caps caller-supplied ranking sizes.
const maxTopLimit = 100
