package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mealmesh/food-delivery-backend/internal/domain"
	"github.com/mealmesh/food-delivery-backend/internal/services"
	"github.com/mealmesh/food-delivery-backend/internal/utils"
)

// FoodService defines the catalog operations consumed by HTTP handlers.
type FoodService interface {
	Create(ctx context.Context, in services.CreateFoodInput) (*domain.Food, error)
	Get(ctx context.Context, id string) (*domain.Food, error)
	ListPage(ctx context.Context, nameQuery string, page, pageSize int) ([]domain.Food, int64, error)
}

// Pagination bounds for catalog listings.
const (
	defaultFoodPageSize = 20
	maxFoodPageSize     = 100
)

// FoodPageResponse is a paginated catalog listing.
type FoodPageResponse struct {
	Items    []domain.Food `json:"items"`
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
}

// CreateFoodRequest is the JSON payload for adding a catalog entry.
type CreateFoodRequest struct {
	Name      string  `json:"name" binding:"required" example:"Paneer Tikka"`
	Category  string  `json:"category,omitempty" example:"starters"`
	Price     float64 `json:"price" binding:"required" example:"249"`
	OwnerID   string  `json:"owner_id" binding:"required" example:"owner-42"`
	ImagePath string  `json:"image_path,omitempty" example:"/images/image_1725000000000.png"`
}

// CreateFood godoc
// @ID          createFood
// @Summary     Add a food item
// @Tags        Foods
// @Accept      json
// @Produce     json
// @Param       body  body  handlers.CreateFoodRequest  true  "Food payload"
// @Success     201  {object} handlers.ReviewsResponse
// @Failure     400  {object} handlers.ErrorResponse
// @Failure     500  {object} handlers.ErrorResponse
// @Router      /foods [post]
func (h *Handlers) CreateFood(c *gin.Context) {
	var req CreateFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "name, price and owner_id are required")
		return
	}

	f, err := h.foodSvc.Create(c.Request.Context(), services.CreateFoodInput{
		Name:      req.Name,
		Category:  req.Category,
		Price:     req.Price,
		OwnerID:   req.OwnerID,
		ImagePath: req.ImagePath,
	})
	if err != nil {
		switch err {
		case services.ErrFoodInvalid:
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		default:
			fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		}
		return
	}

	ok(c, http.StatusCreated, ReviewsResponse{Message: "food added successfully", Result: f})
}

// ListFoods godoc
// @ID          listFoods
// @Summary     List food items
// @Description Paginated catalog listing with an optional case-insensitive name filter.
// @Tags        Foods
// @Produce     json
// @Param       q          query  string  false  "Name substring filter"
// @Param       page       query  int     false  "Page number"       minimum(1) default(1)
// @Param       page_size  query  int     false  "Items per page"    minimum(1) maximum(100) default(20)
// @Success     200  {object} handlers.FoodPageResponse
// @Failure     500  {object} handlers.ErrorResponse
// @Router      /foods [get]
func (h *Handlers) ListFoods(c *gin.Context) {
	page, pageSize := utils.ClampPage(
		utils.AtoiDefault(c.Query("page"), 1),
		utils.AtoiDefault(c.Query("page_size"), 20),
		defaultFoodPageSize, maxFoodPageSize,
	)

	items, total, err := h.foodSvc.ListPage(c.Request.Context(), c.Query("q"), page, pageSize)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}

	ok(c, http.StatusOK, FoodPageResponse{Items: items, Total: total, Page: page, PageSize: pageSize})
}

// GetFood godoc
// @ID          getFood
// @Summary     Fetch one food item
// @Tags        Foods
// @Produce     json
// @Param       id  path  string  true  "Food ID"
// @Success     200  {object} handlers.ReviewsResponse
// @Failure     404  {object} handlers.ErrorResponse
// @Failure     500  {object} handlers.ErrorResponse
// @Router      /foods/{id} [get]
func (h *Handlers) GetFood(c *gin.Context) {
	f, err := h.foodSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch err {
		case services.ErrFoodNotFound:
			fail(c, http.StatusNotFound, ErrCodeNotFound, "food not found")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}
	ok(c, http.StatusOK, ReviewsResponse{Message: "food", Result: f})
}
