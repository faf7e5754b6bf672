package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mealmesh/food-delivery-backend/internal/domain"
	"github.com/mealmesh/food-delivery-backend/internal/services"
)

// OrderService defines the ordering operations consumed by HTTP handlers.
type OrderService interface {
	Place(ctx context.Context, in services.PlaceOrderInput) (*domain.Order, error)
	List(ctx context.Context, customerID string) ([]domain.Order, error)
	Get(ctx context.Context, id string) (*services.OrderDetail, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

// PlaceOrderRequest is the JSON payload for placing an order. ItemCount
// defaults to the number of item lines when omitted.
type PlaceOrderRequest struct {
	CustomerID  string             `json:"customer_id" binding:"required"`
	Items       []domain.OrderItem `json:"items" binding:"required"`
	ItemCount   int                `json:"item_count,omitempty"`
	TotalAmount float64            `json:"total_amount,omitempty"`
}

// UpdateOrderStatusRequest carries a replacement order status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required" example:"delivered"`
}

// PlaceOrder godoc
// @ID          placeOrder
// @Summary     Place an order
// @Tags        Orders
// @Accept      json
// @Produce     json
// @Param       body  body  handlers.PlaceOrderRequest  true  "Order payload"
// @Success     201  {object} handlers.ReviewsResponse
// @Failure     400  {object} handlers.ErrorResponse
// @Failure     500  {object} handlers.ErrorResponse
// @Router      /orders [post]
func (h *Handlers) PlaceOrder(c *gin.Context) {
	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "customer_id and items are required")
		return
	}

	o, err := h.orderSvc.Place(c.Request.Context(), services.PlaceOrderInput{
		CustomerID:  req.CustomerID,
		Items:       req.Items,
		ItemCount:   req.ItemCount,
		TotalAmount: req.TotalAmount,
	})
	if err != nil {
		switch err {
		case services.ErrOrderInvalid:
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		default:
			fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		}
		return
	}

	ok(c, http.StatusCreated, ReviewsResponse{Message: "order placed successfully", Result: o})
}

// ListOrders godoc
// @ID          listOrders
// @Summary     List orders
// @Tags        Orders
// @Produce     json
// @Param       customer_id  query  string  false  "Filter by customer"
// @Success     200  {object} handlers.ReviewsResponse
// @Failure     500  {object} handlers.ErrorResponse
// @Router      /orders [get]
func (h *Handlers) ListOrders(c *gin.Context) {
	items, err := h.orderSvc.List(c.Request.Context(), c.Query("customer_id"))
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, ReviewsResponse{Message: "all orders", Result: items})
}

// GetOrder godoc
// @ID          getOrder
// @Summary     Fetch one order
// @Description Returns the order with its customer record and per-line food records attached when they still exist.
// @Tags        Orders
// @Produce     json
// @Param       id  path  string  true  "Order ID"
// @Success     200  {object} handlers.ReviewsResponse
// @Failure     404  {object} handlers.ErrorResponse
// @Failure     500  {object} handlers.ErrorResponse
// @Router      /orders/{id} [get]
func (h *Handlers) GetOrder(c *gin.Context) {
	detail, err := h.orderSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch err {
		case services.ErrOrderNotFound:
			fail(c, http.StatusNotFound, ErrCodeNotFound, "order not found")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}
	ok(c, http.StatusOK, ReviewsResponse{Message: "order", Result: detail})
}

// UpdateOrderStatus godoc
// @ID          updateOrderStatus
// @Summary     Update an order's status
// @Tags        Orders
// @Accept      json
// @Produce     json
// @Param       id    path  string  true  "Order ID"
// @Param       body  body  handlers.UpdateOrderStatusRequest  true  "New status"
// @Success     204  "No Content"
// @Failure     400  {object} handlers.ErrorResponse
// @Failure     404  {object} handlers.ErrorResponse
// @Failure     500  {object} handlers.ErrorResponse
// @Router      /orders/{id}/status [put]
func (h *Handlers) UpdateOrderStatus(c *gin.Context) {
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "status is required")
		return
	}

	err := h.orderSvc.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		switch err {
		case services.ErrOrderInvalid:
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		case services.ErrOrderNotFound:
			fail(c, http.StatusNotFound, ErrCodeNotFound, "order not found")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}

	noContent(c)
}
