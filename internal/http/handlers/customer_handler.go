package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mealmesh/food-delivery-backend/internal/domain"
	"github.com/mealmesh/food-delivery-backend/internal/services"
)

// CustomerService defines the account operations consumed by HTTP handlers.
type CustomerService interface {
	Register(ctx context.Context, in services.RegisterCustomerInput) (*domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
	Login(ctx context.Context, email, password string) (*domain.Customer, error)
	UpdatePassword(ctx context.Context, id, password string) error
}

// RegisterCustomerRequest is the JSON payload for creating an account.
type RegisterCustomerRequest struct {
	Name     string `json:"name" binding:"required" example:"Asha Rao"`
	Email    string `json:"email" binding:"required" example:"asha@example.com"`
	Password string `json:"password" binding:"required" example:"s3cret"`
	Address  string `json:"address,omitempty" example:"12 MG Road, Pune"`
	Mobile   string `json:"mobile,omitempty" example:"+91-9876543210"`
}

// LoginRequest is the JSON payload for credential checks.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdatePasswordRequest carries a replacement password.
type UpdatePasswordRequest struct {
	Password string `json:"password" binding:"required"`
}

// LoginResponse reports a credential check. Data is nil when the
// credentials did not match.
type LoginResponse struct {
	Success bool             `json:"success"`
	Data    *domain.Customer `json:"data,omitempty"`
}

// RegisterCustomer godoc
// @ID          registerCustomer
// @Summary     Register a customer
// @Tags        Customers
// @Accept      json
// @Produce     json
// @Param       body  body  handlers.RegisterCustomerRequest  true  "Account payload"
// @Success     201  {object} handlers.ReviewsResponse
// @Failure     400  {object} handlers.ErrorResponse
// @Failure     500  {object} handlers.ErrorResponse
// @Router      /customers [post]
func (h *Handlers) RegisterCustomer(c *gin.Context) {
	var req RegisterCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "name, email and password are required")
		return
	}

	cust, err := h.customerSvc.Register(c.Request.Context(), services.RegisterCustomerInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Address:  req.Address,
		Mobile:   req.Mobile,
	})
	if err != nil {
		switch err {
		case services.ErrCustomerInvalid:
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		default:
			fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		}
		return
	}

	ok(c, http.StatusCreated, ReviewsResponse{Message: "customer registered successfully", Result: cust})
}

// ListCustomers godoc
// @ID          listCustomers
// @Summary     List customers
// @Tags        Customers
// @Produce     json
// @Success     200  {object} handlers.ReviewsResponse
// @Failure     500  {object} handlers.ErrorResponse
// @Router      /customers [get]
func (h *Handlers) ListCustomers(c *gin.Context) {
	items, err := h.customerSvc.List(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, ReviewsResponse{Message: "all customers", Result: items})
}

// Login godoc
// @ID          loginCustomer
// @Summary     Check customer credentials
// @Description Reports success=false with HTTP 200 when the credentials do not match any account.
// @Tags        Customers
// @Accept      json
// @Produce     json
// @Param       body  body  handlers.LoginRequest  true  "Credentials"
// @Success     200  {object} handlers.LoginResponse
// @Failure     400  {object} handlers.ErrorResponse
// @Failure     500  {object} handlers.ErrorResponse
// @Router      /customers/login [post]
func (h *Handlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "email and password are required")
		return
	}

	cust, err := h.customerSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}

	ok(c, http.StatusOK, LoginResponse{Success: cust != nil, Data: cust})
}

// UpdatePassword godoc
// @ID          updateCustomerPassword
// @Summary     Replace a customer's password
// @Tags        Customers
// @Accept      json
// @Produce     json
// @Param       id    path  string  true  "Customer ID"
// @Param       body  body  handlers.UpdatePasswordRequest  true  "New password"
// @Success     204  "No Content"
// @Failure     400  {object} handlers.ErrorResponse
// @Failure     404  {object} handlers.ErrorResponse
// @Failure     500  {object} handlers.ErrorResponse
// @Router      /customers/{id}/password [put]
func (h *Handlers) UpdatePassword(c *gin.Context) {
	var req UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "password is required")
		return
	}

	err := h.customerSvc.UpdatePassword(c.Request.Context(), c.Param("id"), req.Password)
	if err != nil {
		switch err {
		case services.ErrCustomerInvalid:
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		case services.ErrCustomerNotFound:
			fail(c, http.StatusNotFound, ErrCodeNotFound, "customer not found")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}

	noContent(c)
}
