package handlers

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mealmesh/food-delivery-backend/internal/http/middleware"
	"github.com/mealmesh/food-delivery-backend/internal/services"
)

// PaymentService defines the gateway operations consumed by HTTP handlers.
type PaymentService interface {
	Checkout(ctx context.Context, customerID string, amountRupees float64, key string) (*services.GatewayOrder, bool, error)
	VerifyWebhook(body []byte, signature string) bool
}

// HeaderWebhookSignature carries the gateway's HMAC over the webhook body.
const HeaderWebhookSignature = "X-Razorpay-Signature"

// CheckoutRequest is the JSON payload for starting a payment.
type CheckoutRequest struct {
	Amount float64 `json:"amount" binding:"required" example:"499.50"`
}

// CheckoutResponse carries the gateway order the frontend needs to open the
// payment widget.
type CheckoutResponse struct {
	OrderID  string `json:"order_id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt,omitempty"`
}

// Checkout godoc
// @ID          checkout
// @Summary     Create a payment gateway order
// @Description Converts the rupee amount to the gateway's smallest unit and creates an order. Replays the stored order when the Idempotency-Key was already used by this customer.
// @Tags        Payments
// @Accept      json
// @Produce     json
//
// @Param       X-Customer-ID    header  string  false  "Caller identity (defaults to guest)"
// @Param       Idempotency-Key  header  string  false  "Replay protection key"
// @Param       body             body    handlers.CheckoutRequest  true  "Amount in rupees"
//
// @Success     200  {object} handlers.CheckoutResponse "Replayed from a previous request"
// @Success     201  {object} handlers.CheckoutResponse
// @Failure     400  {object} handlers.ErrorResponse
// @Failure     502  {object} handlers.ErrorResponse "Gateway rejected the order"
// @Router      /payments/checkout [post]
func (h *Handlers) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "amount is required")
		return
	}

	key, _ := middleware.GetIdempotencyKey(c)
	order, replayed, err := h.paymentSvc.Checkout(c.Request.Context(), customerID(c), req.Amount, key)
	if err != nil {
		switch err {
		case services.ErrPaymentInvalid:
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		case services.ErrGatewayFailed:
			fail(c, http.StatusBadGateway, ErrCodePaymentFailed, "payment gateway rejected the order")
		default:
			fail(c, http.StatusInternalServerError, ErrCodePaymentFailed, err.Error())
		}
		return
	}

	status := http.StatusCreated
	if replayed {
		status = http.StatusOK
	}
	ok(c, status, CheckoutResponse{
		OrderID:  order.ID,
		Amount:   order.Amount,
		Currency: order.Currency,
		Receipt:  order.Receipt,
	})
}

// PaymentWebhook godoc
// @ID          paymentWebhook
// @Summary     Receive a payment gateway webhook
// @Description Verifies the HMAC signature over the raw body and acknowledges the event. Events with a bad signature are rejected.
// @Tags        Payments
// @Accept      json
// @Produce     json
//
// @Param       X-Razorpay-Signature  header  string  true  "HMAC-SHA256 over the raw body"
//
// @Success     200  {object} map[string]string
// @Failure     403  {object} handlers.ErrorResponse "Signature mismatch"
// @Router      /payments/webhook [post]
func (h *Handlers) PaymentWebhook(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "unreadable body")
		return
	}

	if !h.paymentSvc.VerifyWebhook(body, c.GetHeader(HeaderWebhookSignature)) {
		fail(c, http.StatusForbidden, ErrCodeForbidden, "invalid webhook signature")
		return
	}

	ok(c, http.StatusOK, gin.H{"message": "OK"})
}
