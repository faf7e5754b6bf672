// Package services – PaymentService
//
// This file implements the PaymentService, which creates payment orders at
// the Razorpay gateway and verifies webhook callbacks. Checkout calls are
// deduplicated through the payment_idempotency table: retrying a checkout
// with the same Idempotency-Key returns the originally created gateway order
// instead of charging twice.
package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	razorpayutils "github.com/razorpay/razorpay-go/utils"
	"gorm.io/gorm"

	"github.com/mealmesh/food-delivery-backend/internal/repo"
)

// GatewayOrderCreator is the slice of the Razorpay order API consumed by the
// PaymentService. *razorpay.Client's Order resource satisfies it directly;
// tests substitute a stub.
type GatewayOrderCreator interface {
	Create(data map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error)
}

// GatewayOrder is the subset of the gateway's order representation surfaced
// to API clients: enough to hand off to the checkout widget.
type GatewayOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"` // paise
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

// PaymentService creates gateway orders and verifies webhook signatures.
type PaymentService struct {
	// DB is the GORM handle used for idempotency records.
	DB *gorm.DB
	// Gateway creates orders at the payment provider.
	Gateway GatewayOrderCreator
	// WebhookSecret is the shared secret for webhook HMAC verification.
	WebhookSecret string
	// Currency is the settlement currency for created orders.
	Currency string
	// IdempotencyTTL bounds how long a checkout key can be replayed.
	IdempotencyTTL time.Duration
}

// NewPaymentService constructs a PaymentService settling in INR with a
// 24-hour replay window.
func NewPaymentService(db *gorm.DB, gw GatewayOrderCreator, webhookSecret string) *PaymentService {
	return &PaymentService{
		DB:             db,
		Gateway:        gw,
		WebhookSecret:  webhookSecret,
		Currency:       "INR",
		IdempotencyTTL: 24 * time.Hour,
	}
}

// Checkout creates a payment order at the gateway for the given amount in
// rupees (converted to paise, auto-captured). When key is non-empty and a
// non-expired record exists for (customerID, key), the stored order is
// returned with replay=true and the gateway is not called again.
//
// Returns ErrPaymentInvalid for non-positive amounts and ErrGatewayFailed
// when the gateway call fails or returns an unusable body.
func (s *PaymentService) Checkout(ctx context.Context, customerID string, amountRupees float64, key string) (*GatewayOrder, bool, error) {
	if amountRupees <= 0 {
		return nil, false, ErrPaymentInvalid
	}

	if key != "" {
		if rec, err := repo.GetPaymentIdempotency(ctx, s.DB, customerID, key, time.Now().UTC()); err == nil {
			return &GatewayOrder{
				ID:       rec.OrderRef,
				Amount:   rec.AmountPaise,
				Currency: rec.Currency,
			}, true, nil
		}
	}

	receipt := uuid.NewString()
	paise := int64(amountRupees * 100)
	body, err := s.Gateway.Create(map[string]interface{}{
		"amount":          paise,
		"currency":        s.Currency,
		"receipt":         receipt,
		"payment_capture": 1,
	}, nil)
	if err != nil {
		return nil, false, ErrGatewayFailed
	}

	order := &GatewayOrder{
		ID:       asStr(body["id"]),
		Amount:   asInt64(body["amount"], paise),
		Currency: asStrDefault(body["currency"], s.Currency),
		Receipt:  asStrDefault(body["receipt"], receipt),
	}
	if order.ID == "" {
		return nil, false, ErrGatewayFailed
	}

	if key != "" {
		_, err := repo.CreatePaymentIdempotency(ctx, s.DB, customerID, key, order.ID, order.Amount, order.Currency, s.IdempotencyTTL)
		if err == repo.ErrDuplicate {
			// Lost a race with a concurrent retry: serve its stored order.
			if rec, lerr := repo.GetPaymentIdempotency(ctx, s.DB, customerID, key, time.Now().UTC()); lerr == nil {
				return &GatewayOrder{ID: rec.OrderRef, Amount: rec.AmountPaise, Currency: rec.Currency}, true, nil
			}
		} else if err != nil {
			return nil, false, err
		}
	}

	return order, false, nil
}

// VerifyWebhook reports whether the webhook body matches the HMAC signature
// sent by the gateway (X-Razorpay-Signature header).
func (s *PaymentService) VerifyWebhook(body []byte, signature string) bool {
	if signature == "" {
		return false
	}
	return razorpayutils.VerifyWebhookSignature(string(body), signature, s.WebhookSecret)
}

// Gateway order bodies arrive as map[string]interface{} with JSON numbers
// decoded as float64; these helpers tolerate the variants.

func asStr(v interface{}) string {
	s, _ := v.(string)
	return s
}

func asStrDefault(v interface{}, def string) string {
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return def
}

func asInt64(v interface{}, def int64) int64 {
	switch n := v.(type) {
	case float64:
		return int64(n)
	case int64:
		return n
	case int:
		return int64(n)
	default:
		return def
	}
}
