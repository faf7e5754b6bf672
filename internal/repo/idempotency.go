// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository helpers for the
// PaymentIdempotency model used to implement safe-retry semantics for the
// checkout endpoint.
package repo

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mealmesh/food-delivery-backend/internal/domain"
)

// ErrDuplicate indicates that an idempotency record already exists for the
// given (customer_id, key) tuple.
var ErrDuplicate = errors.New("duplicate")

// GetPaymentIdempotency returns a non-expired record or ErrNotFound.
func GetPaymentIdempotency(ctx context.Context, db *gorm.DB, customerID, key string, now time.Time) (*domain.PaymentIdempotency, error) {
	if strings.TrimSpace(key) == "" {
		return nil, ErrNotFound
	}
	var rec domain.PaymentIdempotency
	err := db.WithContext(ctx).
		Where("customer_id = ? AND key = ? AND expires_at > ?", customerID, key, now).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// CreatePaymentIdempotency inserts a record binding a checkout key to the
// gateway order it produced, and returns ErrDuplicate on unique violation.
func CreatePaymentIdempotency(ctx context.Context, db *gorm.DB, customerID, key, orderRef string, amountPaise int64, currency string, ttl time.Duration) (*domain.PaymentIdempotency, error) {
	now := time.Now().UTC()
	rec := &domain.PaymentIdempotency{
		ID:          uuid.NewString(),
		CustomerID:  customerID,
		Key:         key,
		OrderRef:    orderRef,
		AmountPaise: amountPaise,
		Currency:    currency,
		CreatedAt:   now,
		ExpiresAt:   now.Add(ttl),
	}
	if err := db.WithContext(ctx).Create(rec).Error; err != nil {
		// glebarez/sqlite often returns plain-text errors for UNIQUE violations.
		low := strings.ToLower(err.Error())
		if errors.Is(err, gorm.ErrDuplicatedKey) ||
			strings.Contains(low, "unique constraint failed") ||
			strings.Contains(low, "constraint failed: unique") {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return rec, nil
}
