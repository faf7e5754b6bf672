// Package domain defines the core persistence models for the application.
// These types are used by GORM for database schema mapping and are shared
// across the repository and service layers.
package domain

import "time"

// PaymentIdempotency records the gateway order produced for a previously
// processed checkout, keyed by (customer_id, key). It enables safe retries of
// POST /payments/checkout: a replay returns the originally created gateway
// order instead of creating a second one.
type PaymentIdempotency struct {
	ID          string    `gorm:"type:TEXT NOT NULL;primaryKey"`
	CustomerID  string    `gorm:"type:TEXT NOT NULL;uniqueIndex:ux_customer_key,priority:1"`
	Key         string    `gorm:"type:TEXT NOT NULL;uniqueIndex:ux_customer_key,priority:2"`
	OrderRef    string    `gorm:"type:TEXT NOT NULL"` // gateway order id
	AmountPaise int64     `gorm:"type:INTEGER NOT NULL"`
	Currency    string    `gorm:"type:TEXT NOT NULL"`
	CreatedAt   time.Time `gorm:"type:DATETIME NOT NULL;autoCreateTime"`
	ExpiresAt   time.Time `gorm:"type:DATETIME NOT NULL;index"`
}

// TableName implements the GORM tabler interface.
func (PaymentIdempotency) TableName() string { return "payment_idempotency" }
