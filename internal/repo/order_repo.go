// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Order
// model.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mealmesh/food-delivery-backend/internal/domain"
)

// CreateOrder inserts a new order row with a generated UUID. Item lines are
// serialized onto the row by the GORM JSON serializer.
func CreateOrder(ctx context.Context, db *gorm.DB, o *domain.Order) (*domain.Order, error) {
	o.ID = uuid.NewString()
	o.CreatedAt = time.Now().UTC()
	if o.Status == "" {
		o.Status = "placed"
	}
	if err := db.WithContext(ctx).Create(o).Error; err != nil {
		return nil, err
	}
	return o, nil
}

// ListOrders returns all orders, most recent first. customerID, when
// non-empty, narrows the result to one customer's orders.
func ListOrders(ctx context.Context, db *gorm.DB, customerID string) ([]domain.Order, error) {
	q := db.WithContext(ctx).Model(&domain.Order{})
	if customerID != "" {
		q = q.Where("customer_id = ?", customerID)
	}
	var out []domain.Order
	err := q.Order("created_at desc").Find(&out).Error
	return out, err
}

// GetOrder fetches a single order by ID, or ErrNotFound if missing.
func GetOrder(ctx context.Context, db *gorm.DB, id string) (*domain.Order, error) {
	var o domain.Order
	if err := db.WithContext(ctx).Where("id = ?", id).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// UpdateOrderStatus sets the status of an order. If no rows are affected
// (order missing), it returns ErrNotFound.
func UpdateOrderStatus(ctx context.Context, db *gorm.DB, id, status string) error {
	res := db.WithContext(ctx).
		Model(&domain.Order{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
