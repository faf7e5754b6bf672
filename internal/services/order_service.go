// Package services – OrderService
//
// This file implements the OrderService: placing orders, listing them, status
// updates, and the enriched single-order view that substitutes the customer
// and food records for their identifiers.
package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/mealmesh/food-delivery-backend/internal/domain"
	"github.com/mealmesh/food-delivery-backend/internal/repo"
)

// PlaceOrderInput carries the caller-supplied fields for a new order.
type PlaceOrderInput struct {
	CustomerID  string
	ItemCount   int
	TotalAmount float64
	Items       []domain.OrderItem
}

// OrderLine is one order item enriched with its catalog record. Food is nil
// when the referenced entry no longer exists.
type OrderLine struct {
	domain.OrderItem
	Food *domain.Food `json:"food,omitempty"`
}

// OrderDetail is the enriched single-order view: the order row plus the full
// customer record and per-line food records.
type OrderDetail struct {
	domain.Order
	Customer *domain.Customer `json:"customer,omitempty"`
	Lines    []OrderLine      `json:"lines"`
}

// OrderService provides order lifecycle operations.
type OrderService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
}

// NewOrderService constructs an OrderService.
func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{DB: db}
}

// Place validates and persists a new order. Customer id and at least one item
// are required (ErrOrderInvalid otherwise). ItemCount defaults to the number
// of item lines when the caller leaves it zero.
func (s *OrderService) Place(ctx context.Context, in PlaceOrderInput) (*domain.Order, error) {
	customer := strings.TrimSpace(in.CustomerID)
	if customer == "" || len(in.Items) == 0 {
		return nil, ErrOrderInvalid
	}
	count := in.ItemCount
	if count == 0 {
		count = len(in.Items)
	}
	o := &domain.Order{
		CustomerID:  customer,
		ItemCount:   count,
		TotalAmount: in.TotalAmount,
		Items:       in.Items,
	}
	return repo.CreateOrder(ctx, s.DB, o)
}

// List returns orders, most recent first. customerID, when non-empty, narrows
// the result to one customer's orders.
func (s *OrderService) List(ctx context.Context, customerID string) ([]domain.Order, error) {
	return repo.ListOrders(ctx, s.DB, customerID)
}

// Get returns the enriched view of a single order: the order row, its
// customer record, and the catalog record for each item line. Dangling
// references (removed customer or food) are left nil rather than failing the
// whole read. Returns ErrOrderNotFound when the order itself is missing.
func (s *OrderService) Get(ctx context.Context, id string) (*OrderDetail, error) {
	o, err := repo.GetOrder(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	detail := &OrderDetail{Order: *o, Lines: make([]OrderLine, 0, len(o.Items))}

	if c, err := repo.GetCustomer(ctx, s.DB, o.CustomerID); err == nil {
		detail.Customer = c
	} else if !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}

	for _, it := range o.Items {
		line := OrderLine{OrderItem: it}
		if f, err := repo.GetFood(ctx, s.DB, it.FoodID); err == nil {
			line.Food = f
		} else if !errors.Is(err, repo.ErrNotFound) {
			return nil, err
		}
		detail.Lines = append(detail.Lines, line)
	}
	return detail, nil
}

// UpdateStatus sets the status of an order. The status must be non-empty;
// ErrOrderNotFound is returned when the order does not exist.
func (s *OrderService) UpdateStatus(ctx context.Context, id, status string) error {
	status = strings.TrimSpace(status)
	if status == "" {
		return ErrOrderInvalid
	}
	if err := repo.UpdateOrderStatus(ctx, s.DB, id, status); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrOrderNotFound
		}
		return err
	}
	return nil
}
