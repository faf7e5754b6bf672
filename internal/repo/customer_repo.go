// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Customer
// model.
//
// Functions:
//
//   - CreateCustomer(ctx, db, c) -> *domain.Customer, error
//     Inserts a new customer row with UUID primary key and UTC timestamp.
//
//   - ListCustomers(ctx, db) -> []domain.Customer, error
//     Returns all customers ordered by creation time descending.
//
//   - GetCustomer(ctx, db, id) -> *domain.Customer, error
//     Fetches a single customer by ID, or ErrNotFound if missing.
//
//   - FindCustomerByCredentials(ctx, db, email, password) -> *domain.Customer, error
//     Returns the first customer matching both values, or ErrNotFound.
//
//   - UpdateCustomerPassword(ctx, db, id, password) -> error
//     Updates the stored password; ErrNotFound when no row matches.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mealmesh/food-delivery-backend/internal/domain"
)

// CreateCustomer inserts a new customer row. The ID is a randomly generated
// UUID (string), and CreatedAt is set to UTC.
func CreateCustomer(ctx context.Context, db *gorm.DB, c *domain.Customer) (*domain.Customer, error) {
	c.ID = uuid.NewString()
	c.CreatedAt = time.Now().UTC()
	if err := db.WithContext(ctx).Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

// ListCustomers returns all customers, most recently registered first.
func ListCustomers(ctx context.Context, db *gorm.DB) ([]domain.Customer, error) {
	var out []domain.Customer
	err := db.WithContext(ctx).Order("created_at desc").Find(&out).Error
	return out, err
}

// GetCustomer fetches a single customer by ID. If the record does not exist,
// it returns ErrNotFound. On other DB errors, the raw error is returned.
func GetCustomer(ctx context.Context, db *gorm.DB, id string) (*domain.Customer, error) {
	var c domain.Customer
	if err := db.WithContext(ctx).Where("id = ?", id).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// FindCustomerByCredentials returns the first customer whose email and
// password both match, or ErrNotFound when there is no such account. The
// comparison is a plain equality match against the stored values.
func FindCustomerByCredentials(ctx context.Context, db *gorm.DB, email, password string) (*domain.Customer, error) {
	var c domain.Customer
	err := db.WithContext(ctx).
		Where("email = ? AND password = ?", email, password).
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// UpdateCustomerPassword replaces the stored password for the customer with
// the given ID. If no rows are affected, it returns ErrNotFound.
func UpdateCustomerPassword(ctx context.Context, db *gorm.DB, id, password string) error {
	res := db.WithContext(ctx).
		Model(&domain.Customer{}).
		Where("id = ?", id).
		Update("password", password)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
