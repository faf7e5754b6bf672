// Package services – CustomerService
//
// This file implements the CustomerService, covering account registration,
// listing, credential login, and password updates. Passwords are compared and
// stored as plain values; hardening the credential path is explicitly out of
// scope for this system.
package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/mealmesh/food-delivery-backend/internal/domain"
	"github.com/mealmesh/food-delivery-backend/internal/repo"
)

// RegisterCustomerInput carries the caller-supplied fields for a new account.
type RegisterCustomerInput struct {
	Name     string
	Email    string
	Password string
	Address  string
	Mobile   string
}

// CustomerService provides account-level operations.
type CustomerService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
}

// NewCustomerService constructs a CustomerService.
func NewCustomerService(db *gorm.DB) *CustomerService {
	return &CustomerService{DB: db}
}

// Register validates and persists a new customer account. Name, email, and
// password are required (ErrCustomerInvalid otherwise).
func (s *CustomerService) Register(ctx context.Context, in RegisterCustomerInput) (*domain.Customer, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	if name == "" || email == "" || in.Password == "" {
		return nil, ErrCustomerInvalid
	}
	c := &domain.Customer{
		Name:     name,
		Email:    email,
		Password: in.Password,
		Address:  in.Address,
		Mobile:   in.Mobile,
	}
	return repo.CreateCustomer(ctx, s.DB, c)
}

// List returns all customer accounts, most recently registered first.
func (s *CustomerService) List(ctx context.Context) ([]domain.Customer, error) {
	return repo.ListCustomers(ctx, s.DB)
}

// Login returns the account matching the given credentials, or (nil, nil)
// when no account matches. A credential miss is not an error here because the
// API reports it as a normal success:false response.
func (s *CustomerService) Login(ctx context.Context, email, password string) (*domain.Customer, error) {
	c, err := repo.FindCustomerByCredentials(ctx, s.DB, strings.TrimSpace(email), password)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

// UpdatePassword replaces the stored password for the given customer.
// Returns ErrCustomerNotFound when the account does not exist and
// ErrCustomerInvalid when the new password is empty.
func (s *CustomerService) UpdatePassword(ctx context.Context, id, password string) error {
	if password == "" {
		return ErrCustomerInvalid
	}
	if err := repo.UpdateCustomerPassword(ctx, s.DB, id, password); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrCustomerNotFound
		}
		return err
	}
	return nil
}
