// Package services defines the business logic for reviews, customers, foods,
// orders, messages, and payments. This file centralizes common service-level
// error values so that they can be consistently returned by service methods
// and checked by callers.
//
// These errors are intended for internal use by the service layer; translation
// into user-facing messages or HTTP status codes is performed at the handler
// layer.
package services

import "errors"

// Review-related errors.
var (
	// ErrReviewInvalid is returned when a review payload is missing a
	// required field (customer id or rating).
	ErrReviewInvalid = errors.New("review requires customer id and rating")

	// ErrNoReviews indicates that an aggregation found no matching group:
	// either the store holds no attributable reviews at all, or no review
	// carries the requested key.
	ErrNoReviews = errors.New("no reviews found")
)

// Customer-related errors.
var (
	// ErrCustomerInvalid is returned when a registration payload is missing
	// required account fields.
	ErrCustomerInvalid = errors.New("customer requires name, email and password")

	// ErrCustomerNotFound indicates that the requested customer does not exist.
	ErrCustomerNotFound = errors.New("customer not found")
)

// Food/order errors.
var (
	// ErrFoodInvalid is returned when a catalog payload has no name or owner.
	ErrFoodInvalid = errors.New("food requires name and owner id")

	// ErrFoodNotFound indicates that the requested catalog entry does not exist.
	ErrFoodNotFound = errors.New("food not found")

	// ErrOrderInvalid is returned when an order payload has no customer or items.
	ErrOrderInvalid = errors.New("order requires customer id and at least one item")

	// ErrOrderNotFound indicates that the requested order does not exist.
	ErrOrderNotFound = errors.New("order not found")
)

// Message-related errors.
var (
	// ErrMessageInvalid is returned when a contact message has an empty body.
	ErrMessageInvalid = errors.New("message requires a body")
)

// Payment-related errors.
var (
	// ErrPaymentInvalid is returned when a checkout amount is zero or negative.
	ErrPaymentInvalid = errors.New("payment amount must be positive")

	// ErrGatewayFailed is returned when the payment gateway rejects or fails
	// the order-creation call.
	ErrGatewayFailed = errors.New("payment gateway order creation failed")
)
