package handlers

import "github.com/gin-gonic/gin"

// HeaderCustomerID carries the calling customer's identity. Requests
// without it are attributed to the shared guest identity.
const HeaderCustomerID = "X-Customer-ID"

// Handlers bundles the service dependencies behind the HTTP surface.
type Handlers struct {
	reviewSvc   ReviewService
	customerSvc CustomerService
	foodSvc     FoodService
	orderSvc    OrderService
	messageSvc  MessageService
	paymentSvc  PaymentService

	uploadDir      string
	maxUploadBytes int64
}

// New wires the handler set. uploadDir is where image uploads land;
// maxUploadBytes bounds a single upload (0 disables the per-file bound,
// the global body limiter still applies).
func New(
	reviewSvc ReviewService,
	customerSvc CustomerService,
	foodSvc FoodService,
	orderSvc OrderService,
	messageSvc MessageService,
	paymentSvc PaymentService,
	uploadDir string,
	maxUploadBytes int64,
) *Handlers {
	return &Handlers{
		reviewSvc:      reviewSvc,
		customerSvc:    customerSvc,
		foodSvc:        foodSvc,
		orderSvc:       orderSvc,
		messageSvc:     messageSvc,
		paymentSvc:     paymentSvc,
		uploadDir:      uploadDir,
		maxUploadBytes: maxUploadBytes,
	}
}

// customerID resolves the caller identity from the request headers.
func customerID(c *gin.Context) string {
	if id := c.GetHeader(HeaderCustomerID); id != "" {
		return id
	}
	return "guest"
}
