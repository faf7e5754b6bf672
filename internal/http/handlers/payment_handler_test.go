package handlers

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/mealmesh/food-delivery-backend/internal/http/middleware"
	"github.com/mealmesh/food-delivery-backend/internal/services"
)

// stubOrderGateway satisfies services.GatewayOrderCreator.
type stubOrderGateway struct {
	calls int
	err   error
}

func (s *stubOrderGateway) Create(data map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return map[string]interface{}{
		"id":       "order_test_1",
		"amount":   float64(data["amount"].(int64)),
		"currency": data["currency"],
		"receipt":  data["receipt"],
	}, nil
}

func paymentRouter(h *Handlers) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	// The validator mirrors production wiring so GetIdempotencyKey sees the header.
	r.Use(middleware.IdempotencyValidator(middleware.IdempotencyOptions{MaxLen: 200}, nil))
	r.POST("/payments/checkout", h.Checkout)
	r.POST("/payments/webhook", h.PaymentWebhook)
	return r
}

func newPaymentHandlers(t *testing.T, gw services.GatewayOrderCreator) *Handlers {
	t.Helper()
	db := newHandlerDB(t)
	return &Handlers{paymentSvc: services.NewPaymentService(db, gw, "whsec")}
}

func TestCheckout_CreatesOrder(t *testing.T) {
	gw := &stubOrderGateway{}
	r := paymentRouter(newPaymentHandlers(t, gw))

	w := performJSON(t, r, http.MethodPost, "/payments/checkout", gin.H{"amount": 499.50}, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}
	var resp CheckoutResponse
	decodeJSON(t, w, &resp)
	if resp.OrderID != "order_test_1" || resp.Amount != 49950 || resp.Currency != "INR" {
		t.Fatalf("unexpected checkout response: %+v", resp)
	}
}

func TestCheckout_MissingAmount(t *testing.T) {
	r := paymentRouter(newPaymentHandlers(t, &stubOrderGateway{}))
	w := performJSON(t, r, http.MethodPost, "/payments/checkout", gin.H{}, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestCheckout_GatewayDown(t *testing.T) {
	r := paymentRouter(newPaymentHandlers(t, &stubOrderGateway{err: http.ErrServerClosed}))
	w := performJSON(t, r, http.MethodPost, "/payments/checkout", gin.H{"amount": 10}, nil)
	if w.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", w.Code)
	}
	var er ErrorResponse
	decodeJSON(t, w, &er)
	if er.Code != ErrCodePaymentFailed {
		t.Fatalf("error code = %q", er.Code)
	}
}

func TestCheckout_IdempotencyReplay(t *testing.T) {
	gw := &stubOrderGateway{}
	r := paymentRouter(newPaymentHandlers(t, gw))

	headers := map[string]string{
		middleware.HeaderIdempotencyKey: "key-1",
		HeaderCustomerID:                "cust-1",
	}

	first := performJSON(t, r, http.MethodPost, "/payments/checkout", gin.H{"amount": 100}, headers)
	if first.Code != http.StatusCreated {
		t.Fatalf("first: status = %d body=%s", first.Code, first.Body.String())
	}

	second := performJSON(t, r, http.MethodPost, "/payments/checkout", gin.H{"amount": 100}, headers)
	if second.Code != http.StatusOK {
		t.Fatalf("replay: status = %d, want 200", second.Code)
	}
	if gw.calls != 1 {
		t.Fatalf("gateway calls = %d, want 1", gw.calls)
	}

	var a, b CheckoutResponse
	decodeJSON(t, first, &a)
	decodeJSON(t, second, &b)
	if a.OrderID != b.OrderID || a.Amount != b.Amount {
		t.Fatalf("replay mismatch: %+v vs %+v", a, b)
	}
}

func TestPaymentWebhook_SignatureChecks(t *testing.T) {
	r := paymentRouter(newPaymentHandlers(t, &stubOrderGateway{}))
	body := []byte(`{"event":"payment.captured"}`)

	mac := hmac.New(sha256.New, []byte("whsec"))
	mac.Write(body)
	sig := hex.EncodeToString(mac.Sum(nil))

	// Valid signature acknowledges.
	req := httptest.NewRequest(http.MethodPost, "/payments/webhook", bytes.NewReader(body))
	req.Header.Set(HeaderWebhookSignature, sig)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("valid signature: status = %d body=%s", w.Code, w.Body.String())
	}

	// Bad signature is rejected.
	req = httptest.NewRequest(http.MethodPost, "/payments/webhook", bytes.NewReader(body))
	req.Header.Set(HeaderWebhookSignature, "deadbeef")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("bad signature: status = %d, want 403", w.Code)
	}

	// Missing signature is rejected too.
	req = httptest.NewRequest(http.MethodPost, "/payments/webhook", bytes.NewReader(body))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("missing signature: status = %d, want 403", w.Code)
	}
}
