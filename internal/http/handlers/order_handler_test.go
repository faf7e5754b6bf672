package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

func orderRouter(h *Handlers) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/orders", h.PlaceOrder)
	r.GET("/orders", h.ListOrders)
	r.GET("/orders/:id", h.GetOrder)
	r.PUT("/orders/:id/status", h.UpdateOrderStatus)
	return r
}

func placeTestOrder(t *testing.T, r *gin.Engine, customerID string) string {
	t.Helper()
	w := performJSON(t, r, http.MethodPost, "/orders", gin.H{
		"customer_id": customerID,
		"items": []gin.H{
			{"food_id": "f1", "quantity": 2, "price": 100},
		},
		"total_amount": 200,
	}, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("place order: status = %d body=%s", w.Code, w.Body.String())
	}
	var resp struct {
		Result struct {
			ID string `json:"id"`
		} `json:"result"`
	}
	decodeJSON(t, w, &resp)
	return resp.Result.ID
}

func TestPlaceOrder_Validation(t *testing.T) {
	h, _ := newTestHandlers(t)
	r := orderRouter(h)

	w := performJSON(t, r, http.MethodPost, "/orders", gin.H{"customer_id": "c1"}, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("no items: status = %d, want 400", w.Code)
	}
}

func TestOrderLifecycle(t *testing.T) {
	h, _ := newTestHandlers(t)
	r := orderRouter(h)

	id := placeTestOrder(t, r, "c1")
	placeTestOrder(t, r, "c2")

	// List, filtered by customer.
	w := performJSON(t, r, http.MethodGet, "/orders?customer_id=c1", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list: status = %d", w.Code)
	}
	var list struct {
		Result []map[string]any `json:"result"`
	}
	decodeJSON(t, w, &list)
	if len(list.Result) != 1 {
		t.Fatalf("filtered list: n=%d", len(list.Result))
	}

	// Enriched single view: food f1 does not exist, line Food stays absent.
	got := performJSON(t, r, http.MethodGet, "/orders/"+id, nil, nil)
	if got.Code != http.StatusOK {
		t.Fatalf("get: status = %d", got.Code)
	}
	var detail struct {
		Result struct {
			Status string           `json:"status"`
			Lines  []map[string]any `json:"lines"`
		} `json:"result"`
	}
	decodeJSON(t, got, &detail)
	if detail.Result.Status != "placed" || len(detail.Result.Lines) != 1 {
		t.Fatalf("unexpected detail: %+v", detail.Result)
	}

	// Status update.
	upd := performJSON(t, r, http.MethodPut, "/orders/"+id+"/status", gin.H{"status": "delivered"}, nil)
	if upd.Code != http.StatusNoContent {
		t.Fatalf("update status: %d body=%s", upd.Code, upd.Body.String())
	}

	miss := performJSON(t, r, http.MethodGet, "/orders/ghost", nil, nil)
	if miss.Code != http.StatusNotFound {
		t.Fatalf("missing order: status = %d, want 404", miss.Code)
	}
}

func TestMessagesEndpoints(t *testing.T) {
	h, _ := newTestHandlers(t)
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/messages", h.SendMessage)
	r.GET("/messages", h.ListMessages)

	w := performJSON(t, r, http.MethodPost, "/messages", gin.H{
		"name":    "Asha",
		"email":   "a@example.com",
		"message": "delivery was late",
	}, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("send: status = %d body=%s", w.Code, w.Body.String())
	}

	if w := performJSON(t, r, http.MethodPost, "/messages", gin.H{"name": "A"}, nil); w.Code != http.StatusBadRequest {
		t.Fatalf("incomplete message: status = %d, want 400", w.Code)
	}

	got := performJSON(t, r, http.MethodGet, "/messages", nil, nil)
	if got.Code != http.StatusOK {
		t.Fatalf("list: status = %d", got.Code)
	}
	var list struct {
		Result []map[string]any `json:"result"`
	}
	decodeJSON(t, got, &list)
	if len(list.Result) != 1 {
		t.Fatalf("list: n=%d", len(list.Result))
	}
}
