package repo

import (
	"context"
	"testing"
	"time"

	"github.com/mealmesh/food-delivery-backend/internal/domain"
)

func TestCreateMessage_RoundTrip(t *testing.T) {
	db := newReviewRepoDB(t, &domain.Message{})

	m, err := CreateMessage(context.Background(), db, &domain.Message{
		SenderName:  "Asha",
		SenderEmail: "asha@example.com",
		Body:        "delivery was late",
	})
	if err != nil {
		t.Fatalf("CreateMessage: %v", err)
	}
	if m.ID == "" {
		t.Fatalf("expected generated id: %+v", m)
	}

	var got domain.Message
	if err := db.First(&got, "id = ?", m.ID).Error; err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Body != "delivery was late" {
		t.Fatalf("round-trip mismatch: %+v", got)
	}
}

func TestListMessages_OldestFirst(t *testing.T) {
	db := newReviewRepoDB(t, &domain.Message{})

	t1 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)
	if err := db.Create(&domain.Message{ID: "later", Body: "b", CreatedAt: t2}).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := db.Create(&domain.Message{ID: "first", Body: "a", CreatedAt: t1}).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	got, err := ListMessages(context.Background(), db)
	if err != nil {
		t.Fatalf("ListMessages: %v", err)
	}
	if len(got) != 2 || got[0].ID != "first" || got[1].ID != "later" {
		t.Fatalf("unexpected order: %+v", got)
	}
}
