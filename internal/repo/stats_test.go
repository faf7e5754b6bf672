package repo

import (
	"context"
	"testing"
	"time"

	"github.com/mealmesh/food-delivery-backend/internal/domain"
)

func TestReviewsStats_EmptyTable(t *testing.T) {
	db := newReviewRepoDB(t, &domain.Review{})

	count, maxTS, err := ReviewsStats(context.Background(), db)
	if err != nil {
		t.Fatalf("ReviewsStats: %v", err)
	}
	if count != 0 || maxTS != nil {
		t.Fatalf("expected (0, nil), got (%d, %v)", count, maxTS)
	}
}

func TestReviewsStats_CountAndNewest(t *testing.T) {
	db := newReviewRepoDB(t, &domain.Review{})

	t1 := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(48 * time.Hour)
	for i, ts := range []time.Time{t1, t2} {
		r := domain.Review{ID: string(rune('a' + i)), CustomerID: "c1", Rating: 4, CreatedAt: ts}
		if err := db.Create(&r).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	count, maxTS, err := ReviewsStats(context.Background(), db)
	if err != nil {
		t.Fatalf("ReviewsStats: %v", err)
	}
	if count != 2 {
		t.Fatalf("count = %d, want 2", count)
	}
	if maxTS == nil || !maxTS.Equal(t2) {
		t.Fatalf("maxCreatedAt = %v, want %v", maxTS, t2)
	}
}
