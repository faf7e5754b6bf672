package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestFoodCreate_ValidationAndTitleCase(t *testing.T) {
	svc := NewFoodService(newServiceDB(t))
	ctx := context.Background()

	if _, err := svc.Create(ctx, CreateFoodInput{Name: "", OwnerID: "o1"}); !errors.Is(err, ErrFoodInvalid) {
		t.Fatalf("missing name should be ErrFoodInvalid, got %v", err)
	}
	if _, err := svc.Create(ctx, CreateFoodInput{Name: "Dosa", OwnerID: ""}); !errors.Is(err, ErrFoodInvalid) {
		t.Fatalf("missing owner should be ErrFoodInvalid, got %v", err)
	}

	f, err := svc.Create(ctx, CreateFoodInput{Name: "  Paneer Tikka ", OwnerID: "o1", Category: "starters and snacks", Price: 249})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if f.Name != "Paneer Tikka" {
		t.Fatalf("name not trimmed: %q", f.Name)
	}
	if f.Category != "Starters And Snacks" {
		t.Fatalf("category not title-cased: %q", f.Category)
	}
}

func TestFoodGet_NotFound(t *testing.T) {
	svc := NewFoodService(newServiceDB(t))
	if _, err := svc.Get(context.Background(), "missing"); !errors.Is(err, ErrFoodNotFound) {
		t.Fatalf("expected ErrFoodNotFound, got %v", err)
	}
}

func TestFoodListPage(t *testing.T) {
	svc := NewFoodService(newServiceDB(t))
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		if _, err := svc.Create(ctx, CreateFoodInput{Name: fmt.Sprintf("Item %d", i), OwnerID: "o1", Price: 10}); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	items, total, err := svc.ListPage(ctx, "", 1, 5)
	if err != nil || total != 7 || len(items) != 5 {
		t.Fatalf("page 1: n=%d total=%d err=%v", len(items), total, err)
	}

	items, total, err = svc.ListPage(ctx, "", 2, 5)
	if err != nil || total != 7 || len(items) != 2 {
		t.Fatalf("page 2: n=%d total=%d err=%v", len(items), total, err)
	}

	// Defaults swallow nonsense page values.
	items, _, err = svc.ListPage(ctx, "", -3, 0)
	if err != nil || len(items) != 7 {
		t.Fatalf("defaulted page: n=%d err=%v", len(items), err)
	}

	// Filter narrows both items and total.
	_, total, err = svc.ListPage(ctx, "item 3", 1, 10)
	if err != nil || total != 1 {
		t.Fatalf("filtered total = %d err=%v", total, err)
	}
}
