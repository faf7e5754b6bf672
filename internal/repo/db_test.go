package repo

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/mealmesh/food-delivery-backend/internal/domain"
)

func TestOpenSQLite_MissingParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "app.db")
	if _, err := OpenSQLite(path); err == nil {
		t.Fatalf("expected error for missing parent directory")
	}
}

func TestOpenSQLite_AndAutoMigrate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.db")
	db, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	if err := AutoMigrate(db); err != nil {
		t.Fatalf("AutoMigrate: %v", err)
	}

	// Every table must exist and accept a basic insert/count round-trip.
	m := db.Migrator()
	for _, model := range []any{
		&domain.Customer{}, &domain.Food{}, &domain.Order{},
		&domain.Message{}, &domain.Review{}, &domain.PaymentIdempotency{},
	} {
		if !m.HasTable(model) {
			t.Fatalf("table missing for %T", model)
		}
	}

	if _, err := CreateReview(context.Background(), db, &domain.Review{CustomerID: "c1", Rating: 5}); err != nil {
		t.Fatalf("insert after migrate: %v", err)
	}
}

func TestEnableTracing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.db")
	db, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("AutoMigrate: %v", err)
	}

	if err := EnableTracing(db); err != nil {
		t.Fatalf("EnableTracing: %v", err)
	}
	if len(db.Config.Plugins) == 0 {
		t.Fatalf("tracing plugin not registered")
	}

	// Instrumented callbacks must not break normal queries.
	if _, err := CreateReview(context.Background(), db, &domain.Review{CustomerID: "c1", Rating: 4}); err != nil {
		t.Fatalf("insert with tracing: %v", err)
	}
	reviews, err := ListReviews(context.Background(), db, "", "")
	if err != nil {
		t.Fatalf("list with tracing: %v", err)
	}
	if len(reviews) != 1 {
		t.Fatalf("len(reviews) = %d, want 1", len(reviews))
	}
}
