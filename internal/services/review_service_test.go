package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite" // pure-Go SQLite
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mealmesh/food-delivery-backend/internal/domain"
	"github.com/mealmesh/food-delivery-backend/internal/repo"
)

func newServiceDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), fmt.Sprintf("svc_test_%d.db", time.Now().UnixNano()))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	if err := repo.AutoMigrate(db); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func ratingPtr(v float64) *float64 { return &v }

func addReview(t *testing.T, svc *ReviewService, customerID, foodID, ownerID string, rating float64) *domain.Review {
	t.Helper()
	r, err := svc.Create(context.Background(), CreateReviewInput{
		CustomerID: customerID,
		FoodID:     foodID,
		OwnerID:    ownerID,
		Rating:     ratingPtr(rating),
	})
	if err != nil {
		t.Fatalf("Create review: %v", err)
	}
	return r
}

func TestReviewCreate_Validation(t *testing.T) {
	svc := NewReviewService(newServiceDB(t))
	ctx := context.Background()

	if _, err := svc.Create(ctx, CreateReviewInput{CustomerID: "", Rating: ratingPtr(4)}); !errors.Is(err, ErrReviewInvalid) {
		t.Fatalf("missing customer should be ErrReviewInvalid, got %v", err)
	}
	if _, err := svc.Create(ctx, CreateReviewInput{CustomerID: "  ", Rating: ratingPtr(4)}); !errors.Is(err, ErrReviewInvalid) {
		t.Fatalf("blank customer should be ErrReviewInvalid, got %v", err)
	}
	if _, err := svc.Create(ctx, CreateReviewInput{CustomerID: "c1", Rating: nil}); !errors.Is(err, ErrReviewInvalid) {
		t.Fatalf("missing rating should be ErrReviewInvalid, got %v", err)
	}

	// Nothing persisted on validation failure.
	got, err := svc.List(ctx, ReviewFilter{})
	if err != nil || len(got) != 0 {
		t.Fatalf("store should be empty: n=%d err=%v", len(got), err)
	}
}

func TestReviewCreate_ZeroRatingIsValid(t *testing.T) {
	svc := NewReviewService(newServiceDB(t))

	r, err := svc.Create(context.Background(), CreateReviewInput{CustomerID: "c1", Rating: ratingPtr(0)})
	if err != nil {
		t.Fatalf("explicit zero rating should be accepted: %v", err)
	}
	if r.Rating != 0 {
		t.Fatalf("rating = %v, want 0", r.Rating)
	}
}

func TestReviewCreate_OptionalAttributions(t *testing.T) {
	svc := NewReviewService(newServiceDB(t))

	r := addReview(t, svc, "c1", "", "", 3.5)
	if r.FoodID != "" || r.OwnerID != "" {
		t.Fatalf("unattributed review should keep empty keys: %+v", r)
	}
	// A fully unattributed review contributes to no aggregate.
	if _, err := svc.OwnerAverages(context.Background()); !errors.Is(err, ErrNoReviews) {
		t.Fatalf("expected ErrNoReviews, got %v", err)
	}
	if _, err := svc.TopFoods(context.Background(), 0); !errors.Is(err, ErrNoReviews) {
		t.Fatalf("expected ErrNoReviews, got %v", err)
	}
}

func TestAverageByOwner(t *testing.T) {
	svc := NewReviewService(newServiceDB(t))
	ctx := context.Background()

	addReview(t, svc, "c1", "", "o1", 5)
	addReview(t, svc, "c2", "", "o1", 2)
	addReview(t, svc, "c3", "", "o2", 1)

	avg, err := svc.AverageByOwner(ctx, "o1")
	if err != nil {
		t.Fatalf("AverageByOwner: %v", err)
	}
	if avg != 3.5 {
		t.Fatalf("avg = %v, want 3.5", avg)
	}

	// Unknown owner and empty store report the same condition.
	if _, err := svc.AverageByOwner(ctx, "ghost"); !errors.Is(err, ErrNoReviews) {
		t.Fatalf("unknown owner: got %v", err)
	}
	empty := NewReviewService(newServiceDB(t))
	if _, err := empty.AverageByOwner(ctx, "o1"); !errors.Is(err, ErrNoReviews) {
		t.Fatalf("empty store: got %v", err)
	}
}

func TestAverageByOwner_UnroundedMean(t *testing.T) {
	svc := NewReviewService(newServiceDB(t))
	ctx := context.Background()

	addReview(t, svc, "c1", "", "o1", 5)
	addReview(t, svc, "c2", "", "o1", 4)
	addReview(t, svc, "c3", "", "o1", 4)

	avg, err := svc.AverageByOwner(ctx, "o1")
	if err != nil {
		t.Fatalf("AverageByOwner: %v", err)
	}
	if math.Abs(avg-13.0/3.0) > 1e-9 {
		t.Fatalf("avg = %v, want %v unrounded", avg, 13.0/3.0)
	}
}

func TestOwnerAverages_AllGroups(t *testing.T) {
	svc := NewReviewService(newServiceDB(t))

	addReview(t, svc, "c1", "", "o1", 4)
	addReview(t, svc, "c2", "", "o2", 2)
	addReview(t, svc, "c3", "f1", "", 5) // food-only, no owner group

	all, err := svc.OwnerAverages(context.Background())
	if err != nil {
		t.Fatalf("OwnerAverages: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 owner groups, got %+v", all)
	}
}

func TestTopFoods_DefaultLimitAndTruncation(t *testing.T) {
	db := newServiceDB(t)
	svc := NewReviewService(db)
	ctx := context.Background()

	for i := 0; i < 12; i++ {
		addReview(t, svc, "c1", fmt.Sprintf("f%02d", i), "", float64(i%6))
	}

	top, err := svc.TopFoods(ctx, 0)
	if err != nil {
		t.Fatalf("TopFoods: %v", err)
	}
	if len(top) != DefaultTopFoodLimit {
		t.Fatalf("default limit: n=%d, want %d", len(top), DefaultTopFoodLimit)
	}

	three, err := svc.TopFoods(ctx, 3)
	if err != nil || len(three) != 3 {
		t.Fatalf("explicit limit: n=%d err=%v", len(three), err)
	}
	// Descending by mean, first entries carry the highest ratings.
	if three[0].AverageRating < three[1].AverageRating || three[1].AverageRating < three[2].AverageRating {
		t.Fatalf("ranking not descending: %+v", three)
	}
}

func TestTopFoods_ServiceLevelDefaultOverride(t *testing.T) {
	svc := NewReviewService(newServiceDB(t))
	svc.TopLimit = 2

	for i := 0; i < 5; i++ {
		addReview(t, svc, "c1", fmt.Sprintf("f%d", i), "", 4)
	}

	top, err := svc.TopFoods(context.Background(), 0)
	if err != nil || len(top) != 2 {
		t.Fatalf("configured limit: n=%d err=%v", len(top), err)
	}
}

func TestTopFoods_EnrichesExistingAndKeepsDangling(t *testing.T) {
	db := newServiceDB(t)
	svc := NewReviewService(db)
	ctx := context.Background()

	f, err := repo.CreateFood(ctx, db, &domain.Food{Name: "Biryani", Price: 180})
	if err != nil {
		t.Fatalf("seed food: %v", err)
	}

	addReview(t, svc, "c1", f.ID, "", 5)
	addReview(t, svc, "c2", "deleted-food", "", 4)

	top, err := svc.TopFoods(ctx, 10)
	if err != nil {
		t.Fatalf("TopFoods: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("expected 2 entries, got %+v", top)
	}
	if top[0].FoodID != f.ID || top[0].Food == nil || top[0].Food.Name != "Biryani" {
		t.Fatalf("existing food not enriched: %+v", top[0])
	}
	if top[1].FoodID != "deleted-food" || top[1].Food != nil {
		t.Fatalf("dangling reference should keep raw id: %+v", top[1])
	}
}

func TestEnrichFoods_Idempotent(t *testing.T) {
	db := newServiceDB(t)
	svc := NewReviewService(db)
	ctx := context.Background()

	f, err := repo.CreateFood(ctx, db, &domain.Food{Name: "Dosa", Price: 60})
	if err != nil {
		t.Fatalf("seed food: %v", err)
	}

	items := []domain.FoodAverage{{FoodID: f.ID, AverageRating: 4}}
	once, err := svc.EnrichFoods(ctx, items)
	if err != nil || once[0].Food == nil {
		t.Fatalf("first enrich: %+v err=%v", once, err)
	}
	resolved := once[0].Food

	twice, err := svc.EnrichFoods(ctx, once)
	if err != nil {
		t.Fatalf("second enrich: %v", err)
	}
	if twice[0].Food != resolved {
		t.Fatalf("already-resolved entry was re-fetched")
	}
}

func TestList_Filters(t *testing.T) {
	svc := NewReviewService(newServiceDB(t))
	ctx := context.Background()

	addReview(t, svc, "c1", "f1", "o1", 5)
	addReview(t, svc, "c2", "f2", "o1", 3)

	mine, err := svc.List(ctx, ReviewFilter{CustomerID: "c1"})
	if err != nil || len(mine) != 1 || mine[0].FoodID != "f1" {
		t.Fatalf("customer filter: %+v err=%v", mine, err)
	}

	owners, err := svc.List(ctx, ReviewFilter{OwnerID: "o1"})
	if err != nil || len(owners) != 2 {
		t.Fatalf("owner filter: n=%d err=%v", len(owners), err)
	}
}
