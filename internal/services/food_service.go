// Package services – FoodService
//
// This file implements the FoodService, which manages the food catalog backing
// reference enrichment. Category names are normalized to title case so the
// catalog stays consistent regardless of how clients spell them.
package services

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/gorm"

	"github.com/mealmesh/food-delivery-backend/internal/domain"
	"github.com/mealmesh/food-delivery-backend/internal/repo"
)

// CreateFoodInput carries the caller-supplied fields for a new catalog entry.
type CreateFoodInput struct {
	OwnerID   string
	Name      string
	Category  string
	Price     float64
	ImagePath string
}

// FoodService provides catalog operations.
type FoodService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB

	titler cases.Caser
}

// NewFoodService constructs a FoodService with an English title caser for
// category normalization.
func NewFoodService(db *gorm.DB) *FoodService {
	return &FoodService{DB: db, titler: cases.Title(language.English)}
}

// Create validates and persists a catalog entry. Name and owner id are
// required (ErrFoodInvalid otherwise). The category is title-cased.
func (s *FoodService) Create(ctx context.Context, in CreateFoodInput) (*domain.Food, error) {
	name := strings.TrimSpace(in.Name)
	owner := strings.TrimSpace(in.OwnerID)
	if name == "" || owner == "" {
		return nil, ErrFoodInvalid
	}
	f := &domain.Food{
		OwnerID:   owner,
		Name:      name,
		Category:  s.titler.String(strings.TrimSpace(in.Category)),
		Price:     in.Price,
		ImagePath: in.ImagePath,
	}
	return repo.CreateFood(ctx, s.DB, f)
}

// Get fetches a catalog entry by id, mapping a missing row to ErrFoodNotFound.
func (s *FoodService) Get(ctx context.Context, id string) (*domain.Food, error) {
	f, err := repo.GetFood(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrFoodNotFound
		}
		return nil, err
	}
	return f, nil
}

// ListPage returns a page of catalog entries and the total count, optionally
// narrowed by a name substring. Invalid page values fall back to defaults.
func (s *FoodService) ListPage(ctx context.Context, nameQuery string, page, pageSize int) ([]domain.Food, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	total, err := repo.CountFoods(ctx, s.DB, nameQuery)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []domain.Food{}, 0, nil
	}

	items, err := repo.ListFoodsPage(ctx, s.DB, nameQuery, offset, pageSize)
	return items, total, err
}
