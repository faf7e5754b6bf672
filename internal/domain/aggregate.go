// Package domain defines the persistence models for the application. This
// file holds derived aggregate shapes: they are computed fresh on every
// request from the reviews table and are never persisted.
package domain

// OwnerAverage is the arithmetic-mean rating for one owning entity. Owner
// aggregates carry the raw owner identifier only; they are not enriched with
// a catalog record (see FoodAverage for the asymmetric food case).
type OwnerAverage struct {
	OwnerID       string  `json:"owner_id"`
	AverageRating float64 `json:"average_rating"`
}

// FoodAverage is the arithmetic-mean rating for one food item. Food is filled
// in by reference enrichment when the catalog record exists; entries whose
// referenced food has been removed keep the bare FoodID and a nil Food.
type FoodAverage struct {
	FoodID        string  `json:"food_id"`
	AverageRating float64 `json:"average_rating"`
	Food          *Food   `json:"food,omitempty" gorm:"-"`
}
