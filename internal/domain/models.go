// Package domain defines the persistence models for customers, foods, orders,
// messages, and reviews. These types are mapped with GORM and form the core
// data layer of the food-delivery backend.
package domain

import "time"

// Customer represents a registered account that places orders and writes
// reviews.
//
// Fields:
//   - ID: stable UUID primary key (char(36)).
//   - Name / Email: account identity; email is indexed for login lookups.
//   - Password: stored as provided (credential handling is out of scope here).
//   - Address / Mobile: delivery contact details.
//   - CreatedAt / UpdatedAt: timestamps managed by GORM.
type Customer struct {
	ID        string    `json:"id"         gorm:"type:char(36);primaryKey"`
	Name      string    `json:"name"       gorm:"type:varchar(255);not null"`
	Email     string    `json:"email"      gorm:"type:varchar(255);not null;index:idx_customer_email"`
	Password  string    `json:"-"          gorm:"type:varchar(255);not null"`
	Address   string    `json:"address"    gorm:"type:text"`
	Mobile    string    `json:"mobile"     gorm:"type:varchar(32)"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the database table name for Customer.
func (Customer) TableName() string { return "customers" }

// Food is a catalog entry offered by an owning restaurant or mess. Food rows
// are the referenced records substituted into ranked review aggregates.
//
// Fields:
//   - ID: UUID primary key (char(36)).
//   - OwnerID: identifier of the owning restaurant/mess; indexed.
//   - Name / Category / Price: menu listing data.
//   - ImagePath: relative path of the uploaded food image (served as /images/…).
type Food struct {
	ID        string    `json:"id"         gorm:"type:char(36);primaryKey"`
	OwnerID   string    `json:"owner_id"   gorm:"type:varchar(64);not null;index:idx_food_owner"`
	Name      string    `json:"name"       gorm:"type:varchar(255);not null"`
	Category  string    `json:"category"   gorm:"type:varchar(128)"`
	Price     float64   `json:"price"      gorm:"not null"`
	ImagePath string    `json:"image_path" gorm:"type:varchar(512)"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the database table name for Food.
func (Food) TableName() string { return "foods" }

// OrderItem is one line of an order. Items are stored inline on the order row
// as a JSON document (GORM serializer), matching the embedded-items shape of
// the upstream API.
type OrderItem struct {
	FoodID   string  `json:"food_id"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// Order represents a placed order with its embedded item lines.
//
// Fields:
//   - ID: UUID primary key (char(36)).
//   - CustomerID: identifier of the ordering customer; indexed.
//   - ItemCount / TotalAmount: caller-supplied order summary.
//   - Items: embedded item lines, serialized as JSON.
//   - Status: order status ("placed", "preparing", "delivered", …).
type Order struct {
	ID          string      `json:"id"           gorm:"type:char(36);primaryKey"`
	CustomerID  string      `json:"customer_id"  gorm:"type:varchar(64);not null;index:idx_order_customer"`
	ItemCount   int         `json:"item_count"   gorm:"not null"`
	TotalAmount float64     `json:"total_amount" gorm:"not null"`
	Items       []OrderItem `json:"items"        gorm:"serializer:json;type:text"`
	Status      string      `json:"status"       gorm:"type:varchar(32);not null;default:'placed'"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// TableName returns the database table name for Order.
func (Order) TableName() string { return "orders" }

// Message is a contact-form message sent by a visitor. Messages have no
// lifecycle beyond create and list.
type Message struct {
	ID          string    `json:"id"           gorm:"type:char(36);primaryKey"`
	SenderName  string    `json:"sender_name"  gorm:"type:varchar(255)"`
	SenderEmail string    `json:"sender_email" gorm:"type:varchar(255)"`
	Body        string    `json:"body"         gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName returns the database table name for Message.
func (Message) TableName() string { return "messages" }

// Review is one customer's evaluation of a food item and/or an owning entity.
//
// CustomerID and Rating are required; FoodID and OwnerID are both optional.
// A review lacking OwnerID never participates in per-owner averages, and one
// lacking FoodID never participates in the food ranking; the aggregation
// queries discard the unattributed group.
//
// Fields:
//   - ID: UUID primary key (char(36)).
//   - CustomerID: authoring customer; required, indexed.
//   - FoodID: rated food item; optional, indexed.
//   - OwnerID: owning restaurant/mess whose performance is aggregated;
//     optional, indexed.
//   - Rating: numeric score; required, no declared bound.
//   - Comment: free text; optional.
//   - CreatedAt: defaults to creation time. Reviews are never updated or
//     deleted by this application.
type Review struct {
	ID         string    `json:"id"          gorm:"type:char(36);primaryKey"`
	CustomerID string    `json:"customer_id" gorm:"type:varchar(64);not null;index:idx_review_customer"`
	FoodID     string    `json:"food_id,omitempty"  gorm:"type:varchar(64);index:idx_review_food"`
	OwnerID    string    `json:"owner_id,omitempty" gorm:"type:varchar(64);index:idx_review_owner"`
	Rating     float64   `json:"rating"     gorm:"not null"`
	Comment    string    `json:"comment,omitempty" gorm:"type:text"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName returns the database table name for Review.
func (Review) TableName() string { return "reviews" }
