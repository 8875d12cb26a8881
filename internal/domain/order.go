package domain

import "time"

type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusCompleted  OrderStatus = "completed"
	StatusCancelled  OrderStatus = "cancelled"
)

// OrderItem is a snapshot of a cart line taken at checkout time. It is
// immutable once created and stays valid even if the catalog record changes.
type OrderItem struct {
	ArtworkID int     `json:"id" bson:"id"`
	Title     string  `json:"title" bson:"title"`
	Artist    *string `json:"artist" bson:"artist"`
	Image     *string `json:"image" bson:"image"`
	Quantity  int     `json:"quantity" bson:"quantity"`
	UnitPrice float64 `json:"price" bson:"price"`
}

// Order is a persisted purchase. Total always equals the sum of
// UnitPrice*Quantity over Items as computed at creation time. Status and
// UpdatedAt may later be changed by an external fulfillment process; orders
// are never deleted.
type Order struct {
	ID        string      `json:"id" bson:"id"`
	UserID    string      `json:"userId" bson:"userId"`
	UserEmail string      `json:"userEmail" bson:"userEmail"`
	Items     []OrderItem `json:"items" bson:"items"`
	Total     float64     `json:"total" bson:"total"`
	Status    OrderStatus `json:"status" bson:"status"`
	CreatedAt time.Time   `json:"createdAt" bson:"createdAt"`
	UpdatedAt *time.Time  `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// OrderStats summarizes a user's order history.
type OrderStats struct {
	Total             int     `json:"total"`
	Completed         int     `json:"completed"`
	Pending           int     `json:"pending"`
	Cancelled         int     `json:"cancelled"`
	TotalSpent        float64 `json:"totalSpent"`
	TotalItems        int     `json:"totalItems"`
	AverageOrderValue float64 `json:"averageOrderValue"`
}
