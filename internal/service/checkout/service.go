package checkout

import (
	"context"
	"fmt"
	"time"

	"artisty/internal/catalog"
	"artisty/internal/domain"
	orderrepo "artisty/internal/repository/order"
	"github.com/google/uuid"
)

// Order items keep a rendered image URL rather than the raw catalog image id,
// so the history stays displayable even if the catalog record changes.
const itemImageWidth = 400

type orderRepo interface {
	Insert(ctx context.Context, order domain.Order) error
}

// Service turns a cart into a persisted order.
type Service struct {
	orders orderRepo
}

func New(orders orderrepo.Repository) *Service {
	return &Service{orders: orders}
}

type Result struct {
	OrderID string
	Message string
}

// Checkout validates the caller and cart, snapshots the lines into an
// immutable order priced at checkout time, and persists it with a single
// insert. Orders are created directly in the completed state; any later
// status transition belongs to an external fulfillment process.
func (s *Service) Checkout(ctx context.Context, identity *domain.Identity, items []domain.CartLine) (*Result, error) {
	if identity == nil {
		return nil, domain.ErrUnauthenticated
	}
	if len(items) == 0 {
		return nil, domain.ErrEmptyCart
	}

	now := time.Now().UTC()
	orderItems := make([]domain.OrderItem, 0, len(items))
	total := 0.0
	for _, line := range items {
		qty := line.Quantity
		if qty < 1 {
			qty = 1
		}
		price := domain.UnitPrice(line.Artwork.ID)
		total += price * float64(qty)
		orderItems = append(orderItems, domain.OrderItem{
			ArtworkID: line.Artwork.ID,
			Title:     line.Artwork.Title,
			Artist:    line.Artwork.ArtistTitle,
			Image:     itemImage(line.Artwork.ImageID),
			Quantity:  qty,
			UnitPrice: price,
		})
	}

	order := domain.Order{
		ID:        uuid.NewString(),
		UserID:    identity.UserID,
		UserEmail: identity.Email,
		Items:     orderItems,
		Total:     total,
		Status:    domain.StatusCompleted,
		CreatedAt: now,
	}

	if err := s.orders.Insert(ctx, order); err != nil {
		return nil, fmt.Errorf("persist order: %w", err)
	}

	return &Result{
		OrderID: order.ID,
		Message: "Order placed successfully!",
	}, nil
}

func itemImage(imageID *string) *string {
	if imageID == nil || *imageID == "" {
		return nil
	}
	url := catalog.IIIFImageURL(*imageID, itemImageWidth)
	return &url
}
