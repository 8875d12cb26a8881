package order

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"artisty/internal/domain"
	orderrepo "artisty/internal/repository/order"
)

type orderRepo interface {
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
}

// Service retrieves a user's order history. Summary views are pure functions
// over the returned slice; they never fetch.
type Service struct {
	orders orderRepo
}

func New(orders orderrepo.Repository) *Service {
	return &Service{orders: orders}
}

// List returns the identity's orders, newest first.
func (s *Service) List(ctx context.Context, identity *domain.Identity) ([]domain.Order, error) {
	if identity == nil {
		return nil, domain.ErrUnauthenticated
	}
	orders, err := s.orders.ListByUser(ctx, identity.UserID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	// The repository sorts too; re-sorting keeps the contract independent of
	// the store.
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

// Stats summarizes counts and spend over the given orders. AverageOrderValue
// is 0 for an empty slice.
func Stats(orders []domain.Order) domain.OrderStats {
	stats := domain.OrderStats{Total: len(orders)}
	for _, o := range orders {
		switch o.Status {
		case domain.StatusCompleted:
			stats.Completed++
		case domain.StatusPending:
			stats.Pending++
		case domain.StatusCancelled:
			stats.Cancelled++
		}
		stats.TotalSpent += o.Total
		for _, item := range o.Items {
			qty := item.Quantity
			if qty < 1 {
				qty = 1
			}
			stats.TotalItems += qty
		}
	}
	if stats.Total > 0 {
		stats.AverageOrderValue = stats.TotalSpent / float64(stats.Total)
	}
	return stats
}

// ByMonth groups orders by the calendar month of their creation time, keyed
// like "January 2026". The per-group sequence follows the input order.
func ByMonth(orders []domain.Order) map[string][]domain.Order {
	grouped := make(map[string][]domain.Order)
	for _, o := range orders {
		key := o.CreatedAt.Format("January 2006")
		grouped[key] = append(grouped[key], o)
	}
	return grouped
}

// Search filters orders by a case-insensitive substring match on the order
// id, item title, or item artist. An empty query returns the input unchanged.
func Search(orders []domain.Order, query string) []domain.Order {
	if query == "" {
		return orders
	}
	term := strings.ToLower(query)

	var out []domain.Order
	for _, o := range orders {
		if orderMatches(o, term) {
			out = append(out, o)
		}
	}
	return out
}

func orderMatches(o domain.Order, term string) bool {
	if strings.Contains(strings.ToLower(o.ID), term) {
		return true
	}
	for _, item := range o.Items {
		if strings.Contains(strings.ToLower(item.Title), term) {
			return true
		}
		if item.Artist != nil && strings.Contains(strings.ToLower(*item.Artist), term) {
			return true
		}
	}
	return false
}

// Recent returns up to limit orders, newest first.
func Recent(orders []domain.Order, limit int) []domain.Order {
	sorted := make([]domain.Order, len(orders))
	copy(sorted, orders)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	if limit < 0 {
		limit = 0
	}
	if limit > len(sorted) {
		limit = len(sorted)
	}
	return sorted[:limit]
}

// ByStatus filters orders with the given status.
func ByStatus(orders []domain.Order, status domain.OrderStatus) []domain.Order {
	var out []domain.Order
	for _, o := range orders {
		if o.Status == status {
			out = append(out, o)
		}
	}
	return out
}

// GetByID returns the order with the given id, or nil.
func GetByID(orders []domain.Order, id string) *domain.Order {
	for i := range orders {
		if orders[i].ID == id {
			return &orders[i]
		}
	}
	return nil
}

// IsRecent reports whether the order was created within the last 7 days.
func IsRecent(o domain.Order, now time.Time) bool {
	return now.Sub(o.CreatedAt) <= 7*24*time.Hour
}
