package seed

import (
	"context"
	"fmt"
	"time"

	"artisty/internal/domain"
	orderrepo "artisty/internal/repository/order"
	userrepo "artisty/internal/repository/user"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

const demoEmail = "demo@artisty.local"

// Apply inserts local-development fixtures: a demo account with a small order
// history spanning several months and statuses. Safe to run repeatedly.
func Apply(ctx context.Context, database *mongo.Database) error {
	users := userrepo.NewMongo(database)
	orders := orderrepo.NewMongo(database)

	demo, err := users.UpsertByEmail(ctx, domain.User{
		ID:    uuid.NewString(),
		Email: demoEmail,
		Name:  "Demo Collector",
	})
	if err != nil {
		return fmt.Errorf("seed demo user: %w", err)
	}

	existing, err := orders.ListByUser(ctx, demo.ID)
	if err != nil {
		return fmt.Errorf("check existing orders: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	now := time.Now().UTC()
	for _, o := range demoOrders(demo, now) {
		if err := orders.Insert(ctx, o); err != nil {
			return fmt.Errorf("seed order: %w", err)
		}
	}
	return nil
}

func demoOrders(demo *domain.User, now time.Time) []domain.Order {
	starryNight := "The Starry Night"
	vanGogh := "Vincent van Gogh"
	waterLilies := "Water Lilies"
	monet := "Claude Monet"

	build := func(createdAt time.Time, status domain.OrderStatus, items []domain.OrderItem) domain.Order {
		total := 0.0
		for _, item := range items {
			total += item.UnitPrice * float64(item.Quantity)
		}
		return domain.Order{
			ID:        uuid.NewString(),
			UserID:    demo.ID,
			UserEmail: demo.Email,
			Items:     items,
			Total:     total,
			Status:    status,
			CreatedAt: createdAt,
		}
	}

	return []domain.Order{
		build(now.AddDate(0, -2, 0), domain.StatusCompleted, []domain.OrderItem{
			{ArtworkID: 28560, Title: starryNight, Artist: &vanGogh, Quantity: 1, UnitPrice: domain.UnitPrice(28560)},
		}),
		build(now.AddDate(0, -1, -3), domain.StatusShipped, []domain.OrderItem{
			{ArtworkID: 16568, Title: waterLilies, Artist: &monet, Quantity: 2, UnitPrice: domain.UnitPrice(16568)},
		}),
		build(now.AddDate(0, 0, -1), domain.StatusCompleted, []domain.OrderItem{
			{ArtworkID: 28560, Title: starryNight, Artist: &vanGogh, Quantity: 1, UnitPrice: domain.UnitPrice(28560)},
			{ArtworkID: 16568, Title: waterLilies, Artist: &monet, Quantity: 1, UnitPrice: domain.UnitPrice(16568)},
		}),
	}
}
