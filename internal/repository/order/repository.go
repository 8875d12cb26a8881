package order

import (
	"context"

	"artisty/internal/domain"
)

type Repository interface {
	Insert(ctx context.Context, order domain.Order) error
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
}
