package cart

import (
	"context"

	"artisty/internal/domain"
)

// Repository is the durable home of a device's cart ledger. Load returns
// (nil, nil) when nothing is stored under the key.
type Repository interface {
	Load(ctx context.Context, cartID string) ([]domain.CartLine, error)
	Save(ctx context.Context, cartID string, lines []domain.CartLine) error
	Delete(ctx context.Context, cartID string) error
}
