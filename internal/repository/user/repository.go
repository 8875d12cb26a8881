package user

import (
	"context"

	"artisty/internal/domain"
)

type Repository interface {
	UpsertByEmail(ctx context.Context, u domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
}
