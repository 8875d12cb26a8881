package session

import (
	"context"

	"artisty/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, s domain.Session) error
	Get(ctx context.Context, token string) (*domain.Session, error)
	Delete(ctx context.Context, token string) error
}
