package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"artisty/internal/domain"
	"github.com/redis/go-redis/v9"
)

type redisRepo struct {
	client *redis.Client
}

// NewRedis stores each ledger as a JSON value under cart:<id>. Entries never
// expire: the cart must survive restarts until the owner empties it.
func NewRedis(client *redis.Client) Repository {
	return &redisRepo{client: client}
}

func (r *redisRepo) Load(ctx context.Context, cartID string) ([]domain.CartLine, error) {
	data, err := r.client.Get(ctx, cacheKey(cartID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}

	var lines []domain.CartLine
	if err := json.Unmarshal(data, &lines); err != nil {
		return nil, fmt.Errorf("unmarshal cart: %w", err)
	}
	return lines, nil
}

func (r *redisRepo) Save(ctx context.Context, cartID string, lines []domain.CartLine) error {
	data, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("marshal cart: %w", err)
	}
	if err := r.client.Set(ctx, cacheKey(cartID), data, 0).Err(); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

func (r *redisRepo) Delete(ctx context.Context, cartID string) error {
	if err := r.client.Del(ctx, cacheKey(cartID)).Err(); err != nil {
		return fmt.Errorf("delete cart: %w", err)
	}
	return nil
}

func cacheKey(cartID string) string {
	return fmt.Sprintf("cart:%s", cartID)
}
