package httpserver

import (
	"context"
	"time"

	"artisty/internal/domain"
	cartsvc "artisty/internal/service/cart"
	checkoutsvc "artisty/internal/service/checkout"
)

// Deps are the services the router needs.
type Deps struct {
	Catalog     CatalogClient
	CartSvc     CartService
	CheckoutSvc CheckoutService
	OrderSvc    OrderService
	AuthSvc     AuthService
}

type CatalogClient interface {
	List(ctx context.Context, page, limit int) ([]domain.Artwork, domain.Pagination, error)
	Get(ctx context.Context, id int) (*domain.Artwork, error)
}

type CartService interface {
	Get(ctx context.Context, cartID string) (*cartsvc.Ledger, error)
	Add(ctx context.Context, cartID string, art domain.Artwork) (*cartsvc.Ledger, error)
	Remove(ctx context.Context, cartID string, artworkID int) (*cartsvc.Ledger, bool, error)
	Clear(ctx context.Context, cartID string) error
}

type CheckoutService interface {
	Checkout(ctx context.Context, identity *domain.Identity, items []domain.CartLine) (*checkoutsvc.Result, error)
}

type OrderService interface {
	List(ctx context.Context, identity *domain.Identity) ([]domain.Order, error)
}

type AuthService interface {
	AuthCodeURL(provider, state string) (string, error)
	CompleteSocialLogin(ctx context.Context, provider, code string) (*domain.Identity, string, error)
	Identity(ctx context.Context, token string) (*domain.Identity, error)
	SignOut(ctx context.Context, token string) error
	SessionTTL() time.Duration
}
