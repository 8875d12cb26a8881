package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"artisty/internal/domain"
	authsvc "artisty/internal/service/auth"
	cartsvc "artisty/internal/service/cart"
	checkoutsvc "artisty/internal/service/checkout"
	"github.com/gin-gonic/gin"
)

type stubCatalog struct {
	artworks   []domain.Artwork
	pagination domain.Pagination
	err        error
}

func (s *stubCatalog) List(_ context.Context, _, _ int) ([]domain.Artwork, domain.Pagination, error) {
	return s.artworks, s.pagination, s.err
}

func (s *stubCatalog) Get(_ context.Context, id int) (*domain.Artwork, error) {
	if s.err != nil {
		return nil, s.err
	}
	for i := range s.artworks {
		if s.artworks[i].ID == id {
			return &s.artworks[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

type memoryCartStore struct {
	data    map[string][]domain.CartLine
	deleted []string
}

func newMemoryCartStore() *memoryCartStore {
	return &memoryCartStore{data: make(map[string][]domain.CartLine)}
}

func (s *memoryCartStore) Load(_ context.Context, cartID string) ([]domain.CartLine, error) {
	return s.data[cartID], nil
}

func (s *memoryCartStore) Save(_ context.Context, cartID string, lines []domain.CartLine) error {
	s.data[cartID] = lines
	return nil
}

func (s *memoryCartStore) Delete(_ context.Context, cartID string) error {
	s.deleted = append(s.deleted, cartID)
	delete(s.data, cartID)
	return nil
}

type stubCheckout struct {
	result *checkoutsvc.Result
	err    error
	items  []domain.CartLine
}

func (s *stubCheckout) Checkout(_ context.Context, identity *domain.Identity, items []domain.CartLine) (*checkoutsvc.Result, error) {
	if identity == nil {
		return nil, domain.ErrUnauthenticated
	}
	if len(items) == 0 {
		return nil, domain.ErrEmptyCart
	}
	if s.err != nil {
		return nil, s.err
	}
	s.items = items
	return s.result, nil
}

type stubOrders struct {
	orders []domain.Order
	err    error
}

func (s *stubOrders) List(_ context.Context, identity *domain.Identity) ([]domain.Order, error) {
	if identity == nil {
		return nil, domain.ErrUnauthenticated
	}
	return s.orders, s.err
}

type stubAuth struct {
	identities  map[string]*domain.Identity
	identityErr error
	signedOut   []string
}

func (s *stubAuth) AuthCodeURL(provider, state string) (string, error) {
	if provider != "google" && provider != "github" {
		return "", authsvc.ErrUnknownProvider
	}
	return "https://provider.example.com/authorize?state=" + state, nil
}

func (s *stubAuth) CompleteSocialLogin(_ context.Context, _, _ string) (*domain.Identity, string, error) {
	return nil, "", errors.New("not implemented")
}

func (s *stubAuth) Identity(_ context.Context, token string) (*domain.Identity, error) {
	if s.identityErr != nil {
		return nil, s.identityErr
	}
	return s.identities[token], nil
}

func (s *stubAuth) SignOut(_ context.Context, token string) error {
	s.signedOut = append(s.signedOut, token)
	return nil
}

func (s *stubAuth) SessionTTL() time.Duration {
	return time.Hour
}

type testEnv struct {
	router    *gin.Engine
	catalog   *stubCatalog
	cartStore *memoryCartStore
	checkout  *stubCheckout
	orders    *stubOrders
	auth      *stubAuth
}

func newTestEnv() *testEnv {
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		catalog:   &stubCatalog{},
		cartStore: newMemoryCartStore(),
		checkout:  &stubCheckout{result: &checkoutsvc.Result{OrderID: "order-1", Message: "Order placed successfully!"}},
		orders:    &stubOrders{},
		auth:      &stubAuth{identities: make(map[string]*domain.Identity)},
	}

	deps := Deps{
		Catalog:     env.catalog,
		CartSvc:     cartsvc.New(env.cartStore),
		CheckoutSvc: env.checkout,
		OrderSvc:    env.orders,
		AuthSvc:     env.auth,
	}
	logger := log.New(io.Discard, "", 0)
	env.router = buildRouter(logger, nil, nil, deps, "http://localhost:3000")
	return env
}

func (env *testEnv) do(t *testing.T, method, path string, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return body
}

func sessionCookie(token string) *http.Cookie {
	return &http.Cookie{Name: sessionCookieName, Value: token}
}

func cartCookie(id string) *http.Cookie {
	return &http.Cookie{Name: cartCookieName, Value: id}
}

func TestHealthz(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestReadyz_NotConfigured(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodGet, "/readyz", "")
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}

func TestListArtworks(t *testing.T) {
	env := newTestEnv()
	env.catalog.artworks = []domain.Artwork{{ID: 28560, Title: "The Starry Night"}}
	env.catalog.pagination = domain.Pagination{Total: 1, CurrentPage: 1}

	rec := env.do(t, http.MethodGet, "/api/artworks?page=1&limit=20", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	data, ok := body["data"].([]interface{})
	if !ok || len(data) != 1 {
		t.Fatalf("unexpected data: %v", body["data"])
	}
	if body["pagination"] == nil {
		t.Fatalf("expected pagination in response")
	}
}

func TestListArtworks_UpstreamFailureIsInline(t *testing.T) {
	env := newTestEnv()
	env.catalog.err = errors.New("upstream down")

	rec := env.do(t, http.MethodGet, "/api/artworks", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["error"] != "Failed to fetch artworks" {
		t.Fatalf("unexpected error message: %v", body["error"])
	}
	if data, ok := body["data"].([]interface{}); !ok || len(data) != 0 {
		t.Fatalf("expected empty data, got %v", body["data"])
	}
}

func TestGetArtwork(t *testing.T) {
	env := newTestEnv()
	env.catalog.artworks = []domain.Artwork{{ID: 28560, Title: "The Starry Night"}}

	rec := env.do(t, http.MethodGet, "/api/artworks/28560", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	data, ok := body["data"].(map[string]interface{})
	if !ok || data["title"] != "The Starry Night" {
		t.Fatalf("unexpected data: %v", body["data"])
	}
}

func TestGetArtwork_InvalidID(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodGet, "/api/artworks/not-a-number", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestGetArtwork_FailureIsInline(t *testing.T) {
	env := newTestEnv()
	env.catalog.err = errors.New("upstream down")

	rec := env.do(t, http.MethodGet, "/api/artworks/28560", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["error"] != "Failed to fetch artwork" {
		t.Fatalf("unexpected error message: %v", body["error"])
	}
}

func TestGetCart_IssuesDeviceCookie(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodGet, "/api/cart", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	issued := false
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == cartCookieName && cookie.Value != "" {
			issued = true
		}
	}
	if !issued {
		t.Fatalf("expected a cart_id cookie on first touch")
	}

	body := decodeBody(t, rec)
	if body["totalQuantity"] != float64(0) {
		t.Fatalf("expected empty cart, got %v", body)
	}
}

func TestAddCartItem(t *testing.T) {
	env := newTestEnv()
	cookie := cartCookie("device-1")

	rec := env.do(t, http.MethodPost, "/api/cart/items", `{"id": 200, "title": "The Starry Night"}`, cookie)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	rec = env.do(t, http.MethodPost, "/api/cart/items", `{"id": 200, "title": "The Starry Night"}`, cookie)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	body := decodeBody(t, rec)
	if body["totalQuantity"] != float64(2) || body["totalUniqueArtworks"] != float64(1) {
		t.Fatalf("unexpected cart totals: %v", body)
	}
	// id 200 prices at 1.0 per unit.
	if body["totalPrice"] != float64(2) {
		t.Fatalf("unexpected total price: %v", body["totalPrice"])
	}
}

func TestAddCartItem_InvalidBody(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodPost, "/api/cart/items", `{"id": 0}`, cartCookie("device-1"))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestRemoveCartItem(t *testing.T) {
	env := newTestEnv()
	cookie := cartCookie("device-1")
	env.do(t, http.MethodPost, "/api/cart/items", `{"id": 200, "title": "The Starry Night"}`, cookie)

	rec := env.do(t, http.MethodDelete, "/api/cart/items/200", "", cookie)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["totalQuantity"] != float64(0) {
		t.Fatalf("expected empty cart after removal, got %v", body)
	}
}

func TestRemoveCartItem_NotInCart(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodDelete, "/api/cart/items/999", "", cartCookie("device-1"))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestCheckout_RequiresSession(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodPost, "/api/checkout", `{"cartItems": [{"id": 200, "title": "x", "quantity": 1}]}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["message"] != "Please log in to checkout" {
		t.Fatalf("unexpected message: %v", body["message"])
	}
}

func TestCheckout_EmptyCart(t *testing.T) {
	env := newTestEnv()
	env.auth.identities["tok"] = &domain.Identity{UserID: "user-1", Email: "user@example.com"}

	rec := env.do(t, http.MethodPost, "/api/checkout", `{"cartItems": []}`, sessionCookie("tok"))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["message"] != "Cart is empty" {
		t.Fatalf("unexpected message: %v", body["message"])
	}
}

func TestCheckout_SuccessClearsDeviceCart(t *testing.T) {
	env := newTestEnv()
	env.auth.identities["tok"] = &domain.Identity{UserID: "user-1", Email: "user@example.com"}
	env.cartStore.data["device-1"] = []domain.CartLine{{Artwork: domain.Artwork{ID: 200}, Quantity: 1}}

	rec := env.do(t, http.MethodPost, "/api/checkout",
		`{"cartItems": [{"id": 200, "title": "The Starry Night", "quantity": 2}]}`,
		sessionCookie("tok"), cartCookie("device-1"))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	body := decodeBody(t, rec)
	if body["success"] != true || body["orderId"] != "order-1" {
		t.Fatalf("unexpected response: %v", body)
	}
	if body["message"] != "Order placed successfully!" {
		t.Fatalf("unexpected message: %v", body["message"])
	}
	if len(env.checkout.items) != 1 || env.checkout.items[0].Quantity != 2 {
		t.Fatalf("unexpected items passed to checkout: %+v", env.checkout.items)
	}
	if len(env.cartStore.deleted) != 1 || env.cartStore.deleted[0] != "device-1" {
		t.Fatalf("expected device cart to be cleared, got %v", env.cartStore.deleted)
	}
}

func TestCheckout_PersistenceFailure(t *testing.T) {
	env := newTestEnv()
	env.auth.identities["tok"] = &domain.Identity{UserID: "user-1", Email: "user@example.com"}
	env.checkout.err = errors.New("mongo down")

	rec := env.do(t, http.MethodPost, "/api/checkout",
		`{"cartItems": [{"id": 200, "title": "x", "quantity": 1}]}`, sessionCookie("tok"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["message"] != "Failed to place order" {
		t.Fatalf("unexpected message: %v", body["message"])
	}
}

func TestCheckout_SessionStoreFailure(t *testing.T) {
	env := newTestEnv()
	env.auth.identityErr = errors.New("session store down")

	rec := env.do(t, http.MethodPost, "/api/checkout",
		`{"cartItems": [{"id": 200, "title": "x", "quantity": 1}]}`, sessionCookie("tok"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 when the session store is down, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["message"] != "Failed to place order" {
		t.Fatalf("unexpected message: %v", body["message"])
	}
}

func TestListOrders_RequiresSession(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodGet, "/api/orders", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["message"] != "Unauthorized" {
		t.Fatalf("unexpected message: %v", body["message"])
	}
}

func TestListOrders(t *testing.T) {
	env := newTestEnv()
	env.auth.identities["tok"] = &domain.Identity{UserID: "user-1", Email: "user@example.com"}
	env.orders.orders = []domain.Order{
		{ID: "a", Items: []domain.OrderItem{{Title: "The Starry Night"}}},
		{ID: "b", Items: []domain.OrderItem{{Title: "Water Lilies"}}},
	}

	rec := env.do(t, http.MethodGet, "/api/orders", "", sessionCookie("tok"))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if orders, ok := body["orders"].([]interface{}); !ok || len(orders) != 2 {
		t.Fatalf("unexpected orders: %v", body["orders"])
	}
}

func TestListOrders_SessionStoreFailure(t *testing.T) {
	env := newTestEnv()
	env.auth.identityErr = errors.New("session store down")

	rec := env.do(t, http.MethodGet, "/api/orders", "", sessionCookie("tok"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 when the session store is down, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["message"] != "Failed to fetch orders" {
		t.Fatalf("unexpected message: %v", body["message"])
	}
}

func TestListOrders_StatusFilter(t *testing.T) {
	env := newTestEnv()
	env.auth.identities["tok"] = &domain.Identity{UserID: "user-1", Email: "user@example.com"}
	env.orders.orders = []domain.Order{
		{ID: "a", Status: domain.StatusCompleted},
		{ID: "b", Status: domain.StatusShipped},
	}

	rec := env.do(t, http.MethodGet, "/api/orders?status=shipped", "", sessionCookie("tok"))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	orders, ok := body["orders"].([]interface{})
	if !ok || len(orders) != 1 {
		t.Fatalf("expected 1 shipped order, got %v", body["orders"])
	}
	if first, ok := orders[0].(map[string]interface{}); !ok || first["id"] != "b" {
		t.Fatalf("unexpected order: %v", orders[0])
	}
}

func TestGetOrder(t *testing.T) {
	env := newTestEnv()
	env.auth.identities["tok"] = &domain.Identity{UserID: "user-1", Email: "user@example.com"}
	env.orders.orders = []domain.Order{
		{ID: "a", Status: domain.StatusCompleted, CreatedAt: time.Now().UTC().Add(-24 * time.Hour)},
	}

	rec := env.do(t, http.MethodGet, "/api/orders/a", "", sessionCookie("tok"))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	order, ok := body["order"].(map[string]interface{})
	if !ok || order["id"] != "a" {
		t.Fatalf("unexpected order: %v", body["order"])
	}
	if body["isRecent"] != true {
		t.Fatalf("expected a day-old order to be recent, got %v", body["isRecent"])
	}
}

func TestGetOrder_NotFound(t *testing.T) {
	env := newTestEnv()
	env.auth.identities["tok"] = &domain.Identity{UserID: "user-1", Email: "user@example.com"}

	rec := env.do(t, http.MethodGet, "/api/orders/missing", "", sessionCookie("tok"))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["message"] != "Order not found" {
		t.Fatalf("unexpected message: %v", body["message"])
	}
}

func TestListOrders_SearchQuery(t *testing.T) {
	env := newTestEnv()
	env.auth.identities["tok"] = &domain.Identity{UserID: "user-1", Email: "user@example.com"}
	env.orders.orders = []domain.Order{
		{ID: "a", Items: []domain.OrderItem{{Title: "The Starry Night"}}},
		{ID: "b", Items: []domain.OrderItem{{Title: "Water Lilies"}}},
	}

	rec := env.do(t, http.MethodGet, "/api/orders?q=starry", "", sessionCookie("tok"))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	orders, ok := body["orders"].([]interface{})
	if !ok || len(orders) != 1 {
		t.Fatalf("expected 1 matching order, got %v", body["orders"])
	}
}

func TestOrderStats(t *testing.T) {
	env := newTestEnv()
	env.auth.identities["tok"] = &domain.Identity{UserID: "user-1", Email: "user@example.com"}
	env.orders.orders = []domain.Order{
		{ID: "a", Status: domain.StatusCompleted, Total: 10,
			Items:     []domain.OrderItem{{Quantity: 1}},
			CreatedAt: time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)},
	}

	rec := env.do(t, http.MethodGet, "/api/orders/stats", "", sessionCookie("tok"))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	stats, ok := body["stats"].(map[string]interface{})
	if !ok || stats["total"] != float64(1) || stats["totalSpent"] != float64(10) {
		t.Fatalf("unexpected stats: %v", body["stats"])
	}
	byMonth, ok := body["byMonth"].(map[string]interface{})
	if !ok {
		t.Fatalf("unexpected byMonth: %v", body["byMonth"])
	}
	if _, ok := byMonth["January 2026"]; !ok {
		t.Fatalf("expected a January 2026 group, got %v", byMonth)
	}
}

func TestSignIn_RedirectsToProvider(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodGet, "/api/auth/sign-in/google", "")
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	location := rec.Header().Get("Location")
	if !strings.HasPrefix(location, "https://provider.example.com/authorize?state=") {
		t.Fatalf("unexpected redirect %q", location)
	}

	var state string
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == stateCookieName {
			state = cookie.Value
		}
	}
	if state == "" || !strings.HasSuffix(location, state) {
		t.Fatalf("state cookie %q does not match redirect %q", state, location)
	}
}

func TestSignIn_UnknownProvider(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodGet, "/api/auth/sign-in/twitter", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestCallback_StateMismatch(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodGet, "/api/auth/callback/google?state=forged&code=abc", "",
		&http.Cookie{Name: stateCookieName, Value: "expected"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["message"] != "invalid state" {
		t.Fatalf("unexpected message: %v", body["message"])
	}
}

func TestCallback_ProviderErrorRedirectsToLogin(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodGet, "/api/auth/callback/google?error=access_denied", "")
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if location := rec.Header().Get("Location"); location != "http://localhost:3000/login" {
		t.Fatalf("unexpected redirect %q", location)
	}
}

func TestCallback_MissingCode(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodGet, "/api/auth/callback/google?state=st", "",
		&http.Cookie{Name: stateCookieName, Value: "st"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["message"] != "missing code" {
		t.Fatalf("unexpected message: %v", body["message"])
	}
}

func TestSignOut(t *testing.T) {
	env := newTestEnv()
	env.auth.identities["tok"] = &domain.Identity{UserID: "user-1"}

	rec := env.do(t, http.MethodPost, "/api/auth/sign-out", "", sessionCookie("tok"))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(env.auth.signedOut) != 1 || env.auth.signedOut[0] != "tok" {
		t.Fatalf("expected session to be revoked, got %v", env.auth.signedOut)
	}

	cleared := false
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == sessionCookieName && cookie.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatalf("expected session cookie to be cleared")
	}
}

func TestGetSession(t *testing.T) {
	env := newTestEnv()
	env.auth.identities["tok"] = &domain.Identity{UserID: "user-1", Email: "user@example.com"}

	rec := env.do(t, http.MethodGet, "/api/auth/get-session", "", sessionCookie("tok"))
	body := decodeBody(t, rec)
	user, ok := body["user"].(map[string]interface{})
	if !ok || user["email"] != "user@example.com" {
		t.Fatalf("unexpected user: %v", body["user"])
	}

	rec = env.do(t, http.MethodGet, "/api/auth/get-session", "")
	body = decodeBody(t, rec)
	if body["user"] != nil {
		t.Fatalf("expected null user for guests, got %v", body["user"])
	}
}

func TestGetSession_StoreFailure(t *testing.T) {
	env := newTestEnv()
	env.auth.identityErr = errors.New("session store down")

	rec := env.do(t, http.MethodGet, "/api/auth/get-session", "", sessionCookie("tok"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 when the session store is down, got %d", rec.Code)
	}
}

func TestBearerTokenFallback(t *testing.T) {
	env := newTestEnv()
	env.auth.identities["tok"] = &domain.Identity{UserID: "user-1", Email: "user@example.com"}

	req := httptest.NewRequest(http.MethodGet, "/api/auth/get-session", nil)
	req.Header.Set("Authorization", "Bearer tok")
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	body := decodeBody(t, rec)
	if user, ok := body["user"].(map[string]interface{}); !ok || user["email"] != "user@example.com" {
		t.Fatalf("unexpected user: %v", body["user"])
	}
}
