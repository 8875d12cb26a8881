package domain

// CartLine is one artwork in a cart. At most one line exists per artwork id;
// a line with quantity 0 is never stored (it is removed instead).
type CartLine struct {
	Artwork  Artwork `json:"artwork"`
	Quantity int     `json:"quantity"`
}
