package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists indicates a uniqueness conflict on insert.
	ErrAlreadyExists = errors.New("already exists")
	// ErrUnauthenticated indicates the operation requires a logged-in user.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrEmptyCart indicates checkout was attempted with nothing to purchase.
	ErrEmptyCart = errors.New("cart is empty")
)
