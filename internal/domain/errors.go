package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists indicates a uniqueness conflict.
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalidProduct is returned for products with a blank name or negative price.
	ErrInvalidProduct = errors.New("invalid product")
	// ErrInvalidQuantity is returned for cart quantities outside 1..MaxQuantity.
	ErrInvalidQuantity = errors.New("quantity must be between 1 and 9999")
	// ErrEmptyCart is returned when checking out with nothing in the cart.
	ErrEmptyCart = errors.New("cart is empty")
)
