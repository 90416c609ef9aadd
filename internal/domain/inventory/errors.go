package inventory

import "errors"

// Domain validation errors for ingredients.
var (
	ErrEmptyName     = errors.New("ingredient name must not be empty")
	ErrEmptyQuantity = errors.New("ingredient quantity must not be empty")
	ErrEmptyCategory = errors.New("ingredient category must not be empty")
)
