package services

import "errors"

// Sentinel errors handlers translate into coded HTTP responses.
var (
	ErrNotFound        = errors.New("not found")
	ErrBadCreds        = errors.New("invalid email or password")
	ErrEmailTaken      = errors.New("email already exists")
	ErrAlreadyReviewed = errors.New("product already reviewed")
	ErrCartNotFound    = errors.New("cart not found")
	ErrEmptyCart       = errors.New("cart has no items")
	ErrInvalidToken    = errors.New("invalid token")
)
