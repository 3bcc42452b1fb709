package models

import (
	"errors"
	"fmt"
)

// Common errors used throughout the application
var (
	ErrArtworkNotFound  = errors.New("artwork not found")
	ErrArtistNotFound   = errors.New("artist not found")
	ErrEventNotFound    = errors.New("event not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrPageNotFound     = errors.New("page content not found")
	ErrCartEmpty        = errors.New("cart is empty")
	ErrInvalidInput     = errors.New("invalid input")
	ErrDuplicateEntry   = errors.New("duplicate entry")
)

// Discount evaluation outcomes. These are expected rejections of user input,
// returned as values rather than treated as system failures.
var (
	ErrDiscountInvalid   = errors.New("discount code is not valid")
	ErrDiscountExpired   = errors.New("discount code has expired")
	ErrDiscountExhausted = errors.New("discount code has reached its usage limit")
)

// BelowMinimumError rejects a discount code whose minimum purchase exceeds the
// cart subtotal. Required carries the minimum in cents for the user message.
type BelowMinimumError struct {
	Required int
}

func (e *BelowMinimumError) Error() string {
	return fmt.Sprintf("a minimum purchase of %s is required for this code", FormatCents(e.Required))
}

// IsDiscountError reports whether err is a discount rejection rather than a
// store or validation failure.
func IsDiscountError(err error) bool {
	var belowMin *BelowMinimumError
	return errors.Is(err, ErrDiscountInvalid) ||
		errors.Is(err, ErrDiscountExpired) ||
		errors.Is(err, ErrDiscountExhausted) ||
		errors.As(err, &belowMin)
}

// StoreError wraps a persistence failure with the operation that produced it.
// The cart core never retries these; callers decide how to surface them.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store error in %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// ValidationError reports malformed input on direct API misuse.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}
