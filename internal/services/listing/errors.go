package listing

import "errors"

// Listing-related errors
var (
	// Validation errors
	ErrEmptyFoodName     = errors.New("food name cannot be empty")
	ErrEmptyLocation     = errors.New("listing location cannot be empty")
	ErrNegativeQuantity  = errors.New("quantity cannot be negative")
	ErrInvalidExpiryDate = errors.New("expiry date must be YYYY-MM-DD")
	ErrInvalidID         = errors.New("invalid listing ID")

	// Business logic errors
	ErrNotFound         = errors.New("food listing not found")
	ErrProviderNotFound = errors.New("provider does not exist")
	ErrHasClaims        = errors.New("listing still has claims; delete them first")
)
