package provider

import "errors"

// Provider-related errors
var (
	// Validation errors
	ErrEmptyName = errors.New("provider name cannot be empty")
	ErrEmptyType = errors.New("provider type cannot be empty")
	ErrEmptyCity = errors.New("provider city cannot be empty")
	ErrInvalidID = errors.New("invalid provider ID")

	// Business logic errors
	ErrNotFound    = errors.New("provider not found")
	ErrHasListings = errors.New("provider still has food listings; delete or reassign them first")
)
