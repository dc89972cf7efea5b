package receiver

import "errors"

// Receiver-related errors
var (
	ErrEmptyName = errors.New("receiver name cannot be empty")
	ErrEmptyCity = errors.New("receiver city cannot be empty")
	ErrInvalidID = errors.New("invalid receiver ID")

	ErrNotFound  = errors.New("receiver not found")
	ErrHasClaims = errors.New("receiver still has claims; delete them first")
)
