package claim

import "errors"

// Claim-related errors
var (
	// Validation errors
	ErrInvalidStatus    = errors.New("status must be pending, completed or cancelled")
	ErrInvalidTimestamp = errors.New("timestamp must be YYYY-MM-DD HH:MM:SS")
	ErrInvalidID        = errors.New("invalid claim ID")

	// Business logic errors
	ErrNotFound         = errors.New("claim not found")
	ErrListingNotFound  = errors.New("food listing does not exist")
	ErrReceiverNotFound = errors.New("receiver does not exist")
)
