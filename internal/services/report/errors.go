package report

import "errors"

// Report-related errors
var (
	ErrUnknownReport     = errors.New("unknown report name")
	ErrEmptyCity         = errors.New("city cannot be empty")
	ErrNegativeDays      = errors.New("day window cannot be negative")
	ErrNegativeThreshold = errors.New("stock threshold cannot be negative")
)
