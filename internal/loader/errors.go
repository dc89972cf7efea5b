package loader

import "errors"

// Load errors. Every failure from this package wraps one of these so callers
// can classify without string matching.
var (
	// ErrSourceMissing indicates a CSV source file does not exist
	ErrSourceMissing = errors.New("source file not found")

	// ErrMalformed indicates the CSV could not be parsed at all
	ErrMalformed = errors.New("malformed CSV source")

	// ErrSchemaMismatch indicates a required column is absent from the header
	ErrSchemaMismatch = errors.New("source schema mismatch")

	// ErrBadRow indicates a data row has an unparseable field
	ErrBadRow = errors.New("invalid row")
)
