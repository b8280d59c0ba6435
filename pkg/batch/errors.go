package batch

import "errors"

var (
	// ErrDecode is returned when a batch document cannot be read.
	ErrDecode = errors.New("failed to decode batch document")

	// ErrEmptyDocument is returned when the input holds no document at all.
	ErrEmptyDocument = errors.New("empty document")

	// ErrMissingValidator is returned when a case does not name a validator.
	ErrMissingValidator = errors.New("validator name is required")
)
