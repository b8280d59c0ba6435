package pattern

import "errors"

var (
	// ErrUnknownValidator is returned when a validator name is not registered.
	ErrUnknownValidator = errors.New("unknown validator")

	// ErrInvalidArgument is returned when the input to classify is not a text value.
	ErrInvalidArgument = errors.New("invalid argument: input must be a string")
)
