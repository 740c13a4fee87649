package domain

import "errors"

// ErrInvalidArgument is returned when a ride cannot be built from the given input.
// Detailed causes wrap it, so compare with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")
