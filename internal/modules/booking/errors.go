package booking

import "errors"

var (
	ErrValidation              = errors.New("validation error")
	ErrNotFound                = errors.New("booking not found")
	ErrNotAvailable            = errors.New("berth not available")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)
