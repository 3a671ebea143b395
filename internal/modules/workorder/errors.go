package workorder

import "errors"

var (
	ErrValidation              = errors.New("validation error")
	ErrNotFound                = errors.New("work order not found")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)
