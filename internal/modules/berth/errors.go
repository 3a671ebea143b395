package berth

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("berth not found")
)
