package marina

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("marina not found")
	ErrCodeTaken  = errors.New("marina code already in use")
)
