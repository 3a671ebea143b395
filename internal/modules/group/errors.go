package group

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("group not found")
	ErrCodeTaken  = errors.New("group code already in use")
)
