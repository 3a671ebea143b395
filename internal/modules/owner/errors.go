package owner

import "errors"

var (
	ErrValidation   = errors.New("validation error")
	ErrNotFound     = errors.New("owner not found")
	ErrEmailTaken   = errors.New("owner email already registered")
	ErrBoatNotFound = errors.New("boat not found")
)
