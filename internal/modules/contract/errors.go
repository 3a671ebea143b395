package contract

import "errors"

var (
	ErrValidation              = errors.New("validation error")
	ErrNotFound                = errors.New("contract not found")
	ErrBerthOccupied           = errors.New("berth already has an active contract")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)
