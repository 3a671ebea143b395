package billing

import "errors"

var (
	ErrValidation              = errors.New("validation error")
	ErrInvoiceNotFound         = errors.New("invoice not found")
	ErrPaymentNotFound         = errors.New("payment not found")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)
