package domain

import "time"

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

type Payment struct {
	ID        int64         `json:"id"`
	MarinaID  int64         `json:"marina_id" validate:"required"`
	OwnerID   int64         `json:"owner_id" validate:"required"`
	InvoiceID *int64        `json:"invoice_id,omitempty"`
	Reference string        `json:"reference" gorm:"uniqueIndex"`
	Amount    float64       `json:"amount" validate:"gte=0"`
	Status    PaymentStatus `json:"status"`
	Gateway   string        `json:"gateway,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
