package domain

import "time"

type InvoiceStatus string

const (
	InvoicePending   InvoiceStatus = "pending"
	InvoiceOverdue   InvoiceStatus = "overdue"
	InvoicePaid      InvoiceStatus = "paid"
	InvoiceCancelled InvoiceStatus = "cancelled"
)

type Invoice struct {
	ID         int64         `json:"id"`
	MarinaID   int64         `json:"marina_id" validate:"required"`
	OwnerID    int64         `json:"owner_id" validate:"required"`
	ContractID *int64        `json:"contract_id,omitempty"`
	Number     string        `json:"number" gorm:"uniqueIndex"`
	Status     InvoiceStatus `json:"status"`
	Total      float64       `json:"total" validate:"gte=0"`
	DueDate    *time.Time    `json:"due_date,omitempty"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`

	Owner    *Owner    `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	Payments []Payment `json:"payments,omitempty" gorm:"foreignKey:InvoiceID"`
}
