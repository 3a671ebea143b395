package billing

import "time"

type CreateInvoiceRequest struct {
	MarinaID   int64      `json:"marina_id" binding:"required"`
	OwnerID    int64      `json:"owner_id" binding:"required"`
	ContractID *int64     `json:"contract_id"`
	Number     string     `json:"number" binding:"required"`
	Total      float64    `json:"total" binding:"gte=0"`
	DueDate    *time.Time `json:"due_date"`
}

type RecordPaymentRequest struct {
	MarinaID  int64   `json:"marina_id" binding:"required"`
	OwnerID   int64   `json:"owner_id" binding:"required"`
	InvoiceID *int64  `json:"invoice_id"`
	Amount    float64 `json:"amount" binding:"required,gt=0"`
	Gateway   string  `json:"gateway"`
}

type UpdateInvoiceStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending overdue paid cancelled"`
}

type UpdatePaymentStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending completed failed refunded"`
}
