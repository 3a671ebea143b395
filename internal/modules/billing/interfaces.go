package billing

import (
	"context"

	"marinahub/internal/domain"
)

// InvoiceRepository defines the persistence operations for invoices
type InvoiceRepository interface {
	Create(ctx context.Context, inv *domain.Invoice) error
	GetByID(ctx context.Context, id int64) (*domain.Invoice, error)
	GetByOwner(ctx context.Context, ownerID int64) ([]domain.Invoice, error)
	GetByMarina(ctx context.Context, marinaID int64, status domain.InvoiceStatus) ([]domain.Invoice, error)
	UpdateStatus(ctx context.Context, id int64, status domain.InvoiceStatus) error
}

// PaymentRepository defines the persistence operations for payments
type PaymentRepository interface {
	Create(ctx context.Context, p *domain.Payment) error
	GetByID(ctx context.Context, id int64) (*domain.Payment, error)
	GetByOwner(ctx context.Context, ownerID int64) ([]domain.Payment, error)
	UpdateStatus(ctx context.Context, id int64, status domain.PaymentStatus) error
	SumCompletedForInvoice(ctx context.Context, invoiceID int64) (float64, error)
}
