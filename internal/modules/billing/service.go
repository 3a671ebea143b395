package billing

import (
	"context"
	"errors"
	"strings"
	"time"

	"marinahub/internal/domain"
	"marinahub/internal/metrics"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var invoiceTransitions = map[domain.InvoiceStatus][]domain.InvoiceStatus{
	domain.InvoicePending: {domain.InvoiceOverdue, domain.InvoicePaid, domain.InvoiceCancelled},
	domain.InvoiceOverdue: {domain.InvoicePaid, domain.InvoiceCancelled},
}

var paymentTransitions = map[domain.PaymentStatus][]domain.PaymentStatus{
	domain.PaymentPending:   {domain.PaymentCompleted, domain.PaymentFailed},
	domain.PaymentCompleted: {domain.PaymentRefunded},
}

func allowed[S comparable](table map[S][]S, from, to S) bool {
	for _, s := range table[from] {
		if s == to {
			return true
		}
	}
	return false
}

type Service struct {
	invoices InvoiceRepository
	payments PaymentRepository
	now      func() time.Time
}

func NewService(invoices InvoiceRepository, payments PaymentRepository) *Service {
	return &Service{
		invoices: invoices,
		payments: payments,
		now:      time.Now,
	}
}

func (s *Service) CreateInvoice(ctx context.Context, req CreateInvoiceRequest) (*domain.Invoice, error) {
	if strings.TrimSpace(req.Number) == "" || req.Total < 0 {
		return nil, ErrValidation
	}

	inv := &domain.Invoice{
		MarinaID:   req.MarinaID,
		OwnerID:    req.OwnerID,
		ContractID: req.ContractID,
		Number:     strings.TrimSpace(req.Number),
		Status:     domain.InvoicePending,
		Total:      metrics.RoundCents(req.Total),
		DueDate:    req.DueDate,
	}

	if err := s.invoices.Create(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

func (s *Service) GetInvoice(ctx context.Context, id int64) (*domain.Invoice, error) {
	inv, err := s.invoices.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, err
	}
	return inv, nil
}

func (s *Service) ListInvoicesByOwner(ctx context.Context, ownerID int64) ([]domain.Invoice, error) {
	return s.invoices.GetByOwner(ctx, ownerID)
}

func (s *Service) ListInvoicesByMarina(ctx context.Context, marinaID int64, status domain.InvoiceStatus) ([]domain.Invoice, error) {
	return s.invoices.GetByMarina(ctx, marinaID, status)
}

func (s *Service) UpdateInvoiceStatus(ctx context.Context, id int64, status domain.InvoiceStatus) (*domain.Invoice, error) {
	inv, err := s.GetInvoice(ctx, id)
	if err != nil {
		return nil, err
	}

	if !allowed(invoiceTransitions, inv.Status, status) {
		return nil, ErrInvalidStatusTransition
	}

	if err := s.invoices.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	inv.Status = status
	return inv, nil
}

// RecordPayment stores a new pending payment with a generated reference.
func (s *Service) RecordPayment(ctx context.Context, req RecordPaymentRequest) (*domain.Payment, error) {
	if req.Amount <= 0 {
		return nil, ErrValidation
	}

	if req.InvoiceID != nil {
		if _, err := s.GetInvoice(ctx, *req.InvoiceID); err != nil {
			return nil, err
		}
	}

	p := &domain.Payment{
		MarinaID:  req.MarinaID,
		OwnerID:   req.OwnerID,
		InvoiceID: req.InvoiceID,
		Reference: uuid.NewString(),
		Amount:    metrics.RoundCents(req.Amount),
		Status:    domain.PaymentPending,
		Gateway:   req.Gateway,
	}

	if err := s.payments.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) GetPayment(ctx context.Context, id int64) (*domain.Payment, error) {
	p, err := s.payments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *Service) ListPaymentsByOwner(ctx context.Context, ownerID int64) ([]domain.Payment, error) {
	return s.payments.GetByOwner(ctx, ownerID)
}

// UpdatePaymentStatus moves a payment; completing one settles its invoice
// once completed payments cover the invoice total.
func (s *Service) UpdatePaymentStatus(ctx context.Context, id int64, status domain.PaymentStatus) (*domain.Payment, error) {
	p, err := s.GetPayment(ctx, id)
	if err != nil {
		return nil, err
	}

	if !allowed(paymentTransitions, p.Status, status) {
		return nil, ErrInvalidStatusTransition
	}

	if err := s.payments.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	p.Status = status

	if status == domain.PaymentCompleted && p.InvoiceID != nil {
		if err := s.settleInvoice(ctx, *p.InvoiceID); err != nil {
			return nil, err
		}
	}

	return p, nil
}

func (s *Service) settleInvoice(ctx context.Context, invoiceID int64) error {
	inv, err := s.invoices.GetByID(ctx, invoiceID)
	if err != nil {
		return err
	}
	if inv.Status != domain.InvoicePending && inv.Status != domain.InvoiceOverdue {
		return nil
	}

	paid, err := s.payments.SumCompletedForInvoice(ctx, invoiceID)
	if err != nil {
		return err
	}
	if paid+0.005 < inv.Total {
		return nil
	}

	return s.invoices.UpdateStatus(ctx, invoiceID, domain.InvoicePaid)
}
