package billing

import (
	"context"
	"testing"

	"marinahub/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// Mock repositories
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) Create(ctx context.Context, inv *domain.Invoice) error {
	args := m.Called(ctx, inv)
	if inv != nil {
		inv.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockInvoiceRepository) GetByID(ctx context.Context, id int64) (*domain.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) GetByOwner(ctx context.Context, ownerID int64) ([]domain.Invoice, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) GetByMarina(ctx context.Context, marinaID int64, status domain.InvoiceStatus) ([]domain.Invoice, error) {
	args := m.Called(ctx, marinaID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) UpdateStatus(ctx context.Context, id int64, status domain.InvoiceStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	args := m.Called(ctx, p)
	if p != nil {
		p.ID = 555
	}
	return args.Error(0)
}

func (m *MockPaymentRepository) GetByID(ctx context.Context, id int64) (*domain.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) GetByOwner(ctx context.Context, ownerID int64) ([]domain.Payment, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) UpdateStatus(ctx context.Context, id int64, status domain.PaymentStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockPaymentRepository) SumCompletedForInvoice(ctx context.Context, invoiceID int64) (float64, error) {
	args := m.Called(ctx, invoiceID)
	return args.Get(0).(float64), args.Error(1)
}

func TestService_CreateInvoice_RoundsTotal(t *testing.T) {
	invoices := new(MockInvoiceRepository)
	svc := NewService(invoices, new(MockPaymentRepository))

	invoices.On("Create", mock.Anything, mock.AnythingOfType("*domain.Invoice")).Return(nil)

	inv, err := svc.CreateInvoice(context.Background(), CreateInvoiceRequest{
		MarinaID: 1,
		OwnerID:  2,
		Number:   "INV-2026-0001",
		Total:    149.999,
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.InvoicePending, inv.Status)
	assert.InDelta(t, 150.0, inv.Total, 0.0001)
}

func TestService_RecordPayment_GeneratesReference(t *testing.T) {
	payments := new(MockPaymentRepository)
	svc := NewService(new(MockInvoiceRepository), payments)

	payments.On("Create", mock.Anything, mock.AnythingOfType("*domain.Payment")).Return(nil)

	p, err := svc.RecordPayment(context.Background(), RecordPaymentRequest{
		MarinaID: 1,
		OwnerID:  2,
		Amount:   75.50,
		Gateway:  "stripe",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.PaymentPending, p.Status)
	_, parseErr := uuid.Parse(p.Reference)
	assert.NoError(t, parseErr)
}

func TestService_RecordPayment_RejectsZeroAmount(t *testing.T) {
	svc := NewService(new(MockInvoiceRepository), new(MockPaymentRepository))

	_, err := svc.RecordPayment(context.Background(), RecordPaymentRequest{
		MarinaID: 1, OwnerID: 2, Amount: 0,
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_UpdatePaymentStatus_SettlesCoveredInvoice(t *testing.T) {
	invoices := new(MockInvoiceRepository)
	payments := new(MockPaymentRepository)
	svc := NewService(invoices, payments)

	invoiceID := int64(10)
	payments.On("GetByID", mock.Anything, int64(5)).Return(&domain.Payment{
		ID: 5, InvoiceID: &invoiceID, Amount: 150, Status: domain.PaymentPending,
	}, nil)
	payments.On("UpdateStatus", mock.Anything, int64(5), domain.PaymentCompleted).Return(nil)
	invoices.On("GetByID", mock.Anything, invoiceID).Return(&domain.Invoice{
		ID: 10, Status: domain.InvoicePending, Total: 150,
	}, nil)
	payments.On("SumCompletedForInvoice", mock.Anything, invoiceID).Return(150.0, nil)
	invoices.On("UpdateStatus", mock.Anything, invoiceID, domain.InvoicePaid).Return(nil)

	p, err := svc.UpdatePaymentStatus(context.Background(), 5, domain.PaymentCompleted)

	assert.NoError(t, err)
	assert.Equal(t, domain.PaymentCompleted, p.Status)
	invoices.AssertExpectations(t)
}

func TestService_UpdatePaymentStatus_PartialLeavesInvoiceOpen(t *testing.T) {
	invoices := new(MockInvoiceRepository)
	payments := new(MockPaymentRepository)
	svc := NewService(invoices, payments)

	invoiceID := int64(10)
	payments.On("GetByID", mock.Anything, int64(5)).Return(&domain.Payment{
		ID: 5, InvoiceID: &invoiceID, Amount: 50, Status: domain.PaymentPending,
	}, nil)
	payments.On("UpdateStatus", mock.Anything, int64(5), domain.PaymentCompleted).Return(nil)
	invoices.On("GetByID", mock.Anything, invoiceID).Return(&domain.Invoice{
		ID: 10, Status: domain.InvoicePending, Total: 150,
	}, nil)
	payments.On("SumCompletedForInvoice", mock.Anything, invoiceID).Return(50.0, nil)

	_, err := svc.UpdatePaymentStatus(context.Background(), 5, domain.PaymentCompleted)

	assert.NoError(t, err)
	invoices.AssertNotCalled(t, "UpdateStatus", mock.Anything, invoiceID, domain.InvoicePaid)
}

func TestService_UpdateInvoiceStatus_RejectsPaidToPending(t *testing.T) {
	invoices := new(MockInvoiceRepository)
	svc := NewService(invoices, new(MockPaymentRepository))

	invoices.On("GetByID", mock.Anything, int64(10)).Return(&domain.Invoice{
		ID: 10, Status: domain.InvoicePaid,
	}, nil)

	_, err := svc.UpdateInvoiceStatus(context.Background(), 10, domain.InvoicePending)

	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
}

func TestService_GetInvoice_NotFound(t *testing.T) {
	invoices := new(MockInvoiceRepository)
	svc := NewService(invoices, new(MockPaymentRepository))

	invoices.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetInvoice(context.Background(), 404)

	assert.ErrorIs(t, err, ErrInvoiceNotFound)
}
