package repository

import (
	"context"

	"marinahub/internal/domain"

	"gorm.io/gorm"
)

type InvoiceRepository struct {
	db Conn
}

func NewInvoiceRepository(db Conn) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

func (r *InvoiceRepository) Create(ctx context.Context, inv *domain.Invoice) error {
	return r.db.DB().WithContext(ctx).Create(inv).Error
}

func (r *InvoiceRepository) GetByID(ctx context.Context, id int64) (*domain.Invoice, error) {
	var inv domain.Invoice
	if err := r.db.DB().WithContext(ctx).Preload("Payments").First(&inv, id).Error; err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *InvoiceRepository) GetByOwner(ctx context.Context, ownerID int64) ([]domain.Invoice, error) {
	var invoices []domain.Invoice
	err := r.db.DB().WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("id ASC").
		Find(&invoices).Error
	return invoices, err
}

func (r *InvoiceRepository) GetByMarina(ctx context.Context, marinaID int64, status domain.InvoiceStatus) ([]domain.Invoice, error) {
	var invoices []domain.Invoice
	q := r.db.DB().WithContext(ctx).Where("marina_id = ?", marinaID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Order("id ASC").Find(&invoices).Error
	return invoices, err
}

func (r *InvoiceRepository) UpdateStatus(ctx context.Context, id int64, status domain.InvoiceStatus) error {
	tx := r.db.DB().WithContext(ctx).
		Model(&domain.Invoice{}).
		Where("id = ?", id).
		Update("status", status)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

type PaymentRepository struct {
	db Conn
}

func NewPaymentRepository(db Conn) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	return r.db.DB().WithContext(ctx).Create(p).Error
}

func (r *PaymentRepository) GetByID(ctx context.Context, id int64) (*domain.Payment, error) {
	var p domain.Payment
	if err := r.db.DB().WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PaymentRepository) GetByOwner(ctx context.Context, ownerID int64) ([]domain.Payment, error) {
	var payments []domain.Payment
	err := r.db.DB().WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&payments).Error
	return payments, err
}

func (r *PaymentRepository) UpdateStatus(ctx context.Context, id int64, status domain.PaymentStatus) error {
	tx := r.db.DB().WithContext(ctx).
		Model(&domain.Payment{}).
		Where("id = ?", id).
		Update("status", status)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SumCompletedForInvoice totals completed payments applied to an invoice.
func (r *PaymentRepository) SumCompletedForInvoice(ctx context.Context, invoiceID int64) (float64, error) {
	var sum *float64
	err := r.db.DB().WithContext(ctx).
		Model(&domain.Payment{}).
		Select("SUM(amount)").
		Where("invoice_id = ? AND status = ?", invoiceID, domain.PaymentCompleted).
		Scan(&sum).Error
	if err != nil {
		return 0, err
	}
	if sum == nil {
		return 0, nil
	}
	return *sum, nil
}
