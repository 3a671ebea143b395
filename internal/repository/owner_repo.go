package repository

import (
	"context"
	"strings"

	"marinahub/internal/domain"

	"gorm.io/gorm"
)

type OwnerFilters struct {
	MarinaID   *int64
	ActiveOnly bool
	Search     string
	Limit      int
	Offset     int
}

type OwnerRepository struct {
	db Conn
}

func NewOwnerRepository(db Conn) *OwnerRepository {
	return &OwnerRepository{db: db}
}

func (r *OwnerRepository) Create(ctx context.Context, o *domain.Owner) error {
	o.Email = strings.ToLower(strings.TrimSpace(o.Email))
	return r.db.DB().WithContext(ctx).Create(o).Error
}

func (r *OwnerRepository) GetByID(ctx context.Context, id int64) (*domain.Owner, error) {
	var o domain.Owner
	if err := r.db.DB().WithContext(ctx).First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OwnerRepository) GetWithRelations(ctx context.Context, id int64) (*domain.Owner, error) {
	var o domain.Owner
	err := r.db.DB().WithContext(ctx).
		Preload("Boats").
		Preload("Contracts").
		Preload("Invoices").
		Preload("Payments").
		Preload("WorkOrders").
		Preload("Bookings").
		First(&o, id).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OwnerRepository) GetAll(ctx context.Context, f OwnerFilters) ([]domain.Owner, int64, error) {
	var owners []domain.Owner
	var total int64

	q := r.db.DB().WithContext(ctx).Model(&domain.Owner{})
	if f.MarinaID != nil {
		q = q.Where("marina_id = ?", *f.MarinaID)
	}
	if f.ActiveOnly {
		q = q.Where("is_active = true")
	}
	if f.Search != "" {
		like := "%" + strings.ToLower(strings.TrimSpace(f.Search)) + "%"
		q = q.Where("LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(email) LIKE ?", like, like, like)
	}

	q.Count(&total)

	if f.Limit > 0 {
		q = q.Limit(f.Limit).Offset(f.Offset)
	}
	err := q.Order("id ASC").Find(&owners).Error
	return owners, total, err
}

func (r *OwnerRepository) Update(ctx context.Context, o *domain.Owner) error {
	return r.db.DB().WithContext(ctx).Save(o).Error
}

func (r *OwnerRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.DB().WithContext(ctx).Delete(&domain.Owner{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
