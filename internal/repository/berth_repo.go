package repository

import (
	"context"

	"marinahub/internal/domain"

	"gorm.io/gorm"
)

type BerthFilters struct {
	MarinaID      *int64
	AvailableOnly bool
	Limit         int
	Offset        int
}

type BerthRepository struct {
	db Conn
}

func NewBerthRepository(db Conn) *BerthRepository {
	return &BerthRepository{db: db}
}

func (r *BerthRepository) Create(ctx context.Context, b *domain.Berth) error {
	return r.db.DB().WithContext(ctx).Create(b).Error
}

func (r *BerthRepository) GetByID(ctx context.Context, id int64) (*domain.Berth, error) {
	var b domain.Berth
	if err := r.db.DB().WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BerthRepository) GetWithRelations(ctx context.Context, id int64) (*domain.Berth, error) {
	var b domain.Berth
	err := r.db.DB().WithContext(ctx).
		Preload("Contracts").
		Preload("Bookings").
		Preload("WorkOrders").
		First(&b, id).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BerthRepository) GetAll(ctx context.Context, f BerthFilters) ([]domain.Berth, int64, error) {
	var berths []domain.Berth
	var total int64

	q := r.db.DB().WithContext(ctx).Model(&domain.Berth{})
	if f.MarinaID != nil {
		q = q.Where("marina_id = ?", *f.MarinaID)
	}
	if f.AvailableOnly {
		q = q.Where("is_available = true AND is_active = true")
	}

	q.Count(&total)

	if f.Limit > 0 {
		q = q.Limit(f.Limit).Offset(f.Offset)
	}
	err := q.Order("marina_id ASC, berth_number ASC").Find(&berths).Error
	return berths, total, err
}

func (r *BerthRepository) Update(ctx context.Context, b *domain.Berth) error {
	return r.db.DB().WithContext(ctx).Save(b).Error
}

func (r *BerthRepository) SetAvailability(ctx context.Context, id int64, available bool) error {
	tx := r.db.DB().WithContext(ctx).
		Model(&domain.Berth{}).
		Where("id = ?", id).
		Update("is_available", available)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *BerthRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.DB().WithContext(ctx).Delete(&domain.Berth{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
