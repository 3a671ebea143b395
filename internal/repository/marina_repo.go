package repository

import (
	"context"
	"time"

	"marinahub/internal/domain"

	"gorm.io/gorm"
)

type MarinaFilters struct {
	GroupID    *int64
	ActiveOnly bool
	Limit      int
	Offset     int
}

type MarinaRepository struct {
	db Conn
}

func NewMarinaRepository(db Conn) *MarinaRepository {
	return &MarinaRepository{db: db}
}

func (r *MarinaRepository) Create(ctx context.Context, m *domain.Marina) error {
	return r.db.DB().WithContext(ctx).Create(m).Error
}

func (r *MarinaRepository) GetByID(ctx context.Context, id int64) (*domain.Marina, error) {
	var m domain.Marina
	if err := r.db.DB().WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// GetWithRelations loads a marina with every collection the summary builder
// folds over.
func (r *MarinaRepository) GetWithRelations(ctx context.Context, id int64) (*domain.Marina, error) {
	var m domain.Marina
	err := r.db.DB().WithContext(ctx).
		Preload("Berths").
		Preload("Boats").
		Preload("Owners").
		Preload("Users").
		Preload("Contracts").
		Preload("Bookings").
		Preload("WorkOrders").
		Preload("Invoices").
		Preload("Payments").
		First(&m, id).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MarinaRepository) GetAll(ctx context.Context, f MarinaFilters) ([]domain.Marina, int64, error) {
	var marinas []domain.Marina
	var total int64

	q := r.db.DB().WithContext(ctx).Model(&domain.Marina{})
	if f.GroupID != nil {
		q = q.Where("group_id = ?", *f.GroupID)
	}
	if f.ActiveOnly {
		q = q.Where("is_active = true")
	}

	q.Count(&total)

	if f.Limit > 0 {
		q = q.Limit(f.Limit).Offset(f.Offset)
	}
	err := q.Order("id ASC").Find(&marinas).Error
	return marinas, total, err
}

func (r *MarinaRepository) Update(ctx context.Context, m *domain.Marina) error {
	return r.db.DB().WithContext(ctx).Save(m).Error
}

func (r *MarinaRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.DB().WithContext(ctx).Delete(&domain.Marina{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdateSyncStatus records the outcome of one connectivity probe.
func (r *MarinaRepository) UpdateSyncStatus(ctx context.Context, id int64, online bool, at time.Time) error {
	return r.db.DB().WithContext(ctx).
		Model(&domain.Marina{}).
		Where("id = ?", id).
		Updates(map[string]any{"is_online": online, "last_sync_at": at}).Error
}
