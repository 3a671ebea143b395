package repository

import (
	"context"

	"marinahub/internal/domain"

	"gorm.io/gorm"
)

type GroupRepository struct {
	db Conn
}

func NewGroupRepository(db Conn) *GroupRepository {
	return &GroupRepository{db: db}
}

func (r *GroupRepository) Create(ctx context.Context, g *domain.MarinaGroup) error {
	return r.db.DB().WithContext(ctx).Create(g).Error
}

func (r *GroupRepository) GetByID(ctx context.Context, id int64) (*domain.MarinaGroup, error) {
	var g domain.MarinaGroup
	if err := r.db.DB().WithContext(ctx).First(&g, id).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

// GetWithMarinas loads the group and each member marina's collections for
// the fan-out summary.
func (r *GroupRepository) GetWithMarinas(ctx context.Context, id int64) (*domain.MarinaGroup, error) {
	var g domain.MarinaGroup
	err := r.db.DB().WithContext(ctx).
		Preload("Marinas").
		Preload("Marinas.Berths").
		Preload("Marinas.Boats").
		Preload("Marinas.Owners").
		Preload("Marinas.Users").
		Preload("Marinas.Contracts").
		Preload("Marinas.Bookings").
		Preload("Marinas.WorkOrders").
		Preload("Marinas.Invoices").
		Preload("Marinas.Payments").
		First(&g, id).Error
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *GroupRepository) GetAll(ctx context.Context) ([]domain.MarinaGroup, error) {
	var groups []domain.MarinaGroup
	err := r.db.DB().WithContext(ctx).Order("id ASC").Find(&groups).Error
	return groups, err
}

func (r *GroupRepository) Update(ctx context.Context, g *domain.MarinaGroup) error {
	return r.db.DB().WithContext(ctx).Save(g).Error
}

func (r *GroupRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.DB().WithContext(ctx).Delete(&domain.MarinaGroup{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
