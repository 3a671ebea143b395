package repository

import (
	"context"
	"time"

	"marinahub/internal/domain"

	"gorm.io/gorm"
)

type WorkOrderFilters struct {
	MarinaID *int64
	OwnerID  *int64
	Status   domain.WorkOrderStatus
	Limit    int
	Offset   int
}

type WorkOrderRepository struct {
	db Conn
}

func NewWorkOrderRepository(db Conn) *WorkOrderRepository {
	return &WorkOrderRepository{db: db}
}

func (r *WorkOrderRepository) Create(ctx context.Context, w *domain.WorkOrder) error {
	return r.db.DB().WithContext(ctx).Create(w).Error
}

func (r *WorkOrderRepository) GetByID(ctx context.Context, id int64) (*domain.WorkOrder, error) {
	var w domain.WorkOrder
	if err := r.db.DB().WithContext(ctx).First(&w, id).Error; err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *WorkOrderRepository) GetAll(ctx context.Context, f WorkOrderFilters) ([]domain.WorkOrder, int64, error) {
	var orders []domain.WorkOrder
	var total int64

	q := r.db.DB().WithContext(ctx).Model(&domain.WorkOrder{})
	if f.MarinaID != nil {
		q = q.Where("marina_id = ?", *f.MarinaID)
	}
	if f.OwnerID != nil {
		q = q.Where("owner_id = ?", *f.OwnerID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}

	q.Count(&total)

	if f.Limit > 0 {
		q = q.Limit(f.Limit).Offset(f.Offset)
	}
	err := q.Order("requested_date DESC").Find(&orders).Error
	return orders, total, err
}

func (r *WorkOrderRepository) Update(ctx context.Context, w *domain.WorkOrder) error {
	return r.db.DB().WithContext(ctx).Save(w).Error
}

// UpdateStatus moves the order; completion stamps completed_date.
func (r *WorkOrderRepository) UpdateStatus(ctx context.Context, id int64, status domain.WorkOrderStatus, at time.Time) error {
	updates := map[string]any{"status": status}
	if status == domain.WorkOrderCompleted {
		updates["completed_date"] = at
	}

	tx := r.db.DB().WithContext(ctx).
		Model(&domain.WorkOrder{}).
		Where("id = ?", id).
		Updates(updates)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *WorkOrderRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.DB().WithContext(ctx).Delete(&domain.WorkOrder{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
