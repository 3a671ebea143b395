package workorder

import (
	"context"
	"time"

	"marinahub/internal/domain"
	"marinahub/internal/repository"
)

// WorkOrderRepository defines the persistence operations for work orders
type WorkOrderRepository interface {
	Create(ctx context.Context, w *domain.WorkOrder) error
	GetByID(ctx context.Context, id int64) (*domain.WorkOrder, error)
	GetAll(ctx context.Context, f repository.WorkOrderFilters) ([]domain.WorkOrder, int64, error)
	Update(ctx context.Context, w *domain.WorkOrder) error
	UpdateStatus(ctx context.Context, id int64, status domain.WorkOrderStatus, at time.Time) error
	Delete(ctx context.Context, id int64) error
}
