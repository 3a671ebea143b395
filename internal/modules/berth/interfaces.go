package berth

import (
	"context"

	"marinahub/internal/domain"
	"marinahub/internal/repository"
)

// BerthRepository defines the persistence operations for berths
type BerthRepository interface {
	Create(ctx context.Context, b *domain.Berth) error
	GetByID(ctx context.Context, id int64) (*domain.Berth, error)
	GetWithRelations(ctx context.Context, id int64) (*domain.Berth, error)
	GetAll(ctx context.Context, f repository.BerthFilters) ([]domain.Berth, int64, error)
	Update(ctx context.Context, b *domain.Berth) error
	SetAvailability(ctx context.Context, id int64, available bool) error
	Delete(ctx context.Context, id int64) error
}
