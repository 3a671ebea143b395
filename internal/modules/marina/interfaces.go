package marina

import (
	"context"

	"marinahub/internal/domain"
	"marinahub/internal/repository"
)

// MarinaRepository defines the persistence operations for marinas
type MarinaRepository interface {
	Create(ctx context.Context, m *domain.Marina) error
	GetByID(ctx context.Context, id int64) (*domain.Marina, error)
	GetWithRelations(ctx context.Context, id int64) (*domain.Marina, error)
	GetAll(ctx context.Context, f repository.MarinaFilters) ([]domain.Marina, int64, error)
	Update(ctx context.Context, m *domain.Marina) error
	Delete(ctx context.Context, id int64) error
}
