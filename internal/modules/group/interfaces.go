package group

import (
	"context"

	"marinahub/internal/domain"
)

// GroupRepository defines the persistence operations for marina groups
type GroupRepository interface {
	Create(ctx context.Context, g *domain.MarinaGroup) error
	GetByID(ctx context.Context, id int64) (*domain.MarinaGroup, error)
	GetWithMarinas(ctx context.Context, id int64) (*domain.MarinaGroup, error)
	GetAll(ctx context.Context) ([]domain.MarinaGroup, error)
	Update(ctx context.Context, g *domain.MarinaGroup) error
	Delete(ctx context.Context, id int64) error
}
