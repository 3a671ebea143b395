package owner

import (
	"context"

	"marinahub/internal/domain"
	"marinahub/internal/repository"
)

// OwnerRepository defines the persistence operations for boat owners
type OwnerRepository interface {
	Create(ctx context.Context, o *domain.Owner) error
	GetByID(ctx context.Context, id int64) (*domain.Owner, error)
	GetWithRelations(ctx context.Context, id int64) (*domain.Owner, error)
	GetAll(ctx context.Context, f repository.OwnerFilters) ([]domain.Owner, int64, error)
	Update(ctx context.Context, o *domain.Owner) error
	Delete(ctx context.Context, id int64) error
}

// BoatRepository defines the persistence operations for boats
type BoatRepository interface {
	Create(ctx context.Context, b *domain.Boat) error
	GetByID(ctx context.Context, id int64) (*domain.Boat, error)
	GetByOwner(ctx context.Context, ownerID int64) ([]domain.Boat, error)
	AssignBerth(ctx context.Context, boatID int64, berthID *int64) error
	Delete(ctx context.Context, id int64) error
}
