package contract

import (
	"context"

	"marinahub/internal/domain"
)

// ContractRepository defines the persistence operations for mooring contracts
type ContractRepository interface {
	Create(ctx context.Context, c *domain.Contract) error
	GetByID(ctx context.Context, id int64) (*domain.Contract, error)
	GetWithInvoices(ctx context.Context, id int64) (*domain.Contract, error)
	GetByMarina(ctx context.Context, marinaID int64) ([]domain.Contract, error)
	GetByOwner(ctx context.Context, ownerID int64) ([]domain.Contract, error)
	HasActiveContractForBerth(ctx context.Context, berthID int64) (bool, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ContractStatus) error
	Delete(ctx context.Context, id int64) error
}

// BerthRepository gives the contract service access to berth availability
type BerthRepository interface {
	SetAvailability(ctx context.Context, id int64, available bool) error
}
