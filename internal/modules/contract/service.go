package contract

import (
	"context"
	"errors"
	"time"

	"marinahub/internal/domain"
	"marinahub/internal/metrics"

	"gorm.io/gorm"
)

// Allowed status moves. Expired and terminated are terminal.
var transitions = map[domain.ContractStatus][]domain.ContractStatus{
	domain.ContractPending: {domain.ContractActive, domain.ContractTerminated},
	domain.ContractActive:  {domain.ContractExpired, domain.ContractTerminated},
}

func transitionAllowed(from, to domain.ContractStatus) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

type Service struct {
	contracts ContractRepository
	berths    BerthRepository
	now       func() time.Time
}

func NewService(contracts ContractRepository, berths BerthRepository) *Service {
	return &Service{
		contracts: contracts,
		berths:    berths,
		now:       time.Now,
	}
}

func (s *Service) Create(ctx context.Context, req CreateContractRequest) (*domain.Contract, error) {
	if req.EndDate != nil && !req.EndDate.After(req.StartDate) {
		return nil, ErrValidation
	}
	if req.MonthlyRate != nil && *req.MonthlyRate < 0 {
		return nil, ErrValidation
	}

	occupied, err := s.contracts.HasActiveContractForBerth(ctx, req.BerthID)
	if err != nil {
		return nil, err
	}
	if occupied {
		return nil, ErrBerthOccupied
	}

	c := &domain.Contract{
		MarinaID:    req.MarinaID,
		OwnerID:     req.OwnerID,
		BoatID:      req.BoatID,
		BerthID:     req.BerthID,
		Status:      domain.ContractPending,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		MonthlyRate: req.MonthlyRate,
	}

	if err := s.contracts.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Contract, error) {
	c, err := s.contracts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *Service) GetByMarina(ctx context.Context, marinaID int64) ([]domain.Contract, error) {
	return s.contracts.GetByMarina(ctx, marinaID)
}

func (s *Service) GetByOwner(ctx context.Context, ownerID int64) ([]domain.Contract, error) {
	return s.contracts.GetByOwner(ctx, ownerID)
}

// UpdateStatus moves a contract through its lifecycle. Activating a contract
// marks its berth occupied; ending one frees the berth again.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status domain.ContractStatus) (*domain.Contract, error) {
	c, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !transitionAllowed(c.Status, status) {
		return nil, ErrInvalidStatusTransition
	}

	if status == domain.ContractActive {
		occupied, err := s.contracts.HasActiveContractForBerth(ctx, c.BerthID)
		if err != nil {
			return nil, err
		}
		if occupied {
			return nil, ErrBerthOccupied
		}
	}

	if err := s.contracts.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	switch status {
	case domain.ContractActive:
		_ = s.berths.SetAvailability(ctx, c.BerthID, false)
	case domain.ContractExpired, domain.ContractTerminated:
		_ = s.berths.SetAvailability(ctx, c.BerthID, true)
	}

	c.Status = status
	return c, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	c, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c.Status == domain.ContractActive {
		return ErrInvalidStatusTransition
	}

	if err := s.contracts.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// GetSummary computes the billing summary for one contract.
func (s *Service) GetSummary(ctx context.Context, id int64) (*metrics.ContractSummary, error) {
	c, err := s.contracts.GetWithInvoices(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	summary := metrics.BuildContractSummary(*c, s.now())
	return &summary, nil
}
