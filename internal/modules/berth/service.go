package berth

import (
	"context"
	"errors"
	"strings"
	"time"

	"marinahub/internal/domain"
	"marinahub/internal/metrics"
	"marinahub/internal/pkg/validator"
	"marinahub/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	berths BerthRepository
	now    func() time.Time
}

func NewService(berths BerthRepository) *Service {
	return &Service{
		berths: berths,
		now:    time.Now,
	}
}

func (s *Service) Create(ctx context.Context, req CreateBerthRequest) (*domain.Berth, error) {
	b := &domain.Berth{
		MarinaID:    req.MarinaID,
		BerthNumber: strings.TrimSpace(req.BerthNumber),
		Length:      req.Length,
		Beam:        req.Beam,
		IsAvailable: true,
		IsActive:    true,
	}
	if fields := validator.Validate(b); fields != nil {
		return nil, ErrValidation
	}

	if err := s.berths.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Berth, error) {
	b, err := s.berths.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *Service) List(ctx context.Context, q ListQuery) ([]domain.Berth, int64, error) {
	return s.berths.GetAll(ctx, repository.BerthFilters{
		MarinaID:      q.MarinaID,
		AvailableOnly: q.AvailableOnly,
		Limit:         q.Limit,
		Offset:        q.Offset,
	})
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateBerthRequest) (*domain.Berth, error) {
	b, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.BerthNumber != nil {
		if strings.TrimSpace(*req.BerthNumber) == "" {
			return nil, ErrValidation
		}
		b.BerthNumber = strings.TrimSpace(*req.BerthNumber)
	}
	if req.Length != nil {
		if *req.Length < 0 {
			return nil, ErrValidation
		}
		b.Length = *req.Length
	}
	if req.Beam != nil {
		if *req.Beam < 0 {
			return nil, ErrValidation
		}
		b.Beam = *req.Beam
	}
	if req.IsAvailable != nil {
		b.IsAvailable = *req.IsAvailable
	}
	if req.IsActive != nil {
		b.IsActive = *req.IsActive
	}

	if err := s.berths.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.berths.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// GetSummary computes the occupancy summary for one berth.
func (s *Service) GetSummary(ctx context.Context, id int64) (*metrics.BerthSummary, error) {
	b, err := s.berths.GetWithRelations(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	summary := metrics.BuildBerthSummary(*b, s.now())
	return &summary, nil
}
