package marina

import (
	"context"
	"errors"
	"strings"
	"time"

	"marinahub/internal/cache"
	"marinahub/internal/domain"
	"marinahub/internal/metrics"
	"marinahub/internal/pkg/validator"
	"marinahub/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Service struct {
	marinas MarinaRepository
	cache   cache.SummaryCache
	now     func() time.Time
}

func NewService(marinas MarinaRepository, summaryCache cache.SummaryCache) *Service {
	return &Service{
		marinas: marinas,
		cache:   summaryCache,
		now:     time.Now,
	}
}

func (s *Service) Create(ctx context.Context, req CreateMarinaRequest) (*domain.Marina, error) {
	m := &domain.Marina{
		Name:     strings.TrimSpace(req.Name),
		Code:     strings.TrimSpace(req.Code),
		City:     strings.TrimSpace(req.City),
		GroupID:  req.GroupID,
		IsActive: true,
	}
	if fields := validator.Validate(m); fields != nil {
		return nil, ErrValidation
	}

	if err := s.marinas.Create(ctx, m); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrCodeTaken
		}
		return nil, err
	}

	return m, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Marina, error) {
	m, err := s.marinas.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

func (s *Service) List(ctx context.Context, q ListQuery) ([]domain.Marina, int64, error) {
	return s.marinas.GetAll(ctx, repository.MarinaFilters{
		GroupID:    q.GroupID,
		ActiveOnly: q.ActiveOnly,
		Limit:      q.Limit,
		Offset:     q.Offset,
	})
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateMarinaRequest) (*domain.Marina, error) {
	m, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrValidation
		}
		m.Name = strings.TrimSpace(*req.Name)
	}
	if req.City != nil {
		m.City = strings.TrimSpace(*req.City)
	}
	if req.GroupID != nil {
		m.GroupID = req.GroupID
	}
	if req.IsActive != nil {
		m.IsActive = *req.IsActive
	}

	if err := s.marinas.Update(ctx, m); err != nil {
		return nil, err
	}

	// Stale summaries would keep reporting the old activity flags.
	_ = s.cache.DeleteMarinaSummary(ctx, id)

	return m, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.marinas.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	_ = s.cache.DeleteMarinaSummary(ctx, id)
	return nil
}

// GetSummary computes the operational summary for a marina, serving cached
// copies when available.
func (s *Service) GetSummary(ctx context.Context, id int64) (*metrics.MarinaSummary, error) {
	if cached, err := s.cache.GetMarinaSummary(ctx, id); err == nil {
		return cached, nil
	}

	m, err := s.marinas.GetWithRelations(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	summary := metrics.BuildMarinaSummary(*m, s.now())
	_ = s.cache.SetMarinaSummary(ctx, &summary)

	return &summary, nil
}
