package group

import (
	"context"
	"errors"
	"strings"
	"time"

	"marinahub/internal/cache"
	"marinahub/internal/domain"
	"marinahub/internal/metrics"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Service struct {
	groups GroupRepository
	cache  cache.SummaryCache
	now    func() time.Time
}

func NewService(groups GroupRepository, summaryCache cache.SummaryCache) *Service {
	return &Service{
		groups: groups,
		cache:  summaryCache,
		now:    time.Now,
	}
}

func (s *Service) Create(ctx context.Context, req CreateGroupRequest) (*domain.MarinaGroup, error) {
	name := strings.TrimSpace(req.Name)
	code := strings.TrimSpace(req.Code)
	if name == "" || code == "" {
		return nil, ErrValidation
	}

	g := &domain.MarinaGroup{Name: name, Code: code}
	if err := s.groups.Create(ctx, g); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrCodeTaken
		}
		return nil, err
	}

	return g, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.MarinaGroup, error) {
	g, err := s.groups.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return g, nil
}

func (s *Service) List(ctx context.Context) ([]domain.MarinaGroup, error) {
	return s.groups.GetAll(ctx)
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateGroupRequest) (*domain.MarinaGroup, error) {
	g, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrValidation
		}
		g.Name = strings.TrimSpace(*req.Name)
	}

	if err := s.groups.Update(ctx, g); err != nil {
		return nil, err
	}

	_ = s.cache.DeleteGroupSummary(ctx, id)
	return g, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.groups.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	_ = s.cache.DeleteGroupSummary(ctx, id)
	return nil
}

// GetSummary folds every member marina's summary into a group rollup.
func (s *Service) GetSummary(ctx context.Context, id int64) (*metrics.GroupSummary, error) {
	if cached, err := s.cache.GetGroupSummary(ctx, id); err == nil {
		return cached, nil
	}

	g, err := s.groups.GetWithMarinas(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	summary := metrics.BuildGroupSummary(*g, s.now())
	_ = s.cache.SetGroupSummary(ctx, &summary)

	return &summary, nil
}
