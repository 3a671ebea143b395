package owner

import (
	"context"
	"errors"
	"strings"
	"time"

	"marinahub/internal/domain"
	"marinahub/internal/metrics"
	"marinahub/internal/pkg/validator"
	"marinahub/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Service struct {
	owners OwnerRepository
	boats  BoatRepository
	now    func() time.Time
}

func NewService(owners OwnerRepository, boats BoatRepository) *Service {
	return &Service{
		owners: owners,
		boats:  boats,
		now:    time.Now,
	}
}

func (s *Service) Create(ctx context.Context, req CreateOwnerRequest) (*domain.Owner, error) {
	o := &domain.Owner{
		MarinaID:  req.MarinaID,
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:     strings.TrimSpace(req.Phone),
		IsActive:  true,
	}
	if fields := validator.Validate(o); fields != nil {
		return nil, ErrValidation
	}

	if err := s.owners.Create(ctx, o); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return o, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Owner, error) {
	o, err := s.owners.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return o, nil
}

func (s *Service) List(ctx context.Context, q ListQuery) ([]domain.Owner, int64, error) {
	return s.owners.GetAll(ctx, repository.OwnerFilters{
		MarinaID:   q.MarinaID,
		ActiveOnly: q.ActiveOnly,
		Search:     q.Search,
		Limit:      q.Limit,
		Offset:     q.Offset,
	})
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateOwnerRequest) (*domain.Owner, error) {
	o, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		if strings.TrimSpace(*req.FirstName) == "" {
			return nil, ErrValidation
		}
		o.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		if strings.TrimSpace(*req.LastName) == "" {
			return nil, ErrValidation
		}
		o.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.Phone != nil {
		o.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.IsActive != nil {
		o.IsActive = *req.IsActive
	}

	if err := s.owners.Update(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.owners.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// GetSummary computes the billing and activity summary for one owner.
func (s *Service) GetSummary(ctx context.Context, id int64) (*metrics.OwnerSummary, error) {
	o, err := s.owners.GetWithRelations(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	summary := metrics.BuildOwnerSummary(*o, s.now())
	return &summary, nil
}

func (s *Service) AddBoat(ctx context.Context, ownerID int64, req CreateBoatRequest) (*domain.Boat, error) {
	if _, err := s.GetByID(ctx, ownerID); err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Registration) == "" {
		return nil, ErrValidation
	}

	b := &domain.Boat{
		OwnerID:      ownerID,
		MarinaID:     req.MarinaID,
		BerthID:      req.BerthID,
		Name:         strings.TrimSpace(req.Name),
		Registration: strings.TrimSpace(req.Registration),
		Length:       req.Length,
		Beam:         req.Beam,
		Draft:        req.Draft,
		IsActive:     true,
	}

	if err := s.boats.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) ListBoats(ctx context.Context, ownerID int64) ([]domain.Boat, error) {
	if _, err := s.GetByID(ctx, ownerID); err != nil {
		return nil, err
	}
	return s.boats.GetByOwner(ctx, ownerID)
}

func (s *Service) AssignBerth(ctx context.Context, ownerID, boatID int64, berthID *int64) (*domain.Boat, error) {
	b, err := s.boats.GetByID(ctx, boatID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBoatNotFound
		}
		return nil, err
	}
	if b.OwnerID != ownerID {
		return nil, ErrBoatNotFound
	}

	if err := s.boats.AssignBerth(ctx, boatID, berthID); err != nil {
		return nil, err
	}

	b.BerthID = berthID
	return b, nil
}
