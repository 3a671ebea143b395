package booking

import (
	"context"
	"errors"
	"time"

	"marinahub/internal/domain"
	"marinahub/internal/metrics"

	"gorm.io/gorm"
)

// Stored status moves. The derived active/completed states come from
// metrics.BookingStatusAt and are not persisted.
var transitions = map[domain.BookingStatus][]domain.BookingStatus{
	domain.BookingConfirmed: {domain.BookingActive, domain.BookingCancelled},
	domain.BookingActive:    {domain.BookingCompleted, domain.BookingCancelled},
}

func transitionAllowed(from, to domain.BookingStatus) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

type Service struct {
	bookings BookingRepository
	now      func() time.Time
}

func NewService(bookings BookingRepository) *Service {
	return &Service{
		bookings: bookings,
		now:      time.Now,
	}
}

func (s *Service) view(b domain.Booking) BookingView {
	return BookingView{
		ID:               b.ID,
		MarinaID:         b.MarinaID,
		OwnerID:          b.OwnerID,
		BoatID:           b.BoatID,
		BerthID:          b.BerthID,
		Status:           string(b.Status),
		CalculatedStatus: string(metrics.BookingStatusAt(b, s.now())),
		StartDate:        b.StartDate,
		EndDate:          b.EndDate,
		TotalAmount:      b.TotalAmount,
		Notes:            b.Notes,
	}
}

func (s *Service) Create(ctx context.Context, req CreateBookingRequest) (*BookingView, error) {
	if !req.EndDate.After(req.StartDate) {
		return nil, ErrValidation
	}
	if req.StartDate.Before(s.now()) {
		return nil, ErrValidation
	}

	ok, err := s.bookings.CheckAvailability(ctx, req.BerthID, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotAvailable
	}

	b := &domain.Booking{
		MarinaID:    req.MarinaID,
		OwnerID:     req.OwnerID,
		BoatID:      req.BoatID,
		BerthID:     req.BerthID,
		Status:      domain.BookingConfirmed,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		TotalAmount: req.TotalAmount,
		Notes:       req.Notes,
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}

	v := s.view(*b)
	return &v, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*BookingView, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	v := s.view(*b)
	return &v, nil
}

func (s *Service) List(ctx context.Context, q ListQuery) ([]BookingView, error) {
	var (
		rows []domain.Booking
		err  error
	)

	switch {
	case q.MarinaID != nil:
		rows, err = s.bookings.GetByMarina(ctx, *q.MarinaID, q.Limit, q.Offset)
	case q.OwnerID != nil:
		rows, err = s.bookings.GetByOwner(ctx, *q.OwnerID, q.Limit, q.Offset)
	default:
		return nil, ErrValidation
	}
	if err != nil {
		return nil, err
	}

	out := make([]BookingView, 0, len(rows))
	for _, b := range rows {
		out = append(out, s.view(b))
	}
	return out, nil
}

func (s *Service) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) (*BookingView, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !transitionAllowed(b.Status, status) {
		return nil, ErrInvalidStatusTransition
	}

	if err := s.bookings.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	b.Status = status
	v := s.view(*b)
	return &v, nil
}

// Cancel rejects cancelling finished or already-cancelled bookings and
// records the mandatory reason.
func (s *Service) Cancel(ctx context.Context, id int64, reason string) (*BookingView, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if b.Status == domain.BookingCancelled || b.Status == domain.BookingCompleted {
		return nil, ErrInvalidStatusTransition
	}

	now := s.now()
	if err := s.bookings.CancelWithReason(ctx, id, reason, now); err != nil {
		return nil, err
	}

	b.Status = domain.BookingCancelled
	b.Notes = reason
	b.CancelledAt = &now

	v := s.view(*b)
	return &v, nil
}
