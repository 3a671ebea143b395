package booking

import (
	"context"
	"time"

	"marinahub/internal/domain"
)

// BookingRepository defines the persistence operations for berth bookings
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	CheckAvailability(ctx context.Context, berthID int64, start, end time.Time) (bool, error)
	GetByMarina(ctx context.Context, marinaID int64, limit, offset int) ([]domain.Booking, error)
	GetByOwner(ctx context.Context, ownerID int64, limit, offset int) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	CancelWithReason(ctx context.Context, id int64, reason string, at time.Time) error
}
