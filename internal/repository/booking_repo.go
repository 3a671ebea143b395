package repository

import (
	"context"
	"time"

	"marinahub/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db Conn
}

func NewBookingRepository(db Conn) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	return r.db.DB().WithContext(ctx).Create(b).Error
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var b domain.Booking
	if err := r.db.DB().WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

// CheckAvailability reports whether the berth is free of overlapping
// non-cancelled bookings in [start, end). Plain range comparison keeps the
// query portable between Postgres and the demo-mode SQLite store.
func (r *BookingRepository) CheckAvailability(ctx context.Context, berthID int64, start, end time.Time) (bool, error) {
	var cnt int64
	err := r.db.DB().WithContext(ctx).
		Model(&domain.Booking{}).
		Where("berth_id = ? AND status <> ? AND start_date < ? AND end_date > ?",
			berthID, domain.BookingCancelled, end, start).
		Count(&cnt).Error
	if err != nil {
		return false, err
	}
	return cnt == 0, nil
}

func (r *BookingRepository) GetByMarina(ctx context.Context, marinaID int64, limit, offset int) ([]domain.Booking, error) {
	var bookings []domain.Booking
	q := r.db.DB().WithContext(ctx).
		Where("marina_id = ?", marinaID).
		Order("start_date DESC")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}
	err := q.Find(&bookings).Error
	return bookings, err
}

func (r *BookingRepository) GetByOwner(ctx context.Context, ownerID int64, limit, offset int) ([]domain.Booking, error) {
	var bookings []domain.Booking
	q := r.db.DB().WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("start_date DESC")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}
	err := q.Find(&bookings).Error
	return bookings, err
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	tx := r.db.DB().WithContext(ctx).
		Model(&domain.Booking{}).
		Where("id = ?", id).
		Update("status", status)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *BookingRepository) CancelWithReason(ctx context.Context, id int64, reason string, at time.Time) error {
	tx := r.db.DB().WithContext(ctx).
		Model(&domain.Booking{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":       domain.BookingCancelled,
			"notes":        reason,
			"cancelled_at": at,
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
