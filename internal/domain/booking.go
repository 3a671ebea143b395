package domain

import "time"

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "confirmed"
	BookingActive    BookingStatus = "active"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking is a short-term berth visit, as opposed to a long-term Contract.
type Booking struct {
	ID          int64         `json:"id"`
	MarinaID    int64         `json:"marina_id" validate:"required"`
	OwnerID     int64         `json:"owner_id" validate:"required"`
	BoatID      int64         `json:"boat_id" validate:"required"`
	BerthID     int64         `json:"berth_id" validate:"required"`
	Status      BookingStatus `json:"status"`
	StartDate   time.Time     `json:"start_date" validate:"required"`
	EndDate     time.Time     `json:"end_date" validate:"required"`
	TotalAmount float64       `json:"total_amount" validate:"gte=0"`
	Notes       string        `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
	CancelledAt *time.Time    `json:"cancelled_at,omitempty"`

	Owner *Owner `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	Boat  *Boat  `json:"boat,omitempty" gorm:"foreignKey:BoatID"`
	Berth *Berth `json:"berth,omitempty" gorm:"foreignKey:BerthID"`
}
