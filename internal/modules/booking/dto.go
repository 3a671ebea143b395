package booking

import "time"

type CreateBookingRequest struct {
	MarinaID    int64     `json:"marina_id" binding:"required"`
	OwnerID     int64     `json:"owner_id" binding:"required"`
	BoatID      int64     `json:"boat_id" binding:"required"`
	BerthID     int64     `json:"berth_id" binding:"required"`
	StartDate   time.Time `json:"start_date" binding:"required"`
	EndDate     time.Time `json:"end_date" binding:"required"`
	TotalAmount float64   `json:"total_amount" binding:"gte=0"`
	Notes       string    `json:"notes"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=confirmed active completed cancelled"`
}

type ListQuery struct {
	MarinaID *int64 `form:"marina_id"`
	OwnerID  *int64 `form:"owner_id"`
	Limit    int    `form:"limit,default=50"`
	Offset   int    `form:"offset"`
}

// BookingView decorates a stored booking with its time-derived status.
type BookingView struct {
	ID               int64     `json:"id"`
	MarinaID         int64     `json:"marina_id"`
	OwnerID          int64     `json:"owner_id"`
	BoatID           int64     `json:"boat_id"`
	BerthID          int64     `json:"berth_id"`
	Status           string    `json:"status"`
	CalculatedStatus string    `json:"calculated_status"`
	StartDate        time.Time `json:"start_date"`
	EndDate          time.Time `json:"end_date"`
	TotalAmount      float64   `json:"total_amount"`
	Notes            string    `json:"notes,omitempty"`
}
