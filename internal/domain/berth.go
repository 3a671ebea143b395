package domain

import "time"

type Berth struct {
	ID          int64     `json:"id"`
	MarinaID    int64     `json:"marina_id" validate:"required"`
	BerthNumber string    `json:"berth_number" validate:"required"`
	Length      float64   `json:"length" validate:"gte=0"`
	Beam        float64   `json:"beam" validate:"gte=0"`
	IsAvailable bool      `json:"is_available"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Contracts  []Contract  `json:"contracts,omitempty" gorm:"foreignKey:BerthID"`
	Bookings   []Booking   `json:"bookings,omitempty" gorm:"foreignKey:BerthID"`
	WorkOrders []WorkOrder `json:"work_orders,omitempty" gorm:"foreignKey:BerthID"`
}
