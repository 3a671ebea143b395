package domain

import "time"

type Boat struct {
	ID           int64     `json:"id"`
	OwnerID      int64     `json:"owner_id" validate:"required"`
	MarinaID     int64     `json:"marina_id" validate:"required"`
	BerthID      *int64    `json:"berth_id,omitempty"`
	Name         string    `json:"name" validate:"required"`
	Registration string    `json:"registration" validate:"required"`
	Length       float64   `json:"length" validate:"gte=0"`
	Beam         float64   `json:"beam" validate:"gte=0"`
	Draft        float64   `json:"draft" validate:"gte=0"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Owner *Owner `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	Berth *Berth `json:"berth,omitempty" gorm:"foreignKey:BerthID"`
}
