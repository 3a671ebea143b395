package domain

import "time"

type ContractStatus string

const (
	ContractPending    ContractStatus = "pending"
	ContractActive     ContractStatus = "active"
	ContractExpired    ContractStatus = "expired"
	ContractTerminated ContractStatus = "terminated"
)

type Contract struct {
	ID          int64          `json:"id"`
	MarinaID    int64          `json:"marina_id" validate:"required"`
	OwnerID     int64          `json:"owner_id" validate:"required"`
	BoatID      int64          `json:"boat_id" validate:"required"`
	BerthID     int64          `json:"berth_id" validate:"required"`
	Status      ContractStatus `json:"status"`
	StartDate   time.Time      `json:"start_date" validate:"required"`
	EndDate     *time.Time     `json:"end_date,omitempty"`
	MonthlyRate *float64       `json:"monthly_rate,omitempty" validate:"omitempty,gte=0"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`

	Owner    *Owner    `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	Boat     *Boat     `json:"boat,omitempty" gorm:"foreignKey:BoatID"`
	Berth    *Berth    `json:"berth,omitempty" gorm:"foreignKey:BerthID"`
	Invoices []Invoice `json:"invoices,omitempty" gorm:"foreignKey:ContractID"`
}
