package contract

import "time"

type CreateContractRequest struct {
	MarinaID    int64      `json:"marina_id" binding:"required"`
	OwnerID     int64      `json:"owner_id" binding:"required"`
	BoatID      int64      `json:"boat_id" binding:"required"`
	BerthID     int64      `json:"berth_id" binding:"required"`
	StartDate   time.Time  `json:"start_date" binding:"required"`
	EndDate     *time.Time `json:"end_date"`
	MonthlyRate *float64   `json:"monthly_rate"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending active expired terminated"`
}
