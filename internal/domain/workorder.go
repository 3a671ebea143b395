package domain

import "time"

type WorkOrderStatus string

const (
	WorkOrderPending    WorkOrderStatus = "pending"
	WorkOrderInProgress WorkOrderStatus = "in_progress"
	WorkOrderCompleted  WorkOrderStatus = "completed"
	WorkOrderCancelled  WorkOrderStatus = "cancelled"
)

type WorkOrderPriority string

const (
	PriorityLow    WorkOrderPriority = "low"
	PriorityNormal WorkOrderPriority = "normal"
	PriorityHigh   WorkOrderPriority = "high"
	PriorityUrgent WorkOrderPriority = "urgent"
)

type WorkOrder struct {
	ID            int64             `json:"id"`
	MarinaID      int64             `json:"marina_id" validate:"required"`
	OwnerID       int64             `json:"owner_id" validate:"required"`
	BoatID        *int64            `json:"boat_id,omitempty"`
	BerthID       *int64            `json:"berth_id,omitempty"`
	Status        WorkOrderStatus   `json:"status"`
	Priority      WorkOrderPriority `json:"priority"`
	Title         string            `json:"title" validate:"required"`
	Description   string            `json:"description,omitempty" gorm:"type:text"`
	TotalCost     float64           `json:"total_cost" validate:"gte=0"`
	RequestedDate time.Time         `json:"requested_date"`
	CompletedDate *time.Time        `json:"completed_date,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}
