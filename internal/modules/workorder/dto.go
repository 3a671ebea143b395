package workorder

type CreateWorkOrderRequest struct {
	MarinaID    int64   `json:"marina_id" binding:"required"`
	OwnerID     int64   `json:"owner_id" binding:"required"`
	BoatID      *int64  `json:"boat_id"`
	BerthID     *int64  `json:"berth_id"`
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Priority    string  `json:"priority" binding:"omitempty,oneof=low normal high urgent"`
	TotalCost   float64 `json:"total_cost" binding:"gte=0"`
}

type UpdateWorkOrderRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Priority    *string  `json:"priority" binding:"omitempty,oneof=low normal high urgent"`
	TotalCost   *float64 `json:"total_cost"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending in_progress completed cancelled"`
}

type ListQuery struct {
	MarinaID *int64 `form:"marina_id"`
	OwnerID  *int64 `form:"owner_id"`
	Status   string `form:"status" binding:"omitempty,oneof=pending in_progress completed cancelled"`
	Limit    int    `form:"limit,default=50"`
	Offset   int    `form:"offset"`
}
