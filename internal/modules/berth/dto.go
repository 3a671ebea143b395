package berth

type CreateBerthRequest struct {
	MarinaID    int64   `json:"marina_id" binding:"required"`
	BerthNumber string  `json:"berth_number" binding:"required"`
	Length      float64 `json:"length" binding:"gte=0"`
	Beam        float64 `json:"beam" binding:"gte=0"`
}

type UpdateBerthRequest struct {
	BerthNumber *string  `json:"berth_number"`
	Length      *float64 `json:"length"`
	Beam        *float64 `json:"beam"`
	IsAvailable *bool    `json:"is_available"`
	IsActive    *bool    `json:"is_active"`
}

type ListQuery struct {
	MarinaID      *int64 `form:"marina_id"`
	AvailableOnly bool   `form:"available_only"`
	Limit         int    `form:"limit,default=50"`
	Offset        int    `form:"offset"`
}
