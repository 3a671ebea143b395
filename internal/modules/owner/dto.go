package owner

type CreateOwnerRequest struct {
	MarinaID  int64  `json:"marina_id" binding:"required"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone"`
}

type UpdateOwnerRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Phone     *string `json:"phone"`
	IsActive  *bool   `json:"is_active"`
}

type ListQuery struct {
	MarinaID   *int64 `form:"marina_id"`
	ActiveOnly bool   `form:"active_only"`
	Search     string `form:"search"`
	Limit      int    `form:"limit,default=50"`
	Offset     int    `form:"offset"`
}

type CreateBoatRequest struct {
	MarinaID     int64   `json:"marina_id" binding:"required"`
	BerthID      *int64  `json:"berth_id"`
	Name         string  `json:"name" binding:"required"`
	Registration string  `json:"registration" binding:"required"`
	Length       float64 `json:"length" binding:"gte=0"`
	Beam         float64 `json:"beam" binding:"gte=0"`
	Draft        float64 `json:"draft" binding:"gte=0"`
}

type AssignBerthRequest struct {
	BerthID *int64 `json:"berth_id"`
}
