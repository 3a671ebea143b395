package marina

type CreateMarinaRequest struct {
	Name    string `json:"name" binding:"required"`
	Code    string `json:"code" binding:"required"`
	City    string `json:"city"`
	GroupID *int64 `json:"group_id"`
}

type UpdateMarinaRequest struct {
	Name     *string `json:"name"`
	City     *string `json:"city"`
	GroupID  *int64  `json:"group_id"`
	IsActive *bool   `json:"is_active"`
}

type ListQuery struct {
	GroupID    *int64 `form:"group_id"`
	ActiveOnly bool   `form:"active_only"`
	Limit      int    `form:"limit,default=50"`
	Offset     int    `form:"offset"`
}
