package group

type CreateGroupRequest struct {
	Name string `json:"name" binding:"required"`
	Code string `json:"code" binding:"required"`
}

type UpdateGroupRequest struct {
	Name *string `json:"name"`
}
