package request

type CreateResourceRequest struct {
	Name   string `json:"name" binding:"required,max=255"`
	TypeID int64  `json:"typeId" binding:"required"`
}

type UpdateResourceRequest struct {
	Name   *string `json:"name" binding:"omitempty,max=255"`
	TypeID *int64  `json:"typeId" binding:"omitempty"`
}
