package dto

// CreateDepartmentRequest represents department creation data
type CreateDepartmentRequest struct {
	Name        string  `json:"name" validate:"required,max=255" example:"IT-департамент"`
	Description *string `json:"description,omitempty" example:"Разработка и поддержка ПО"`
}
