package dto

import "strings"

// CreateEmployeeRequest carries the fields of a new employee
type CreateEmployeeRequest struct {
	FullName     string `json:"fullName" validate:"required,max=255" example:"Иванов Иван Иванович"`
	Gender       string `json:"gender" validate:"required,oneof=male female" example:"male"`
	Age          *int   `json:"age" validate:"required,min=18,max=70" example:"35"`
	Education    string `json:"education" validate:"required,oneof=secondary specialized higher" example:"higher"`
	Position     string `json:"position" validate:"required,max=255" example:"Программист"`
	Passport     string `json:"passport" validate:"required,passport" example:"1234 567890"`
	DepartmentID string `json:"departmentId" validate:"required,uuid" example:"6f1c2a1e-8d7b-4c59-9a0e-3b2f4d5e6a7b"`
}

// Normalize trims surrounding whitespace from text fields
func (r *CreateEmployeeRequest) Normalize() {
	r.FullName = strings.TrimSpace(r.FullName)
	r.Gender = strings.TrimSpace(r.Gender)
	r.Education = strings.TrimSpace(r.Education)
	r.Position = strings.TrimSpace(r.Position)
	r.Passport = strings.TrimSpace(r.Passport)
	r.DepartmentID = strings.TrimSpace(r.DepartmentID)
}

// UpdateEmployeeRequest carries the descriptive fields of an employee.
// Status and department are changed elsewhere.
type UpdateEmployeeRequest struct {
	FullName  string `json:"fullName" validate:"required,max=255" example:"Иванов Иван Иванович"`
	Gender    string `json:"gender" validate:"required,oneof=male female" example:"male"`
	Age       *int   `json:"age" validate:"required,min=18,max=70" example:"36"`
	Education string `json:"education" validate:"required,oneof=secondary specialized higher" example:"higher"`
	Position  string `json:"position" validate:"required,max=255" example:"Руководитель отдела"`
	Passport  string `json:"passport" validate:"required,passport" example:"1234 567890"`
}

// Normalize trims surrounding whitespace from text fields
func (r *UpdateEmployeeRequest) Normalize() {
	r.FullName = strings.TrimSpace(r.FullName)
	r.Gender = strings.TrimSpace(r.Gender)
	r.Education = strings.TrimSpace(r.Education)
	r.Position = strings.TrimSpace(r.Position)
	r.Passport = strings.TrimSpace(r.Passport)
}

// SearchEmployeesRequest holds optional search filters. Empty strings and
// missing age bounds do not restrict the result. An age bound of 0 is still
// a bound: {"ageTo":0} matches nobody.
type SearchEmployeesRequest struct {
	FullName  string `json:"fullName,omitempty" example:"Петров"`
	Position  string `json:"position,omitempty" example:"Аналитик"`
	Gender    string `json:"gender,omitempty" example:"female"`
	Education string `json:"education,omitempty" example:"higher"`
	AgeFrom   *int   `json:"ageFrom,omitempty" example:"25"`
	AgeTo     *int   `json:"ageTo,omitempty" example:"35"`
}

// ChangeStatusRequest requests a lifecycle transition
type ChangeStatusRequest struct {
	Status string `json:"status" validate:"required" example:"vacation"`
}
