package models

import "time"

// Employee is a personnel record joined with its department name.
//
// The lifecycle timestamps follow Status: fired sets FiredAt and clears the
// vacation fields, vacation sets VacationStartAt, active clears all three.
type Employee struct {
	ID              string         `json:"id"`
	FullName        string         `json:"full_name"`
	Gender          Gender         `json:"gender"`
	Age             int            `json:"age"`
	Education       Education      `json:"education"`
	Position        string         `json:"position"`
	Passport        string         `json:"passport"`
	DepartmentID    string         `json:"department_id"`
	DepartmentName  string         `json:"department_name"`
	Status          EmployeeStatus `json:"status"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	FiredAt         *time.Time     `json:"fired_at"`
	VacationStartAt *time.Time     `json:"vacation_start_at"`
	VacationEndAt   *time.Time     `json:"vacation_end_at"`
}

// EmployeeStats summarizes headcount per lifecycle state and per department
// name. Departments without employees are reported with 0.
type EmployeeStats struct {
	Total        int            `json:"total"`
	ByStatus     map[string]int `json:"by_status"`
	ByDepartment map[string]int `json:"by_department"`
}
