package models

// Gender of an employee
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Education level of an employee
type Education string

const (
	EducationSecondary   Education = "secondary"
	EducationSpecialized Education = "specialized"
	EducationHigher      Education = "higher"
)

// EmployeeStatus is the lifecycle state of an employee
type EmployeeStatus string

const (
	StatusActive   EmployeeStatus = "active"
	StatusVacation EmployeeStatus = "vacation"
	StatusFired    EmployeeStatus = "fired"
)

// Statuses lists the recognized lifecycle states
var Statuses = []EmployeeStatus{StatusActive, StatusVacation, StatusFired}
