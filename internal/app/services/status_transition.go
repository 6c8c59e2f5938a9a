package services

import (
	"time"

	"github.com/yigit/personnel/internal/app/models"
)

// StatusTransition is the complete column set written by one status change.
// A nil value clears the column.
type StatusTransition map[string]interface{}

// PlanStatusTransition computes the columns to write when moving an employee
// to status at time now.
//
// Every transition writes status and updated_at. active clears fired_at and
// both vacation columns; vacation stamps vacation_start_at and leaves
// fired_at as it was; fired stamps fired_at and clears both vacation
// columns. Any other status is written verbatim with no timestamp changes.
func PlanStatusTransition(status string, now time.Time) StatusTransition {
	t := StatusTransition{
		"status":     status,
		"updated_at": now,
	}

	switch models.EmployeeStatus(status) {
	case models.StatusActive:
		t["fired_at"] = nil
		t["vacation_start_at"] = nil
		t["vacation_end_at"] = nil
	case models.StatusVacation:
		t["vacation_start_at"] = now
	case models.StatusFired:
		t["fired_at"] = now
		t["vacation_start_at"] = nil
		t["vacation_end_at"] = nil
	}

	return t
}

// StatusChangeMessage is the confirmation shown after a transition
func StatusChangeMessage(status models.EmployeeStatus) string {
	switch status {
	case models.StatusActive:
		return "Employee activated"
	case models.StatusVacation:
		return "Employee sent on vacation"
	case models.StatusFired:
		return "Employee fired"
	default:
		return "Status changed"
	}
}
