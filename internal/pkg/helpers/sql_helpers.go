package helpers

import (
	"database/sql"
	"time"
)

// TimePtr converts a scanned sql.NullTime into an optional time.
func TimePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

// StringPtr converts a scanned sql.NullString into an optional string.
func StringPtr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

// GetNullString converts a string pointer to sql.NullString.
// Blank strings are stored as NULL.
func GetNullString(s *string) sql.NullString {
	if s == nil || *s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
