package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL SQLSTATE codes for integrity violations
const (
	UniqueViolationCode     = "23505"
	ForeignKeyViolationCode = "23503"
	CheckViolationCode      = "23514"
)

func pgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}

// IsUniqueViolation reports a unique_violation, optionally restricted to one constraint
func IsUniqueViolation(err error, constraint ...string) bool {
	return matches(err, UniqueViolationCode, constraint)
}

// IsForeignKeyViolation reports a foreign_key_violation, optionally restricted to one constraint
func IsForeignKeyViolation(err error, constraint ...string) bool {
	return matches(err, ForeignKeyViolationCode, constraint)
}

// IsCheckViolation reports a check_violation
func IsCheckViolation(err error) bool {
	return matches(err, CheckViolationCode, nil)
}

// ConstraintName returns the violated constraint, if any
func ConstraintName(err error) string {
	if pgErr, ok := pgError(err); ok {
		return pgErr.ConstraintName
	}
	return ""
}

func matches(err error, code string, constraint []string) bool {
	pgErr, ok := pgError(err)
	if !ok || pgErr.Code != code {
		return false
	}
	if len(constraint) == 0 {
		return true
	}
	for _, c := range constraint {
		if pgErr.ConstraintName == c {
			return true
		}
	}
	return false
}
