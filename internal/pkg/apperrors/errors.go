package apperrors

import "errors"

// Error categories. Handlers map these onto HTTP status codes.
var (
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")
	ErrValidationFailed = errors.New("validation failed")
)

// Employee errors
var (
	ErrEmployeeNotFound      = NewResourceNotFoundError("Employee not found")
	ErrPassportAlreadyExists = NewConflictError("Employee with this passport already exists")
	ErrMissingRequiredFields = NewValidationError("All fields are required")
	ErrInvalidStatus         = NewValidationError("Invalid status value")
)

// Department errors
var (
	ErrDepartmentNotFound      = NewResourceNotFoundError("Department not found")
	ErrDepartmentAlreadyExists = NewConflictError("Department with this name already exists")
	ErrDepartmentHasEmployees  = NewConflictError("Department has employees and cannot be deleted")
	ErrDepartmentReference     = NewValidationError("Department does not exist")
)

// CustomError carries a caller facing message on top of an error category
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{Err: ErrResourceNotFound, Message: message}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{Err: ErrConflict, Message: message}
}

// NewValidationError creates a new custom error for rejected input with a message
func NewValidationError(message string) error {
	return &CustomError{Err: ErrValidationFailed, Message: message}
}

// Message returns the caller facing message of err, or fallback when err
// carries none.
func Message(err error, fallback string) string {
	var custom *CustomError
	if errors.As(err, &custom) && custom.Message != "" {
		return custom.Message
	}
	return fallback
}
