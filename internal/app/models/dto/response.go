package dto

// APIResponse is the envelope of every JSON response
type APIResponse struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty" example:"Employee created"`
	Error   string      `json:"error,omitempty" example:"Employee not found"`
}

// ErrorResponse documents the failure envelope in API docs
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error" example:"All fields are required"`
}

// NewSuccessResponse wraps data in a successful envelope
func NewSuccessResponse(data interface{}, message string) APIResponse {
	return APIResponse{Success: true, Data: data, Message: message}
}

// NewErrorResponse builds a failed envelope with a caller facing message
func NewErrorResponse(message string) APIResponse {
	return APIResponse{Success: false, Error: message}
}

// HealthResponse is returned by the health probe
type HealthResponse struct {
	Status    string `json:"status" example:"ok"`
	Timestamp string `json:"timestamp" example:"2025-04-23T12:01:05Z"`
	Service   string `json:"service" example:"personnel-api"`
}
