package models

// ErrorResponse is the standard error body for every endpoint.
type ErrorResponse struct {
	Status  int               `json:"status"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// ValidationError carries per-field messages for rejected submissions.
// Controllers map it to 422 with the field map attached.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	for _, msg := range e.Fields {
		return msg
	}
	return "validation failed"
}

// NewValidationError builds a single-field validation error.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}
