package model

import "fmt"

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON      = "INVALID_JSON"
	ErrCodeValidationFailed = "VALIDATION_FAILED"
	ErrCodeProductNotFound  = "PRODUCT_NOT_FOUND"
	ErrCodeCorruptState     = "CORRUPT_STATE"
	ErrCodeIOFailure        = "IO_FAILURE"
	ErrCodeInternalError    = "INTERNAL_ERROR"
)

// DomainError represents a business-rule failure with a stable code.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrProductNotFound = NewDomainError(ErrCodeProductNotFound, "product not found")
	ErrCorruptState    = NewDomainError(ErrCodeCorruptState, "persisted catalogue state is unreadable")
)

// FieldError describes a single validation finding on one field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates every field rule violated by a request, so the
// caller can report all of them at once instead of just the first.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %d field error(s)", len(e.Fields))
}
