package model

import (
	"fmt"
	"sort"
	"strings"
)

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON            = "INVALID_JSON"
	ErrCodeValidationFailed       = "VALIDATION_FAILED"
	ErrCodeProductNotFound        = "PRODUCT_NOT_FOUND"
	ErrCodeInvalidQuantity        = "INVALID_QUANTITY"
	ErrCodeInvalidCategory        = "INVALID_CATEGORY"
	ErrCodeInvalidChannel         = "INVALID_CHANNEL"
	ErrCodeIncompleteInstallation = "INCOMPLETE_INSTALLATION"
	ErrCodePostalCodeNotFound     = "POSTAL_CODE_NOT_FOUND"
	ErrCodeUnauthorised           = "UNAUTHORIZED"
	ErrCodeInternalError          = "INTERNAL_ERROR"
)

// DomainError is a business-rule failure carrying a stable error code.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrProductNotFound        = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrInvalidQuantity        = NewDomainError(ErrCodeInvalidQuantity, "Quantity must be greater than zero")
	ErrInvalidCategory        = NewDomainError(ErrCodeInvalidCategory, "Unknown product category")
	ErrInvalidChannel         = NewDomainError(ErrCodeInvalidChannel, "Checkout channel must be finance or payment")
	ErrIncompleteInstallation = NewDomainError(ErrCodeIncompleteInstallation, "Please complete installation scheduling to proceed")
	ErrPostalCodeNotFound     = NewDomainError(ErrCodePostalCodeNotFound, "Please enter a valid Canadian postal code (Format: A1A 1A1)")
)

// ValidationError reports per-field validation failures. It blocks
// progression but is always recoverable by correcting input.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Sprintf("validation failed: %s", strings.Join(names, ", "))
}

// NewValidationError creates a validation error with an empty field map.
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

// Add records a failure message for a field.
func (e *ValidationError) Add(field, message string) {
	e.Fields[field] = message
}

// HasErrors reports whether any field failed validation.
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// ErrOrNil returns the error if any field failed, nil otherwise.
func (e *ValidationError) ErrOrNil() error {
	if e.HasErrors() {
		return e
	}
	return nil
}
