package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a business logic error
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *DomainError) Unwrap() error {
	return e.Err
}

const (
	ErrCodeInvalidCoordinates = "INVALID_COORDINATES"
	ErrCodeMissingAPIKey      = "MISSING_API_KEY"
	ErrCodeUnknownVerifier    = "UNKNOWN_VERIFIER"
	ErrCodeDuplicateVerifier  = "DUPLICATE_VERIFIER"
)

func NewInvalidCoordinatesError(lat, lng float64) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidCoordinates,
		Message: fmt.Sprintf("coordinates out of range: %f,%f", lat, lng),
	}
}

func NewMissingAPIKeyError() *DomainError {
	return &DomainError{
		Code:    ErrCodeMissingAPIKey,
		Message: "api key is required",
	}
}

func NewUnknownVerifierError(name string) *DomainError {
	return &DomainError{
		Code:    ErrCodeUnknownVerifier,
		Message: fmt.Sprintf("no verifier registered as %q", name),
	}
}

func NewDuplicateVerifierError(name string) *DomainError {
	return &DomainError{
		Code:    ErrCodeDuplicateVerifier,
		Message: fmt.Sprintf("verifier %q is already registered", name),
	}
}

// IsErrorCode checks if an error is a DomainError with a specific code
func IsErrorCode(err error, code string) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}
