package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/bricksandmortarstudio/idealpostcodes/internal/core/domain"
)

type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// RequestError is an error raised while handling an HTTP request.
type RequestError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]string
	Err        error
}

func (e *RequestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

const (
	ErrCodeInvalidInput = "INVALID_INPUT"
	ErrCodeInternal     = "INTERNAL_ERROR"
	ErrCodeTimeout      = "TIMEOUT"
)

func NewInvalidInputError(err error, details map[string]string) *RequestError {
	return &RequestError{
		Code:       ErrCodeInvalidInput,
		Message:    "Invalid input",
		HTTPStatus: http.StatusBadRequest,
		Details:    details,
		Err:        err,
	}
}

func NewInternalError(err error) *RequestError {
	return &RequestError{
		Code:       ErrCodeInternal,
		Message:    "An internal error occurred",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// BuildErrorResponse maps an error to a status code and response body.
func BuildErrorResponse(err error) (int, ErrorResponse) {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatus, ErrorResponse{
			Error: ErrorDetail{Code: reqErr.Code, Message: reqErr.Message, Details: reqErr.Details},
		}
	}

	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		status := http.StatusBadRequest
		if domainErr.Code == domain.ErrCodeUnknownVerifier {
			status = http.StatusNotFound
		}
		return status, ErrorResponse{
			Error: ErrorDetail{Code: domainErr.Code, Message: domainErr.Message},
		}
	}

	return http.StatusInternalServerError, ErrorResponse{
		Error: ErrorDetail{Code: ErrCodeInternal, Message: "An internal error occurred"},
	}
}

// WriteError writes err as a JSON error response. Server errors are logged.
func WriteError(w http.ResponseWriter, err error, logger *slog.Logger) {
	statusCode, response := BuildErrorResponse(err)
	if statusCode >= http.StatusInternalServerError {
		logger.Error("request failed", "error", err)
	}
	WriteJSON(w, statusCode, response)
}

func WriteJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}
