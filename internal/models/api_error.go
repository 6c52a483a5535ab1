package models

import (
	"fmt"
	"net/http"
)

// ErrorCode is a string type for consistent error codes.
type ErrorCode string

// Predefined error codes for common API errors.
const (
	ErrorCodeBadRequest          ErrorCode = "bad_request"
	ErrorCodeConflict            ErrorCode = "conflict"
	ErrorCodeNotFound            ErrorCode = "not_found"
	ErrorCodeInternalServerError ErrorCode = "internal_server_error"
)

// APIError is the single error type returned by every service. Only the
// message is serialized; the code and status code drive the HTTP mapping
// at the boundary.
type APIError struct {
	Code       ErrorCode `json:"-"`
	Message    string    `json:"message"`
	StatusCode int       `json:"-"`
}

// Error makes APIError implement the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// NewAPIError is a constructor for APIError.
func NewAPIError(code ErrorCode, message string, statusCode int) *APIError {
	return &APIError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

// BadRequest flags malformed ids, failed field validation and missing
// referenced entities.
func BadRequest(message string) *APIError {
	return NewAPIError(ErrorCodeBadRequest, message, http.StatusBadRequest)
}

// Conflict flags uniqueness violations.
func Conflict(message string) *APIError {
	return NewAPIError(ErrorCodeConflict, message, http.StatusConflict)
}

// NotFound flags an absent target record.
func NotFound(message string) *APIError {
	return NewAPIError(ErrorCodeNotFound, message, http.StatusNotFound)
}

// Internal is the generic unclassified failure. The underlying cause is
// logged server-side and never included here.
func Internal() *APIError {
	return NewAPIError(ErrorCodeInternalServerError, "internal server error", http.StatusInternalServerError)
}

// DeleteResult confirms a delete: the removed id plus a human-readable
// message.
type DeleteResult struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}
