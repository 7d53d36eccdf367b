// Package errors provides application-level error types and utilities.
// The taxonomy mirrors the failure classes of the request pipeline:
// validation errors carry the client-safe localized message, while config
// and transport errors keep their detail server-side only.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrorTypeValidation ErrorType = "validation_error"
	ErrorTypeNotFound   ErrorType = "not_found"
	ErrorTypeConfig     ErrorType = "config_error"
	ErrorTypeTransport  ErrorType = "transport_error"
	ErrorTypeRateLimit  ErrorType = "rate_limited"
	ErrorTypeInternal   ErrorType = "internal_error"
)

// AppError represents an application error with additional context.
// Message is safe to show to the caller; Details is for logs only.
type AppError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Code    int       `json:"code"`
	Details string    `json:"details,omitempty"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(message string, details ...string) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: message,
		Code:    http.StatusBadRequest,
		Details: first(details),
	}
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(message string, details ...string) *AppError {
	return &AppError{
		Type:    ErrorTypeNotFound,
		Message: message,
		Code:    http.StatusNotFound,
		Details: first(details),
	}
}

// NewConfigError creates an error for absent or unusable configuration.
// Message must stay generic; the missing key belongs in Details.
func NewConfigError(message string, details ...string) *AppError {
	return &AppError{
		Type:    ErrorTypeConfig,
		Message: message,
		Code:    http.StatusInternalServerError,
		Details: first(details),
	}
}

// NewTransportError creates an error for SMTP verify/send failures
func NewTransportError(message string, details ...string) *AppError {
	return &AppError{
		Type:    ErrorTypeTransport,
		Message: message,
		Code:    http.StatusInternalServerError,
		Details: first(details),
	}
}

// NewRateLimitError creates an error for rejected over-limit requests
func NewRateLimitError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeRateLimit,
		Message: message,
		Code:    http.StatusTooManyRequests,
	}
}

// NewInternalError creates a new internal error
func NewInternalError(message string, details ...string) *AppError {
	return &AppError{
		Type:    ErrorTypeInternal,
		Message: message,
		Code:    http.StatusInternalServerError,
		Details: first(details),
	}
}

func first(details []string) string {
	if len(details) > 0 {
		return details[0]
	}
	return ""
}

// GetAppError extracts AppError from error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// IsValidationError checks if the error is a validation error
func IsValidationError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeValidation
}

// IsNotFoundError checks if the error is a not found error
func IsNotFoundError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeNotFound
}
