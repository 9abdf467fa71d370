// Package errors defines application-level error types that carry both an
// HTTP status code and a stable business error code for API responses.
package errors

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(cause error, message string) error {
	wrapped := e
	if cause != nil {
		wrapped = e.WithDetails(cause.Error())
	}

	return errors.Wrap(wrapped, message)
}

// NewMessage returns a copy of the error with a more specific message
func (e *BaseError) NewMessage(message string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   message,
		details:   e.details,
	}
}

// NewMessagef returns a copy of the error with a formatted message
func (e *BaseError) NewMessagef(format string, args ...any) *BaseError {
	return e.NewMessage(fmt.Sprintf(format, args...))
}

// Is reports whether target shares this error's business code, so
// predefined errors still match after NewMessage or WithDetails copies.
func (e *BaseError) Is(target error) bool {
	var appErr *BaseError
	if !errors.As(target, &appErr) {
		return false
	}

	return e.errorCode == appErr.errorCode
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"This email address is already registered",
		"",
	)

	ErrUserCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"USER_CREATION_FAILED",
		"Failed to create user",
		"",
	)

	ErrUserUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"USER_UPDATE_FAILED",
		"Failed to update user",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Incorrect email or password",
		"",
	)

	ErrRefreshTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_INVALID",
		"Invalid or expired refresh token",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Failed to process password",
		"",
	)

	ErrPasswordStrength = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_STRENGTH",
		"Password does not meet the strength requirements",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Request validation failed",
		"",
	)

	// Generic resource errors
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"You do not have permission to perform this action",
		"",
	)

	// Provider-related errors
	ErrProviderNotFound = NewBaseError(
		http.StatusNotFound,
		"PROVIDER_NOT_FOUND",
		"Provider not found",
		"",
	)

	ErrProviderExists = NewBaseError(
		http.StatusConflict,
		"PROVIDER_EXISTS",
		"This account already has a provider listing",
		"",
	)

	ErrProviderRequestPending = NewBaseError(
		http.StatusConflict,
		"PROVIDER_REQUEST_PENDING",
		"A provider application for this account is already under review",
		"",
	)

	ErrProviderRequestClosed = NewBaseError(
		http.StatusConflict,
		"PROVIDER_REQUEST_CLOSED",
		"This provider application has already been reviewed",
		"",
	)

	ErrProviderSuspended = NewBaseError(
		http.StatusForbidden,
		"PROVIDER_SUSPENDED",
		"This provider listing is suspended",
		"",
	)

	// Booking-related errors
	ErrBookingNotFound = NewBaseError(
		http.StatusNotFound,
		"BOOKING_NOT_FOUND",
		"Booking not found",
		"",
	)

	ErrBookingEmpty = NewBaseError(
		http.StatusBadRequest,
		"BOOKING_EMPTY",
		"A booking must include at least one service",
		"",
	)

	ErrBookingStateConflict = NewBaseError(
		http.StatusConflict,
		"BOOKING_STATE_CONFLICT",
		"The booking is not in a state that allows this action",
		"",
	)

	ErrOfferingNotFound = NewBaseError(
		http.StatusNotFound,
		"OFFERING_NOT_FOUND",
		"Service not found",
		"",
	)

	ErrOfferingInactive = NewBaseError(
		http.StatusConflict,
		"OFFERING_INACTIVE",
		"This service is no longer offered",
		"",
	)

	// Review-related errors
	ErrReviewExists = NewBaseError(
		http.StatusConflict,
		"REVIEW_EXISTS",
		"This booking has already been reviewed",
		"",
	)

	ErrReviewNotAllowed = NewBaseError(
		http.StatusConflict,
		"REVIEW_NOT_ALLOWED",
		"Only completed bookings can be reviewed",
		"",
	)

	// Upload-related errors
	ErrFileTooLarge = NewBaseError(
		http.StatusRequestEntityTooLarge,
		"FILE_TOO_LARGE",
		"The uploaded file exceeds the size limit",
		"",
	)

	ErrUnsupportedFileType = NewBaseError(
		http.StatusBadRequest,
		"UNSUPPORTED_FILE_TYPE",
		"The uploaded file type is not supported",
		"",
	)

	ErrUploadFailed = NewBaseError(
		http.StatusInternalServerError,
		"UPLOAD_FAILED",
		"Failed to store the uploaded file",
		"",
	)
)

// NewDatabaseExecuteError wraps an unexpected database error as a generic
// internal AppError, preserving the cause for logs.
func NewDatabaseExecuteError(err error, message string) error {
	return errors.Wrap(NewBaseError(
		http.StatusInternalServerError,
		"DATABASE_ERROR",
		message,
		err.Error(),
	), message)
}
