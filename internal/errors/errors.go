package errors

import (
	"errors"
	"fmt"
)

// NewValidationError creates a new validation error
func NewValidationError(message string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: message,
		Code:    "VALIDATION_FAILED",
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(resource string, identifier string) *AppError {
	return &AppError{
		Type:    ErrorTypeNotFound,
		Message: fmt.Sprintf("%s not found: %s", resource, identifier),
		Code:    "NOT_FOUND",
		Context: map[string]interface{}{
			"resource":   resource,
			"identifier": identifier,
		},
	}
}

// NewDatabaseError creates a new database error
func NewDatabaseError(operation string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeDatabase,
		Message: fmt.Sprintf("database operation failed: %s", operation),
		Code:    "DATABASE_ERROR",
		Cause:   cause,
		Context: map[string]interface{}{
			"operation": operation,
		},
	}
}

// NewInvalidInputError creates a new invalid input error
func NewInvalidInputError(field string, value interface{}, reason string) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidInput,
		Message: fmt.Sprintf("invalid input for %s: %s", field, reason),
		Code:    "INVALID_INPUT",
		Context: map[string]interface{}{
			"field":  field,
			"value":  value,
			"reason": reason,
		},
	}
}

// NewSchedulingError creates a new notification scheduling error
func NewSchedulingError(identifier string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeScheduling,
		Message: fmt.Sprintf("notification scheduling failed: %s", identifier),
		Code:    "SCHEDULING_ERROR",
		Cause:   cause,
		Context: map[string]interface{}{
			"identifier": identifier,
		},
	}
}

// NewLocationError creates a new location/geocoding error
func NewLocationError(operation string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeLocation,
		Message: fmt.Sprintf("location operation failed: %s", operation),
		Code:    "LOCATION_ERROR",
		Cause:   cause,
		Context: map[string]interface{}{
			"operation": operation,
		},
	}
}

// NewNetworkError creates a new network connectivity error
func NewNetworkError(operation string) *AppError {
	return &AppError{
		Type:    ErrorTypeNetwork,
		Message: fmt.Sprintf("no network connection: %s requires connectivity", operation),
		Code:    "NETWORK_UNAVAILABLE",
		Context: map[string]interface{}{
			"operation": operation,
		},
	}
}

// WrapError wraps an existing error with additional context
func WrapError(err error, errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Code:    errorType.String(),
		Cause:   err,
		Context: make(map[string]interface{}),
	}
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsErrorType checks if the error is of the specified type
func IsErrorType(err error, errorType ErrorType) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.IsType(errorType)
	}
	return false
}

// GetUserMessage returns a user-friendly error message
func GetUserMessage(err error) string {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeValidation, ErrorTypeNotFound, ErrorTypeInvalidInput:
			return appErr.Message
		case ErrorTypeDatabase:
			return "A database error occurred. Please try again."
		case ErrorTypeScheduling:
			return "Could not schedule the notification."
		case ErrorTypeLocation:
			return "The location service is unavailable right now."
		case ErrorTypeNetwork:
			return "You are not connected to the internet. Please check your network settings."
		default:
			return "An unexpected error occurred. Please try again."
		}
	}
	return err.Error()
}

// GetErrorCode returns the error code for the error
func GetErrorCode(err error) string {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return "UNKNOWN_ERROR"
}

// ShouldLogError determines if an error should be logged based on its type
func ShouldLogError(err error) bool {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeValidation, ErrorTypeNotFound, ErrorTypeInvalidInput:
			return false // These are user errors, not system errors
		case ErrorTypeDatabase, ErrorTypeScheduling, ErrorTypeLocation, ErrorTypeNetwork:
			return true // These are system errors that should be logged
		default:
			return true
		}
	}
	return true // Unknown errors should be logged
}
