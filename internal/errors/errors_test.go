package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorConstructors(t *testing.T) {
	cause := fmt.Errorf("boom")

	tests := []struct {
		name     string
		err      *AppError
		errType  ErrorType
		code     string
		hasCause bool
	}{
		{"validation", NewValidationError("bad form", cause), ErrorTypeValidation, "VALIDATION_FAILED", true},
		{"not found", NewNotFoundError("task", "7"), ErrorTypeNotFound, "NOT_FOUND", false},
		{"database", NewDatabaseError("insert", cause), ErrorTypeDatabase, "DATABASE_ERROR", true},
		{"invalid input", NewInvalidInputError("lat", "x", "not a number"), ErrorTypeInvalidInput, "INVALID_INPUT", false},
		{"scheduling", NewSchedulingError("task-1", cause), ErrorTypeScheduling, "SCHEDULING_ERROR", true},
		{"location", NewLocationError("reverse geocode", cause), ErrorTypeLocation, "LOCATION_ERROR", true},
		{"network", NewNetworkError("place search"), ErrorTypeNetwork, "NETWORK_UNAVAILABLE", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.err.IsType(tt.errType))
			assert.Equal(t, tt.code, tt.err.Code)
			if tt.hasCause {
				assert.Equal(t, cause, errors.Unwrap(tt.err))
			}
		})
	}
}

func TestAsAppError_Wrapped(t *testing.T) {
	inner := NewNotFoundError("task", "9")
	wrapped := fmt.Errorf("outer: %w", inner)

	appErr, ok := AsAppError(wrapped)
	require.True(t, ok)
	assert.Equal(t, ErrorTypeNotFound, appErr.Type)
	assert.True(t, IsErrorType(wrapped, ErrorTypeNotFound))
}

func TestGetUserMessage(t *testing.T) {
	// User-facing error types surface their own message.
	notFound := NewNotFoundError("task", "3")
	assert.Equal(t, notFound.Message, GetUserMessage(notFound))

	// System errors get a generic message.
	db := NewDatabaseError("query", fmt.Errorf("disk full"))
	assert.Equal(t, "A database error occurred. Please try again.", GetUserMessage(db))

	network := NewNetworkError("place search")
	assert.Equal(t, "You are not connected to the internet. Please check your network settings.", GetUserMessage(network))

	plain := fmt.Errorf("plain error")
	assert.Equal(t, "plain error", GetUserMessage(plain))
}

func TestShouldLogError(t *testing.T) {
	assert.False(t, ShouldLogError(NewValidationError("bad", nil)))
	assert.False(t, ShouldLogError(NewNotFoundError("task", "1")))
	assert.True(t, ShouldLogError(NewDatabaseError("query", nil)))
	assert.True(t, ShouldLogError(NewSchedulingError("task-1", nil)))
	assert.True(t, ShouldLogError(NewNetworkError("search")))
	assert.True(t, ShouldLogError(fmt.Errorf("unknown")))
}

func TestWithContext(t *testing.T) {
	err := NewDatabaseError("query", nil).WithContext("table", "tasks")

	value, ok := err.GetContext("table")
	require.True(t, ok)
	assert.Equal(t, "tasks", value)
}
