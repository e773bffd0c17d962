package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServiceError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ServiceError
		expected string
	}{
		{
			name: "error without underlying cause",
			err: &ServiceError{
				Code:    "test_error",
				Message: "test message",
			},
			expected: "test message",
		},
		{
			name: "error with underlying cause",
			err: &ServiceError{
				Code:    "test_error",
				Message: "test message",
				Err:     errors.New("underlying error"),
			},
			expected: "test message: underlying error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestServiceError_Unwrap(t *testing.T) {
	underlying := errors.New("underlying error")
	err := &ServiceError{
		Code:    "test_error",
		Message: "test message",
		Err:     underlying,
	}

	assert.Equal(t, underlying, err.Unwrap())
	assert.True(t, errors.Is(err, underlying))
}

func TestServiceError_NoUnwrap(t *testing.T) {
	err := &ServiceError{
		Code:    "test_error",
		Message: "test message",
	}

	assert.Nil(t, err.Unwrap())
}

func TestServiceError_Constructors(t *testing.T) {
	cause := errors.New("connection reset")

	tests := []struct {
		name        string
		err         *ServiceError
		wantCode    string
		wantMessage string
	}{
		{
			name:        "validation",
			err:         validationError(errors.New("name is required")),
			wantCode:    ErrCodeValidation,
			wantMessage: "name is required",
		},
		{
			name:        "not found",
			err:         accountNotFound(42),
			wantCode:    ErrCodeNotFound,
			wantMessage: "Account with id [42] could not be found.",
		},
		{
			name:        "internal",
			err:         internalError("failed to list accounts", cause),
			wantCode:    ErrCodeInternalError,
			wantMessage: "failed to list accounts",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, tt.err.Code)
			assert.Equal(t, tt.wantMessage, tt.err.Message)
		})
	}

	assert.ErrorIs(t, internalError("failed", cause), cause)
}
