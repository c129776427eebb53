package errors

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WrapMessageKeepsAppError(t *testing.T) {
	err := ErrUserNotFound.WrapMessage("user 42")

	var appErr AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
	assert.Equal(t, "USER_NOT_FOUND", appErr.ErrorCode())
	assert.Contains(t, err.Error(), "user 42")
}

func TestBaseError_CopiesDoNotMutateBase(t *testing.T) {
	custom := ErrValidationFailed.WithMessage("Invalid forum post data").WithDetails([]FieldError{{Field: "title"}})

	assert.Equal(t, "Invalid forum post data", custom.Message())
	assert.Equal(t, "Invalid request data", ErrValidationFailed.Message())
	assert.Nil(t, ErrValidationFailed.Details())
}

func TestNewValidationError(t *testing.T) {
	fields := []FieldError{{Field: "email", Rule: "email", Message: "email must be a valid email address"}}
	err := NewValidationError("", fields)

	assert.Equal(t, http.StatusBadRequest, err.HTTPCode())
	assert.Equal(t, "VALIDATION_FAILED", err.ErrorCode())
	assert.Equal(t, "Invalid request data", err.Message())
	assert.Equal(t, fields, err.Details())
}

func TestPersistenceError(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewPersistenceError(cause, "failed to create forum post")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "PERSISTENCE_FAILED", err.ErrorCode())
	assert.NotContains(t, err.Message(), "connection reset")
	assert.ErrorIs(t, err, cause)
}
