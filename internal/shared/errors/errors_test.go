package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructors_MapToDistinctTypes(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		wantType ErrorType
		wantCode int
	}{
		{"validation", NewValidationError("bad"), ErrorTypeValidation, http.StatusBadRequest},
		{"not found", NewNotFoundError("missing"), ErrorTypeNotFound, http.StatusNotFound},
		{"conflict", NewConflictError("dup"), ErrorTypeConflict, http.StatusConflict},
		{"forbidden", NewForbiddenError("no"), ErrorTypeForbidden, http.StatusForbidden},
		{"unauthorized", NewUnauthorizedError("who"), ErrorTypeUnauthorized, http.StatusUnauthorized},
		{"internal", NewInternalError("boom"), ErrorTypeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantType, tt.err.Type)
			assert.Equal(t, tt.wantCode, tt.err.Code)
		})
	}
}

func TestPredicates_SeeThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("submit: %w", NewConflictError("lot already inspected"))

	assert.True(t, IsConflictError(wrapped))
	assert.False(t, IsValidationError(wrapped))
	assert.False(t, IsNotFoundError(wrapped))
	assert.True(t, IsAppError(wrapped))
	assert.Equal(t, "lot already inspected", GetAppError(wrapped).Message)
}

func TestAppError_ErrorIncludesDetails(t *testing.T) {
	err := NewValidationError("invalid production totals", "approved=900 rejected=200 produced=1000")

	assert.Equal(t, "validation_error: invalid production totals (approved=900 rejected=200 produced=1000)", err.Error())
	assert.Equal(t, "not_found: gone", NewNotFoundError("gone").Error())
}
