package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/polyforma/qualitrack/internal/shared/errors"
)

func TestHasAnyRole(t *testing.T) {
	tests := []struct {
		name     string
		role     string
		required []string
		want     bool
	}{
		{"supervisor approves", RoleSupervisor, Approvers, true},
		{"admin approves", RoleAdministrator, Approvers, true},
		{"assistant cannot approve", RoleQualityAssistant, Approvers, false},
		{"management cannot approve", RoleManagement, Approvers, false},
		{"assistant edits", RoleQualityAssistant, QualityEditors, true},
		{"management cannot edit", RoleManagement, QualityEditors, false},
		{"any authenticated", RoleManagement, nil, true},
		{"anonymous", "", nil, false},
		{"case sensitive", "Supervisor", Approvers, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasAnyRole(tt.role, tt.required...))
		})
	}
}

func TestIsKnownRole(t *testing.T) {
	assert.True(t, IsKnownRole(RoleManagement))
	assert.False(t, IsKnownRole("operator"))
}

func TestRequire(t *testing.T) {
	assert.NoError(t, Require(Actor{UserID: 1, Role: RoleSupervisor}, Approvers...))
	assert.NoError(t, Require(Actor{UserID: 1, Role: RoleManagement}))

	err := Require(Actor{UserID: 1, Role: RoleQualityAssistant}, Approvers...)
	assert.True(t, errors.IsForbiddenError(err))

	err = Require(Actor{}, Approvers...)
	appErr := errors.GetAppError(err)
	if assert.NotNil(t, appErr) {
		assert.Equal(t, errors.ErrorTypeUnauthorized, appErr.Type)
	}
}
