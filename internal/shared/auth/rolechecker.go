// Package auth holds role names and the capability check every use case runs first.
package auth

const (
	RoleSupervisor       = "supervisor"
	RoleAdministrator    = "administrador"
	RoleQualityAssistant = "asistente_calidad"
	RoleManagement       = "gerencia"
)

var (
	// QualityEditors may submit inspections, request certificates and work non-conformities.
	QualityEditors = []string{RoleQualityAssistant, RoleSupervisor, RoleAdministrator}
	// Approvers may decide certificates and close alerts.
	Approvers = []string{RoleSupervisor, RoleAdministrator}
)

// HasAnyRole reports whether actorRole is one of required.
// An empty required list admits any non-empty role.
func HasAnyRole(actorRole string, required ...string) bool {
	if actorRole == "" {
		return false
	}
	if len(required) == 0 {
		return true
	}
	for _, role := range required {
		if role == actorRole {
			return true
		}
	}
	return false
}

// IsKnownRole reports whether role is one of the four roles the engine recognises.
func IsKnownRole(role string) bool {
	switch role {
	case RoleSupervisor, RoleAdministrator, RoleQualityAssistant, RoleManagement:
		return true
	}
	return false
}
