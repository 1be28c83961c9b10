package auth

import (
	"github.com/polyforma/qualitrack/internal/shared/errors"
)

// Actor is the caller identity supplied by the identity provider.
type Actor struct {
	UserID uint
	Role   string
}

func (a Actor) IsAuthenticated() bool {
	return a.UserID != 0 && a.Role != ""
}

// Require fails with Unauthorized for anonymous callers and Forbidden when
// the role is not among roles. No roles means any authenticated caller.
func Require(actor Actor, roles ...string) error {
	if !actor.IsAuthenticated() {
		return errors.NewUnauthorizedError("authentication required")
	}
	if !HasAnyRole(actor.Role, roles...) {
		return errors.NewForbiddenError("role not allowed for this operation", actor.Role)
	}
	return nil
}
