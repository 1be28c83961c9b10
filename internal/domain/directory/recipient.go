// Package directory reads user contact data maintained by the identity provider.
package directory

import (
	"context"
	"errors"
)

var ErrUserNotFound = errors.New("user not found")

type User struct {
	ID     uint
	Name   string
	Email  string
	Role   string
	Active bool
}

type Reader interface {
	GetUser(ctx context.Context, id uint) (*User, error)
	// ListActiveByRoles returns active users holding any of roles.
	ListActiveByRoles(ctx context.Context, roles ...string) ([]*User, error)
}
