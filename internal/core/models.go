package core

import (
	"errors"
	"fmt"
)

var ErrInvalidRole error = errors.New("invalid role")

// Role is the closed set of account roles. Anything outside it is rejected
// at the boundary instead of travelling as a free-form string.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// ParseRole validates a role string. An empty role defaults to RoleUser.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleUser:
		return Role(s), nil
	case "":
		return RoleUser, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
}

// Identity is what the presentation layer gets to know about a user.
type Identity struct {
	ID       uint
	Username string
	Role     Role
}

type ProjectRecord struct {
	ID               uint
	OwnerID          uint
	Name             string
	Type             string
	StartDate        string
	EndDate          string
	Completed        bool
	AttachedFilePath string
}
