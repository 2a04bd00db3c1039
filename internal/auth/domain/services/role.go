package services

import (
	"errors"

	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/auth/domain/entities"
)

// ErrAccessForbidden is returned when an authenticated identity's role is
// not in the operation's allowed set.
var ErrAccessForbidden = errors.New("access forbidden")

// RoleAccess authorizes an identity against an explicit set of allowed
// roles. Sets are per operation; a moderator is never implicitly an admin.
type RoleAccess struct {
	allowed map[entities.Role]struct{}
}

// NewRoleAccess builds a role gate for the given allowed roles.
func NewRoleAccess(roles ...entities.Role) *RoleAccess {
	allowed := make(map[entities.Role]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}
	return &RoleAccess{allowed: allowed}
}

// Authorize returns ErrAccessForbidden unless the user's role is a member
// of the allowed set. Pure check, no side effects.
func (r *RoleAccess) Authorize(user *entities.User) error {
	if user == nil {
		return ErrAccessForbidden
	}
	if _, ok := r.allowed[user.Role]; !ok {
		return ErrAccessForbidden
	}
	return nil
}
