package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/auth/domain/entities"
)

func TestRoleAccessAuthorize(t *testing.T) {
	tests := []struct {
		name    string
		allowed []entities.Role
		role    entities.Role
		wantErr bool
	}{
		{
			name:    "member role allowed",
			allowed: []entities.Role{entities.RoleAdmin},
			role:    entities.RoleAdmin,
		},
		{
			name:    "non-member rejected",
			allowed: []entities.Role{entities.RoleAdmin},
			role:    entities.RoleUser,
			wantErr: true,
		},
		{
			name:    "no hierarchy: admin rejected from moderator-only set",
			allowed: []entities.Role{entities.RoleModerator},
			role:    entities.RoleAdmin,
			wantErr: true,
		},
		{
			name:    "multi-role set admits each member",
			allowed: []entities.Role{entities.RoleAdmin, entities.RoleModerator},
			role:    entities.RoleModerator,
		},
		{
			name:    "empty set rejects everyone",
			allowed: nil,
			role:    entities.RoleAdmin,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			access := NewRoleAccess(tt.allowed...)
			err := access.Authorize(&entities.User{Role: tt.role})
			if tt.wantErr {
				require.ErrorIs(t, err, ErrAccessForbidden)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestRoleAccessNilUser(t *testing.T) {
	access := NewRoleAccess(entities.RoleAdmin)
	assert.ErrorIs(t, access.Authorize(nil), ErrAccessForbidden)
}
