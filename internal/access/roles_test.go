package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mazadclick/admin-access/internal/access"
	"github.com/mazadclick/admin-access/internal/model"
)

func TestRolePredicates(t *testing.T) {
	tests := []struct {
		role      model.Role
		fullAdmin bool
		admin     bool
		sousAdmin bool
	}{
		{model.RoleAdmin, true, true, false},
		{model.RoleSousAdmin, false, true, true},
		{model.RoleProfessional, false, false, false},
		{model.RoleReseller, false, false, false},
		{model.RoleClient, false, false, false},
		{"", false, false, false},
		{"admin", false, false, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			assert.Equal(t, tt.fullAdmin, access.IsFullAdmin(tt.role))
			assert.Equal(t, tt.admin, access.HasAdminPrivileges(tt.role))
			assert.Equal(t, tt.sousAdmin, access.IsSousAdmin(tt.role))
		})
	}
}

func TestHasMinimumRole(t *testing.T) {
	tests := []struct {
		role, minimum model.Role
		want          bool
	}{
		{model.RoleAdmin, model.RoleAdmin, true},
		{model.RoleAdmin, model.RoleSousAdmin, true},
		{model.RoleAdmin, model.RoleClient, true},
		{model.RoleSousAdmin, model.RoleAdmin, false},
		{model.RoleSousAdmin, model.RoleReseller, true},
		{model.RoleProfessional, model.RoleClient, true},
		{model.RoleReseller, model.RoleClient, true},
		{model.RoleProfessional, model.RoleReseller, false},
		{model.RoleReseller, model.RoleProfessional, false},
		{model.RoleClient, model.RoleReseller, false},
		{"", model.RoleClient, false},
		{model.RoleAdmin, "", false},
		{"ROOT", "ROOT", false},
	}
	for _, tt := range tests {
		assert.Equalf(t, tt.want, access.HasMinimumRole(tt.role, tt.minimum), "%s >= %s", tt.role, tt.minimum)
	}
}

func TestHasMinimumRole_IsPartialOrder(t *testing.T) {
	for _, a := range model.AllRoles {
		assert.True(t, access.HasMinimumRole(a, a), "reflexive %s", a)
		for _, b := range model.AllRoles {
			if a != b && access.HasMinimumRole(a, b) {
				assert.False(t, access.HasMinimumRole(b, a), "antisymmetric %s %s", a, b)
			}
			for _, c := range model.AllRoles {
				if access.HasMinimumRole(a, b) && access.HasMinimumRole(b, c) {
					assert.True(t, access.HasMinimumRole(a, c), "transitive %s %s %s", a, b, c)
				}
			}
		}
	}
}

func TestHasMinimumRole_AdminPrivilegesImpliesSousAdminFloor(t *testing.T) {
	for _, r := range model.AllRoles {
		assert.Equal(t, access.HasAdminPrivileges(r), access.HasMinimumRole(r, model.RoleSousAdmin), "role %s", r)
	}
}
