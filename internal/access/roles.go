package access

import "github.com/mazadclick/admin-access/internal/model"

// Capability is a coarse role trait used by the hierarchy predicates.
type Capability string

const (
	// CapAdminister marks roles with administrative privileges.
	CapAdminister Capability = "administer"

	// CapFullyAdminister marks roles with unrestricted administrative privileges.
	CapFullyAdminister Capability = "fully_administer"
)

var capabilities = map[model.Role][]Capability{
	model.RoleAdmin:     {CapAdminister, CapFullyAdminister},
	model.RoleSousAdmin: {CapAdminister},
}

// dominates lists, for each role, every role it is at or above.
// The table is closed under transitivity. PROFESSIONAL and RESELLER are
// incomparable.
var dominates = map[model.Role][]model.Role{
	model.RoleAdmin:        {model.RoleAdmin, model.RoleSousAdmin, model.RoleProfessional, model.RoleReseller, model.RoleClient},
	model.RoleSousAdmin:    {model.RoleSousAdmin, model.RoleProfessional, model.RoleReseller, model.RoleClient},
	model.RoleProfessional: {model.RoleProfessional, model.RoleClient},
	model.RoleReseller:     {model.RoleReseller, model.RoleClient},
	model.RoleClient:       {model.RoleClient},
}

// HasCapability reports whether role carries c.
func HasCapability(role model.Role, c Capability) bool {
	for _, have := range capabilities[role] {
		if have == c {
			return true
		}
	}
	return false
}

// IsFullAdmin reports whether role is a full administrator.
func IsFullAdmin(role model.Role) bool {
	return HasCapability(role, CapFullyAdminister)
}

// HasAdminPrivileges reports whether role is an administrator or a deputy.
func HasAdminPrivileges(role model.Role) bool {
	return HasCapability(role, CapAdminister)
}

// IsSousAdmin reports whether role is a deputy administrator.
func IsSousAdmin(role model.Role) bool {
	return role == model.RoleSousAdmin
}

// HasMinimumRole reports whether role is at or above minimum. Roles that are
// not ordered relative to each other compare false, as does any unknown role.
func HasMinimumRole(role, minimum model.Role) bool {
	for _, r := range dominates[role] {
		if r == minimum {
			return true
		}
	}
	return false
}
