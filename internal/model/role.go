package model

// Role identifies a MazadClick account classification.
// The zero value means the role is unknown or absent.
type Role string

const (
	// RoleAdmin is a full administrator.
	RoleAdmin Role = "ADMIN"

	// RoleSousAdmin is a deputy administrator with a reduced set of admin actions.
	RoleSousAdmin Role = "SOUS_ADMIN"

	// RoleProfessional is a professional seller account.
	RoleProfessional Role = "PROFESSIONAL"

	// RoleReseller is a reseller account.
	RoleReseller Role = "RESELLER"

	// RoleClient is a regular buyer account.
	RoleClient Role = "CLIENT"
)

// AllRoles lists every known role from most to least privileged.
var AllRoles = []Role{
	RoleAdmin,
	RoleSousAdmin,
	RoleProfessional,
	RoleReseller,
	RoleClient,
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	for _, known := range AllRoles {
		if r == known {
			return true
		}
	}
	return false
}

func (r Role) String() string {
	return string(r)
}
