// Package access decides what a console operator may see and do.
//
// Every decision is a pure table lookup. Absent or unknown inputs are
// denied; no function in this package reports an error for a denial.
package access

import (
	"fmt"
	"sort"

	"github.com/mazadclick/admin-access/internal/model"
)

type roleSet map[model.Role]struct{}

// Matrix maps each permission to the set of roles allowed to hold it.
// A Matrix is immutable once built.
type Matrix struct {
	grants map[model.Permission]roleSet
}

// NewMatrix builds a Matrix from a permission → roles table.
// Every permission must name at least one known role.
func NewMatrix(table map[model.Permission][]model.Role) (Matrix, error) {
	grants := make(map[model.Permission]roleSet, len(table))
	for perm, roles := range table {
		if perm == "" {
			return Matrix{}, fmt.Errorf("empty permission name")
		}
		if len(roles) == 0 {
			return Matrix{}, fmt.Errorf("permission %s has no roles", perm)
		}
		set := make(roleSet, len(roles))
		for _, r := range roles {
			if !r.Valid() {
				return Matrix{}, fmt.Errorf("permission %s: unknown role %q", perm, r)
			}
			set[r] = struct{}{}
		}
		grants[perm] = set
	}
	return Matrix{grants: grants}, nil
}

// MustMatrix is like NewMatrix but panics on an invalid table.
func MustMatrix(table map[model.Permission][]model.Role) Matrix {
	m, err := NewMatrix(table)
	if err != nil {
		panic(err)
	}
	return m
}

// Lookup returns the roles holding perm in canonical role order.
// ok is false when the matrix does not know perm; callers must treat that as
// nobody holding it.
func (m Matrix) Lookup(perm model.Permission) (roles []model.Role, ok bool) {
	set, ok := m.grants[perm]
	if !ok {
		return nil, false
	}
	for _, r := range model.AllRoles {
		if _, held := set[r]; held {
			roles = append(roles, r)
		}
	}
	return roles, true
}

// Allows reports whether role holds perm.
func (m Matrix) Allows(perm model.Permission, role model.Role) bool {
	set, ok := m.grants[perm]
	if !ok {
		return false
	}
	_, held := set[role]
	return held
}

// Permissions returns every permission the matrix knows, sorted by name.
func (m Matrix) Permissions() []model.Permission {
	perms := make([]model.Permission, 0, len(m.grants))
	for p := range m.grants {
		perms = append(perms, p)
	}
	sort.Slice(perms, func(i, j int) bool { return perms[i] < perms[j] })
	return perms
}

// PermissionsFor returns the permissions held by role, sorted by name.
func (m Matrix) PermissionsFor(role model.Role) []model.Permission {
	perms := []model.Permission{}
	if role == "" {
		return perms
	}
	for _, p := range m.Permissions() {
		if m.Allows(p, role) {
			perms = append(perms, p)
		}
	}
	return perms
}

// Entries returns the whole matrix as a sorted list.
func (m Matrix) Entries() []model.MatrixEntry {
	perms := m.Permissions()
	entries := make([]model.MatrixEntry, 0, len(perms))
	for _, p := range perms {
		roles, _ := m.Lookup(p)
		entries = append(entries, model.MatrixEntry{Permission: p, Roles: roles})
	}
	return entries
}

var (
	admins    = []model.Role{model.RoleAdmin, model.RoleSousAdmin}
	adminOnly = []model.Role{model.RoleAdmin}
)

// DefaultMatrix is the MazadClick permission matrix.
var DefaultMatrix = MustMatrix(map[model.Permission][]model.Role{
	model.PermissionViewDashboard:        admins,
	model.PermissionViewUsers:            admins,
	model.PermissionCreateUsers:          admins,
	model.PermissionEditUsers:            admins,
	model.PermissionDeleteUsers:          adminOnly,
	model.PermissionVerifyIdentities:     admins,
	model.PermissionManageCategories:     admins,
	model.PermissionViewAuctions:         admins,
	model.PermissionManageAuctions:       admins,
	model.PermissionViewTenders:          admins,
	model.PermissionManageTenders:        admins,
	model.PermissionViewChat:             admins,
	model.PermissionManageCommunications: admins,
	model.PermissionViewReports:          admins,
	model.PermissionExportReports:        admins,
	model.PermissionGenerateDocuments:    admins,
	model.PermissionViewSubscriptions:    admins,
	model.PermissionManageSubscriptions:  adminOnly,
	model.PermissionViewTerms:            admins,
	model.PermissionManageTerms:          adminOnly,
	model.PermissionViewConfiguration:    admins,
	model.PermissionSystemConfiguration:  adminOnly,
	model.PermissionManageAdmins:         adminOnly,
	model.PermissionManageRoles:          adminOnly,
})
