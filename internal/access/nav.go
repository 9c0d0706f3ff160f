package access

import (
	"strings"

	"github.com/mazadclick/admin-access/internal/model"
)

// Deputy administrators see these sections but cannot open them.
var sousAdminInactiveFragments = []string{"/admin", "/subscription", "/terms", "/configuration"}

// Admin pages a deputy administrator may still open.
var sousAdminAdminWhitelist = []string{"/admin/profile", "/admin/notifications"}

// IsNavItemInactive reports whether the navigation entry for route is shown
// to role but disabled. Only deputy administrators have disabled entries.
func IsNavItemInactive(role model.Role, route string) bool {
	if !IsSousAdmin(role) {
		return false
	}
	normalized := NormalizeRoute(route)
	if normalized == "" {
		return false
	}
	if strings.Contains(normalized, "/admin") {
		for _, allowed := range sousAdminAdminWhitelist {
			if hasSegmentPrefix(normalized, allowed) {
				return false
			}
		}
		return true
	}
	for _, frag := range sousAdminInactiveFragments {
		if strings.Contains(normalized, frag) {
			return true
		}
	}
	return false
}

// hasSegmentPrefix reports whether frag occurs in route ending on a path
// segment boundary, so "/admin/profile" matches "/x/admin/profile/edit" but
// not "/x/admin/profiles".
func hasSegmentPrefix(route, frag string) bool {
	return strings.Contains(route+"/", frag+"/")
}

// FilterNavItems returns the part of items role may see. The input tree is
// never modified; every retained node is a fresh copy. A retained node is
// marked inactive when IsNavItemInactive applies to its path. A parent whose
// children are all filtered out survives only if it is inactive.
func (e *Evaluator) FilterNavItems(items []model.NavItem, role model.Role) []model.NavItem {
	var out []model.NavItem
	for _, item := range items {
		if node, ok := e.filterNavItem(item, role); ok {
			out = append(out, node)
		}
	}
	return out
}

func (e *Evaluator) filterNavItem(item model.NavItem, role model.Role) (model.NavItem, bool) {
	if item.Path != "" && !e.CanAccessRoute(role, item.Path) {
		return model.NavItem{}, false
	}
	if item.AdminOnly && !IsFullAdmin(role) {
		return model.NavItem{}, false
	}
	if item.RequiresAdmin && !HasAdminPrivileges(role) {
		return model.NavItem{}, false
	}

	node := item
	node.Children = nil
	if item.Path != "" && IsNavItemInactive(role, item.Path) {
		node.Inactive = true
	}

	if len(item.Children) > 0 {
		node.Children = e.FilterNavItems(item.Children, role)
		if len(node.Children) == 0 && !node.Inactive {
			return model.NavItem{}, false
		}
	}
	return node, true
}
