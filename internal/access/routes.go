package access

import (
	"strings"

	"github.com/mazadclick/admin-access/internal/model"
)

// Requirement is what a role needs to pass a route rule. Exactly one of the
// fields is set.
type Requirement struct {
	Permission      model.Permission
	AdminPrivileges bool
}

// RequirePermission returns a Requirement on a single permission.
func RequirePermission(p model.Permission) Requirement {
	return Requirement{Permission: p}
}

// RequireAdmin returns a Requirement on administrative privileges.
func RequireAdmin() Requirement {
	return Requirement{AdminPrivileges: true}
}

// RouteRule maps routes containing Fragment to a Requirement.
type RouteRule struct {
	Name     string
	Fragment string
	Require  Requirement
}

// Matches reports whether a normalized route falls under the rule.
func (r RouteRule) Matches(route string) bool {
	return r.Fragment != "" && strings.Contains(route, r.Fragment)
}

// DefaultRouteRules is the ordered route table of the console. The first
// matching rule decides.
var DefaultRouteRules = []RouteRule{
	{Name: "admin", Fragment: "/admin", Require: RequireAdmin()},
	{Name: "users", Fragment: "/users", Require: RequirePermission(model.PermissionViewUsers)},
	{Name: "identities", Fragment: "/identities", Require: RequirePermission(model.PermissionVerifyIdentities)},
	{Name: "categories", Fragment: "/categories", Require: RequirePermission(model.PermissionManageCategories)},
	{Name: "auctions", Fragment: "/auctions", Require: RequirePermission(model.PermissionViewAuctions)},
	{Name: "tenders", Fragment: "/tenders", Require: RequirePermission(model.PermissionViewTenders)},
	{Name: "chat", Fragment: "/chat", Require: RequirePermission(model.PermissionViewChat)},
	{Name: "communication", Fragment: "/communication", Require: RequirePermission(model.PermissionManageCommunications)},
	{Name: "reports", Fragment: "/reports", Require: RequirePermission(model.PermissionViewReports)},
	{Name: "documents", Fragment: "/documents", Require: RequirePermission(model.PermissionGenerateDocuments)},
	{Name: "subscription", Fragment: "/subscription", Require: RequirePermission(model.PermissionViewSubscriptions)},
	{Name: "terms", Fragment: "/terms", Require: RequirePermission(model.PermissionViewTerms)},
	{Name: "configuration", Fragment: "/configuration", Require: RequirePermission(model.PermissionViewConfiguration)},
	{Name: "dashboard", Fragment: "/dashboard", Require: RequirePermission(model.PermissionViewDashboard)},
}

// NormalizeRoute canonicalizes a console path for matching: it drops the
// query and fragment, lowercases, collapses repeated slashes and strips a
// trailing slash. Blank input yields "".
func NormalizeRoute(route string) string {
	route = strings.TrimSpace(route)
	if i := strings.IndexAny(route, "?#"); i >= 0 {
		route = route[:i]
	}
	if route == "" {
		return ""
	}
	route = strings.ToLower(route)

	var b strings.Builder
	b.Grow(len(route))
	prevSlash := false
	for _, ch := range route {
		if ch == '/' {
			if prevSlash {
				continue
			}
			prevSlash = true
		} else {
			prevSlash = false
		}
		b.WriteRune(ch)
	}
	route = b.String()

	if len(route) > 1 {
		route = strings.TrimSuffix(route, "/")
	}
	return route
}
