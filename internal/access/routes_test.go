package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mazadclick/admin-access/internal/access"
	"github.com/mazadclick/admin-access/internal/model"
)

func TestNormalizeRoute(t *testing.T) {
	tests := map[string]string{
		"":                           "",
		"   ":                        "",
		"?tab=1":                     "",
		"/":                          "/",
		"/Dashboard/Users/":          "/dashboard/users",
		"//dashboard///admin":        "/dashboard/admin",
		" /dashboard/chat?id=4#last": "/dashboard/chat",
	}
	for in, want := range tests {
		assert.Equalf(t, want, access.NormalizeRoute(in), "input %q", in)
	}
}

func TestCanAccessRoute_AdminRoutesFollowAdminPrivileges(t *testing.T) {
	routes := []string{
		"/admin",
		"/dashboard/admin",
		"/dashboard/admin/profile",
		"/dashboard/admin/users",
		"/dashboard/ADMIN/settings?x=1",
	}
	for _, route := range routes {
		for _, r := range append(model.AllRoles, "") {
			assert.Equalf(t, access.HasAdminPrivileges(r), access.CanAccessRoute(r, route), "role %q route %s", r, route)
		}
	}
}

func TestCanAccessRoute_FeatureRoutes(t *testing.T) {
	tests := []struct {
		role  model.Role
		route string
		want  bool
	}{
		{model.RoleAdmin, "/dashboard/users", true},
		{model.RoleSousAdmin, "/dashboard/users", true},
		{model.RoleClient, "/dashboard/users", false},
		{model.RoleSousAdmin, "/dashboard/identities/pending", true},
		{model.RoleProfessional, "/dashboard/auctions", false},
		{model.RoleSousAdmin, "/dashboard/subscription", true},
		{model.RoleAdmin, "/dashboard/configuration", true},
		{model.RoleReseller, "/dashboard", false},
		{model.RoleSousAdmin, "/dashboard", true},
		{model.RoleAdmin, "/unknown/page", true},
		{model.RoleSousAdmin, "/unknown/page", true},
		{model.RoleClient, "/unknown/page", false},
		{model.RoleAdmin, "", false},
		{"", "/dashboard", false},
	}
	for _, tt := range tests {
		assert.Equalf(t, tt.want, access.CanAccessRoute(tt.role, tt.route), "role %q route %q", tt.role, tt.route)
	}
}

func TestMatchRoute_FirstRuleWins(t *testing.T) {
	rule, ok := access.Default.MatchRoute("/dashboard/admin/users")
	require.True(t, ok)
	assert.Equal(t, "admin", rule.Name)

	rule, ok = access.Default.MatchRoute("/dashboard/users/42")
	require.True(t, ok)
	assert.Equal(t, "users", rule.Name)

	rule, ok = access.Default.MatchRoute("/dashboard")
	require.True(t, ok)
	assert.Equal(t, "dashboard", rule.Name)

	_, ok = access.Default.MatchRoute("/settings")
	assert.False(t, ok)
}

func TestCanAccessRoute_CustomRuleTable(t *testing.T) {
	m := access.MustMatrix(map[model.Permission][]model.Role{
		model.PermissionViewChat: {model.RoleAdmin, model.RoleClient},
	})
	ev := access.NewEvaluator(m, []access.RouteRule{
		{Name: "chat", Fragment: "/chat", Require: access.RequirePermission(model.PermissionViewChat)},
	})

	assert.True(t, ev.CanAccessRoute(model.RoleClient, "/inbox/chat"))
	assert.False(t, ev.CanAccessRoute(model.RoleSousAdmin, "/inbox/chat"))
	assert.True(t, ev.CanAccessRoute(model.RoleSousAdmin, "/inbox"))
	assert.False(t, ev.CanAccessRoute(model.RoleClient, "/inbox"))
}

func TestEvaluator_RulesReturnsCopy(t *testing.T) {
	rules := access.Default.Rules()
	require.NotEmpty(t, rules)
	rules[0].Fragment = "/nothing"

	rule, ok := access.Default.MatchRoute("/admin")
	require.True(t, ok)
	assert.Equal(t, "admin", rule.Name)
}
