package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mazadclick/admin-access/internal/access"
	"github.com/mazadclick/admin-access/internal/model"
)

func TestIsNavItemInactive(t *testing.T) {
	tests := []struct {
		role  model.Role
		route string
		want  bool
	}{
		{model.RoleSousAdmin, "/dashboard/admin/profile", false},
		{model.RoleSousAdmin, "/dashboard/admin/profile/edit", false},
		{model.RoleSousAdmin, "/dashboard/admin/notifications", false},
		{model.RoleSousAdmin, "/dashboard/admin/profiles", true},
		{model.RoleSousAdmin, "/dashboard/admin/other", true},
		{model.RoleSousAdmin, "/dashboard/admin", true},
		{model.RoleSousAdmin, "/dashboard/subscription", true},
		{model.RoleSousAdmin, "/dashboard/terms", true},
		{model.RoleSousAdmin, "/dashboard/configuration", true},
		{model.RoleSousAdmin, "/dashboard/users", false},
		{model.RoleSousAdmin, "", false},
		{model.RoleClient, "/dashboard/subscription", false},
	}
	for _, tt := range tests {
		assert.Equalf(t, tt.want, access.IsNavItemInactive(tt.role, tt.route), "role %s route %q", tt.role, tt.route)
	}
}

func TestIsNavItemInactive_NeverForAdmin(t *testing.T) {
	for _, route := range []string{"/dashboard/admin/other", "/dashboard/subscription", "/dashboard/terms", "/dashboard/configuration", "/x"} {
		assert.False(t, access.IsNavItemInactive(model.RoleAdmin, route))
	}
}

func TestFilterNavItems_SousAdminKeepsInactiveAdminParent(t *testing.T) {
	items := []model.NavItem{{
		Title:    "Admin",
		Path:     "/dashboard/admin",
		Children: []model.NavItem{{Title: "Profile", Path: "/dashboard/admin/profile"}},
	}}

	got := access.FilterNavItems(items, model.RoleSousAdmin)

	require.Len(t, got, 1)
	assert.True(t, got[0].Inactive)
	require.Len(t, got[0].Children, 1)
	assert.Equal(t, "/dashboard/admin/profile", got[0].Children[0].Path)
	assert.False(t, got[0].Children[0].Inactive)
}

func TestFilterNavItems_RoleRules(t *testing.T) {
	items := sampleNav()

	admin := access.FilterNavItems(items, model.RoleAdmin)
	assert.Equal(t, []string{"Dashboard", "Users", "Settings", "Admins", "Subscription", "Marketplace"}, titles(admin))
	assert.Len(t, admin[1].Children, 3)
	for _, it := range admin {
		assert.False(t, it.Inactive, "admin item %s", it.Title)
	}

	sous := access.FilterNavItems(items, model.RoleSousAdmin)
	assert.Equal(t, []string{"Dashboard", "Users", "Settings", "Subscription"}, titles(sous))
	users := sous[1]
	assert.Equal(t, []string{"List", "Pending identities"}, titles(users.Children))
	settings := sous[2]
	assert.True(t, settings.Inactive)
	assert.Nil(t, settings.Children)
	assert.True(t, sous[3].Inactive)

	assert.Empty(t, access.FilterNavItems(items, model.RoleClient))
	assert.Empty(t, access.FilterNavItems(items, ""))
}

func TestFilterNavItems_DropsParentWithoutVisibleChildren(t *testing.T) {
	items := []model.NavItem{{
		Title: "Group",
		Children: []model.NavItem{
			{Title: "Roles", Path: "/dashboard/roles", AdminOnly: true},
		},
	}}
	assert.Empty(t, access.FilterNavItems(items, model.RoleSousAdmin))
	assert.Len(t, access.FilterNavItems(items, model.RoleAdmin), 1)
}

func TestFilterNavItems_Idempotent(t *testing.T) {
	for _, r := range append([]model.Role{""}, model.AllRoles...) {
		once := access.FilterNavItems(sampleNav(), r)
		twice := access.FilterNavItems(once, r)
		assert.Equal(t, once, twice, "role %q", r)
	}
}

func TestFilterNavItems_DoesNotMutateInput(t *testing.T) {
	items := sampleNav()
	snapshot := sampleNav()

	_ = access.FilterNavItems(items, model.RoleSousAdmin)
	_ = access.FilterNavItems(items, model.RoleAdmin)

	require.Equal(t, snapshot, items)

	// Filtering for one role must not leak into another role's view.
	admin := access.FilterNavItems(items, model.RoleAdmin)
	for _, it := range admin {
		assert.False(t, it.Inactive)
	}
}

func sampleNav() []model.NavItem {
	return []model.NavItem{
		{Title: "Dashboard", Path: "/dashboard"},
		{
			Title: "Users",
			Path:  "/dashboard/users",
			Children: []model.NavItem{
				{Title: "List", Path: "/dashboard/users/list"},
				{Title: "Pending identities", Path: "/dashboard/identities"},
				{Title: "Delete requests", Path: "/dashboard/users/deletions", AdminOnly: true},
			},
		},
		{
			Title: "Settings",
			Path:  "/dashboard/configuration",
			Children: []model.NavItem{
				{Title: "System", Path: "/dashboard/system", AdminOnly: true},
			},
		},
		{Title: "Admins", Path: "/dashboard/admins", AdminOnly: true},
		{Title: "Subscription", Path: "/dashboard/subscription", RequiresAdmin: true},
		{Title: "Marketplace", Path: "/marketplace", RequiresAdmin: true, AdminOnly: true},
	}
}

func titles(items []model.NavItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Title)
	}
	return out
}
