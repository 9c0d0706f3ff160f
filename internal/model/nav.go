package model

// NavItem is a node of the console navigation tree.
type NavItem struct {
	Title         string    `json:"title" yaml:"title" validate:"required"`
	Path          string    `json:"path,omitempty" yaml:"path,omitempty" validate:"omitempty,startswith=/"`
	Icon          string    `json:"icon,omitempty" yaml:"icon,omitempty"`
	Children      []NavItem `json:"children,omitempty" yaml:"children,omitempty" validate:"dive"`
	AdminOnly     bool      `json:"admin_only,omitempty" yaml:"adminOnly,omitempty"`
	RequiresAdmin bool      `json:"requires_admin,omitempty" yaml:"requiresAdmin,omitempty"`
	// Inactive marks an item that is shown but cannot be opened.
	Inactive bool `json:"inactive,omitempty" yaml:"inactive,omitempty"`
}
