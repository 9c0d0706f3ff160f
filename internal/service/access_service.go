package service

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mazadclick/admin-access/internal/access"
	"github.com/mazadclick/admin-access/internal/model"
)

// NavSource supplies the static navigation tree.
type NavSource interface {
	Items() ([]model.NavItem, error)
}

// MatrixRenderer renders the permission matrix as a document.
type MatrixRenderer interface {
	Workbook() ([]byte, error)
}

// AccessService answers access questions for authenticated operators.
type AccessService struct {
	evaluator *access.Evaluator
	nav       NavSource
	exporter  MatrixRenderer
	log       zerolog.Logger
}

// NewAccessService creates a new AccessService.
func NewAccessService(evaluator *access.Evaluator, nav NavSource, exporter MatrixRenderer, log zerolog.Logger) *AccessService {
	return &AccessService{evaluator: evaluator, nav: nav, exporter: exporter, log: log}
}

// Check decides a permission and/or route query for role. When both are
// given, access requires both.
func (s *AccessService) Check(role model.Role, req model.AccessCheckRequest) model.AccessCheckResponse {
	res := model.AccessCheckResponse{
		Role:       role,
		Permission: req.Permission,
		Route:      req.Route,
		Allowed:    true,
	}
	if req.Permission != "" {
		res.Allowed = s.evaluator.HasPermission(role, req.Permission)
	}
	if req.Route != "" {
		res.Allowed = res.Allowed && s.evaluator.CanAccessRoute(role, req.Route)
		res.Inactive = res.Allowed && access.IsNavItemInactive(role, req.Route)
	}

	s.log.Debug().
		Str("role", role.String()).
		Str("permission", string(req.Permission)).
		Str("route", req.Route).
		Bool("allowed", res.Allowed).
		Bool("inactive", res.Inactive).
		Msg("Access decision")

	return res
}

// Can reports whether role holds perm.
func (s *AccessService) Can(role model.Role, perm model.Permission) bool {
	return s.evaluator.HasPermission(role, perm)
}

// Permissions lists what role holds.
func (s *AccessService) Permissions(role model.Role) []model.Permission {
	return s.evaluator.Matrix().PermissionsFor(role)
}

// Navigation returns the navigation tree as role sees it.
func (s *AccessService) Navigation(role model.Role) ([]model.NavItem, error) {
	items, err := s.nav.Items()
	if err != nil {
		return nil, fmt.Errorf("load navigation: %w", err)
	}
	filtered := s.evaluator.FilterNavItems(items, role)
	if filtered == nil {
		filtered = []model.NavItem{}
	}
	return filtered, nil
}

// Matrix returns the full permission matrix.
func (s *AccessService) Matrix() []model.MatrixEntry {
	return s.evaluator.Matrix().Entries()
}

// ExportMatrix renders the permission matrix as an XLSX workbook.
func (s *AccessService) ExportMatrix() ([]byte, error) {
	body, err := s.exporter.Workbook()
	if err != nil {
		return nil, fmt.Errorf("export matrix: %w", err)
	}
	return body, nil
}
