package access

import "github.com/mazadclick/admin-access/internal/model"

// Evaluator answers access questions against one Matrix and route table.
// It holds no mutable state and is safe for concurrent use.
type Evaluator struct {
	matrix Matrix
	rules  []RouteRule
}

// NewEvaluator creates an Evaluator. The rule slice is copied.
func NewEvaluator(matrix Matrix, rules []RouteRule) *Evaluator {
	return &Evaluator{
		matrix: matrix,
		rules:  append([]RouteRule(nil), rules...),
	}
}

// Default evaluates against DefaultMatrix and DefaultRouteRules.
var Default = NewEvaluator(DefaultMatrix, DefaultRouteRules)

// Matrix returns the permission matrix the evaluator consults.
func (e *Evaluator) Matrix() Matrix {
	return e.matrix
}

// Rules returns a copy of the ordered route table.
func (e *Evaluator) Rules() []RouteRule {
	return append([]RouteRule(nil), e.rules...)
}

// HasPermission reports whether role holds perm. An empty role or
// permission is denied.
func (e *Evaluator) HasPermission(role model.Role, perm model.Permission) bool {
	if role == "" || perm == "" {
		return false
	}
	return e.matrix.Allows(perm, role)
}

// MatchRoute returns the first rule matching route after normalization.
func (e *Evaluator) MatchRoute(route string) (RouteRule, bool) {
	normalized := NormalizeRoute(route)
	if normalized == "" {
		return RouteRule{}, false
	}
	for _, rule := range e.rules {
		if rule.Matches(normalized) {
			return rule, true
		}
	}
	return RouteRule{}, false
}

// CanAccessRoute reports whether role may open route. Routes no rule covers
// are open to administrative roles only.
func (e *Evaluator) CanAccessRoute(role model.Role, route string) bool {
	if role == "" || NormalizeRoute(route) == "" {
		return false
	}
	rule, ok := e.MatchRoute(route)
	if !ok {
		return HasAdminPrivileges(role)
	}
	return e.satisfies(role, rule.Require)
}

func (e *Evaluator) satisfies(role model.Role, req Requirement) bool {
	if req.AdminPrivileges {
		return HasAdminPrivileges(role)
	}
	return e.HasPermission(role, req.Permission)
}

// HasPermission reports whether role holds perm in DefaultMatrix.
func HasPermission(role model.Role, perm model.Permission) bool {
	return Default.HasPermission(role, perm)
}

// CanAccessRoute reports whether role may open route under the default tables.
func CanAccessRoute(role model.Role, route string) bool {
	return Default.CanAccessRoute(role, route)
}

// FilterNavItems filters a navigation tree under the default tables.
func FilterNavItems(items []model.NavItem, role model.Role) []model.NavItem {
	return Default.FilterNavItems(items, role)
}
