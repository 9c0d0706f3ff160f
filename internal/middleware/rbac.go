package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mazadclick/admin-access/internal/access"
	"github.com/mazadclick/admin-access/internal/model"
	"github.com/mazadclick/admin-access/internal/response"
)

// Guard builds role checks against one evaluator, so route guards and
// access queries always agree.
type Guard struct {
	evaluator *access.Evaluator
}

// NewGuard creates a Guard for evaluator.
func NewGuard(evaluator *access.Evaluator) *Guard {
	return &Guard{evaluator: evaluator}
}

// RequirePermission lets the request through only if the caller's role holds perm.
func (g *Guard) RequirePermission(perm model.Permission) gin.HandlerFunc {
	return guard(response.ErrPermissionDenied, func(role model.Role) bool {
		return g.evaluator.HasPermission(role, perm)
	})
}

// RequireAnyPermission lets the request through if the caller's role holds at
// least one of perms.
func (g *Guard) RequireAnyPermission(perms ...model.Permission) gin.HandlerFunc {
	return guard(response.ErrPermissionDenied, func(role model.Role) bool {
		for _, p := range perms {
			if g.evaluator.HasPermission(role, p) {
				return true
			}
		}
		return false
	})
}

// RequireAdminPrivileges admits administrators and deputy administrators.
func RequireAdminPrivileges() gin.HandlerFunc {
	return guard(response.ErrAdminAccessOnly, access.HasAdminPrivileges)
}

// RequireFullAdmin admits full administrators only.
func RequireFullAdmin() gin.HandlerFunc {
	return guard(response.ErrFullAdminOnly, access.IsFullAdmin)
}

func guard(denied response.ErrCode, allow func(model.Role) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenRequired)
			return
		}
		if !allow(claims.Role) {
			response.AbortFail(c, http.StatusForbidden, denied)
			return
		}
		c.Next()
	}
}
