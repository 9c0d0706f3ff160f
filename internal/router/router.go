package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/mazadclick/admin-access/internal/access"
	"github.com/mazadclick/admin-access/internal/config"
	"github.com/mazadclick/admin-access/internal/handler"
	"github.com/mazadclick/admin-access/internal/middleware"
	"github.com/mazadclick/admin-access/internal/model"
	"github.com/mazadclick/admin-access/internal/response"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth   *handler.AuthHandler
	Access *handler.AccessHandler
	User   *handler.UserHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	cfg *config.Config,
	log zerolog.Logger,
	sessions middleware.Sessions,
	users middleware.UserLookup,
	evaluator *access.Evaluator,
	handlers *Handlers,
	loginLimiter *middleware.RateLimiter,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(gin.Recovery())

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID", "Content-Disposition", "Retry-After"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Request ID first so the access log can carry it.
	router.Use(response.RequestIDMiddleware())
	router.Use(middleware.RequestLogger(log))

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Every authenticated route checks the token and that its role is current.
	requireSession := []gin.HandlerFunc{
		middleware.RequireJWT(sessions),
		middleware.RequireCurrentRole(users, sessions),
	}
	guard := middleware.NewGuard(evaluator)

	// ─── 1. Auth Group (Public login, Rate Limited) ────────────────────
	auth := router.Group("/api/v1/auth")
	{
		auth.POST("/login", loginLimiter.Middleware(), handlers.Auth.Login)

		session := auth.Group("", requireSession...)
		session.POST("/logout", handlers.Auth.Logout)
		session.GET("/me", handlers.Auth.Me)
	}

	// ─── 2. Access Group (JWT, any role) ───────────────────────────────
	accessAPI := router.Group("/api/v1/access")
	accessAPI.Use(requireSession...)
	{
		accessAPI.POST("/check", handlers.Access.Check)
		accessAPI.GET("/navigation", handlers.Access.Navigation)
		accessAPI.GET("/matrix",
			guard.RequirePermission(model.PermissionManageRoles),
			handlers.Access.Matrix,
		)
		accessAPI.GET("/matrix/export",
			guard.RequirePermission(model.PermissionExportReports),
			handlers.Access.ExportMatrix,
		)
	}

	// ─── 3. Admin Group (JWT + RBAC) ───────────────────────────────────
	adminAPI := router.Group("/api/v1/admin")
	adminAPI.Use(requireSession...)
	adminAPI.Use(middleware.RequireAdminPrivileges())
	{
		adminAPI.GET("/users",
			guard.RequirePermission(model.PermissionViewUsers),
			handlers.User.List,
		)
		adminAPI.PUT("/users/:id/role",
			guard.RequirePermission(model.PermissionManageRoles),
			handlers.User.UpdateRole,
		)
		adminAPI.DELETE("/users/:id",
			guard.RequirePermission(model.PermissionDeleteUsers),
			handlers.User.Delete,
		)
	}

	return router
}
