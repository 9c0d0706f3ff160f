package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mazadclick/admin-access/internal/model"
	"github.com/mazadclick/admin-access/internal/response"
	"github.com/mazadclick/admin-access/internal/service"
)

const (
	// ContextKeyClaims is the Gin context key for JWT claims.
	ContextKeyClaims = "claims"
)

// TokenValidator turns a bearer token into claims.
type TokenValidator interface {
	ValidateToken(ctx context.Context, tokenStr string) (*service.Claims, error)
}

// TokenRevoker signs out the session a token belongs to.
type TokenRevoker interface {
	Revoke(ctx context.Context, claims *service.Claims) error
}

// Sessions validates and revokes operator tokens.
type Sessions interface {
	TokenValidator
	TokenRevoker
}

// UserLookup loads the stored operator behind a token.
type UserLookup interface {
	GetByID(ctx context.Context, id int) (*model.User, error)
}

var errNoToken = errors.New("authorization header required")

// RequireJWT validates the bearer token and stores its claims on the context.
func RequireJWT(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := bearerToken(c)
		if err != nil {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenRequired)
			return
		}

		claims, err := validator.ValidateToken(c.Request.Context(), tokenStr)
		switch {
		case errors.Is(err, service.ErrTokenRevoked):
			response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenRevoked)
			return
		case errors.Is(err, service.ErrTokenInvalid):
			response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenInvalid)
			return
		case err != nil:
			_ = c.Error(err)
			response.AbortFail(c, http.StatusInternalServerError, response.ErrInternal)
			return
		}

		c.Set(ContextKeyClaims, claims)
		c.Next()
	}
}

// RequireCurrentRole rejects tokens whose role no longer matches the stored
// account, and tokens of deleted accounts. Stale tokens are revoked. It must
// run after RequireJWT.
func RequireCurrentRole(users UserLookup, revoker TokenRevoker) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenRequired)
			return
		}

		user, err := users.GetByID(c.Request.Context(), claims.UserID)
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			revokeStale(c, revoker, claims)
			return
		case err != nil:
			_ = c.Error(err)
			response.AbortFail(c, http.StatusInternalServerError, response.ErrInternal)
			return
		}

		if user.Role != claims.Role {
			revokeStale(c, revoker, claims)
			return
		}
		c.Next()
	}
}

func revokeStale(c *gin.Context, revoker TokenRevoker, claims *service.Claims) {
	if err := revoker.Revoke(c.Request.Context(), claims); err != nil {
		_ = c.Error(err)
	}
	response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenRevoked)
}

// GetClaims retrieves the JWT claims from the Gin context.
func GetClaims(c *gin.Context) *service.Claims {
	val, exists := c.Get(ContextKeyClaims)
	if !exists {
		return nil
	}
	claims, ok := val.(*service.Claims)
	if !ok {
		return nil
	}
	return claims
}

func bearerToken(c *gin.Context) (string, error) {
	authHeader := c.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", errNoToken
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", fmt.Errorf("empty bearer token: %w", errNoToken)
	}
	return token, nil
}
