package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	"github.com/mazadclick/admin-access/internal/config"
	"github.com/mazadclick/admin-access/internal/model"
)

// Common auth errors.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenRevoked       = errors.New("token has been revoked")
)

// Claims extends JWT standard claims with the operator identity.
type Claims struct {
	jwt.RegisteredClaims
	UserID int        `json:"user_id"`
	Role   model.Role `json:"role"`
}

// AuthService handles password checks, JWT issuing and session revocation.
type AuthService struct {
	cfg *config.Config
	rdb *redis.Client
	now func() time.Time

	dummyOnce sync.Once
	dummyHash []byte
}

// NewAuthService creates a new AuthService.
func NewAuthService(cfg *config.Config, rdb *redis.Client) *AuthService {
	return &AuthService{cfg: cfg, rdb: rdb, now: time.Now}
}

// HashPassword hashes a password with the configured bcrypt cost.
func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.BcryptCost)
	return string(hash), err
}

// CheckPassword compares a plaintext password against a bcrypt hash.
func (s *AuthService) CheckPassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// RejectUnknownUser spends the same bcrypt work as CheckPassword and always
// fails, so a login for an unknown email takes as long as a wrong password.
func (s *AuthService) RejectUnknownUser(password string) error {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = bcrypt.GenerateFromPassword([]byte("unknown-user-placeholder"), s.cfg.BcryptCost)
	})
	_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
	return ErrInvalidCredentials
}

// GenerateToken creates a JWT carrying the user's role and records its ID so
// every session of the user can be revoked at once.
func (s *AuthService) GenerateToken(ctx context.Context, user *model.User) (string, error) {
	jti := uuid.New().String()
	now := s.now()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Subject:   strconv.Itoa(user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.JWTExpiry)),
		},
		UserID: user.ID,
		Role:   user.Role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	key := config.CacheKey.UserTokensKey(user.ID)
	pipe := s.rdb.TxPipeline()
	pipe.SAdd(ctx, key, jti)
	pipe.Expire(ctx, key, s.cfg.JWTExpiry)
	if _, err := pipe.Exec(ctx); err != nil {
		return "", fmt.Errorf("record session: %w", err)
	}

	return signed, nil
}

// ValidateToken parses and validates a JWT and rejects revoked sessions.
func (s *AuthService) ValidateToken(ctx context.Context, tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.ID == "" {
		return nil, ErrTokenInvalid
	}

	revoked, err := s.rdb.Exists(ctx, config.CacheKey.RevokedTokenKey(claims.ID)).Result()
	if err != nil {
		return nil, fmt.Errorf("check revocation: %w", err)
	}
	if revoked > 0 {
		return nil, ErrTokenRevoked
	}

	return claims, nil
}

// Revoke signs out the session identified by claims until the token expires.
func (s *AuthService) Revoke(ctx context.Context, claims *Claims) error {
	ttl := time.Second
	if claims.ExpiresAt != nil {
		if left := claims.ExpiresAt.Sub(s.now()); left > ttl {
			ttl = left
		}
	}

	pipe := s.rdb.TxPipeline()
	pipe.Set(ctx, config.CacheKey.RevokedTokenKey(claims.ID), "1", ttl)
	pipe.SRem(ctx, config.CacheKey.UserTokensKey(claims.UserID), claims.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

// RevokeAllForUser signs out every live session of a user. Used when the
// user's role changes, since tokens carry the role they were issued with.
func (s *AuthService) RevokeAllForUser(ctx context.Context, userID int) error {
	key := config.CacheKey.UserTokensKey(userID)
	jtis, err := s.rdb.SMembers(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("list sessions: %w", err)
	}

	pipe := s.rdb.TxPipeline()
	for _, jti := range jtis {
		pipe.Set(ctx, config.CacheKey.RevokedTokenKey(jti), "1", s.cfg.JWTExpiry)
	}
	pipe.Del(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("revoke sessions: %w", err)
	}
	return nil
}
