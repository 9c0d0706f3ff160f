package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mazadclick/admin-access/internal/access"
	"github.com/mazadclick/admin-access/internal/model"
	"github.com/mazadclick/admin-access/internal/repository"
)

// User management errors.
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrEmailTaken       = errors.New("email already registered")
	ErrInvalidRole      = errors.New("unknown role")
	ErrSelfModification = errors.New("operators cannot change or delete their own account")
	ErrRoleTooLow       = errors.New("actor role does not dominate the target role")
	ErrForbidden        = errors.New("permission denied")
)

// UserStore is the persistence the user service needs.
type UserStore interface {
	GetByID(ctx context.Context, id int) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context, limit, offset int) ([]model.User, int, error)
	Create(ctx context.Context, u *model.User) error
	UpdateRole(ctx context.Context, id int, role model.Role) error
	Delete(ctx context.Context, id int) error
}

// SessionRevoker signs out every session of a user.
type SessionRevoker interface {
	RevokeAllForUser(ctx context.Context, userID int) error
}

// Actor is the authenticated operator performing a change.
type Actor struct {
	ID   int
	Role model.Role
}

// UserService handles business logic for operator accounts.
type UserService struct {
	store     UserStore
	revoker   SessionRevoker
	evaluator *access.Evaluator
	log       zerolog.Logger
}

// NewUserService creates a new UserService.
func NewUserService(store UserStore, revoker SessionRevoker, evaluator *access.Evaluator, log zerolog.Logger) *UserService {
	return &UserService{store: store, revoker: revoker, evaluator: evaluator, log: log}
}

// GetByID retrieves a user by ID.
func (s *UserService) GetByID(ctx context.Context, id int) (*model.User, error) {
	u, err := s.store.GetByID(ctx, id)
	return u, mapStoreErr(err)
}

// GetByEmail retrieves a user by email.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	u, err := s.store.GetByEmail(ctx, email)
	return u, mapStoreErr(err)
}

// Paging limits for user listings.
const (
	DefaultPerPage = 20
	MaxPerPage     = 100
)

// NormalizePage clamps listing parameters to the supported range.
func NormalizePage(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > MaxPerPage {
		perPage = DefaultPerPage
	}
	return page, perPage
}

// List returns one page of users. page starts at 1.
func (s *UserService) List(ctx context.Context, page, perPage int) ([]model.User, int, error) {
	page, perPage = NormalizePage(page, perPage)
	return s.store.List(ctx, perPage, (page-1)*perPage)
}

// Create registers a new user. The password must already be hashed.
func (s *UserService) Create(ctx context.Context, u *model.User) error {
	if !u.Role.Valid() {
		return ErrInvalidRole
	}
	if err := s.store.Create(ctx, u); err != nil {
		return mapStoreErr(err)
	}
	s.log.Info().Int("user_id", u.ID).Str("role", u.Role.String()).Msg("User created")
	return nil
}

// ChangeRole assigns role to the target user. The actor must hold
// MANAGE_ROLES and dominate both the target's current and new role.
func (s *UserService) ChangeRole(ctx context.Context, actor Actor, targetID int, role model.Role) (*model.User, error) {
	if !role.Valid() {
		return nil, ErrInvalidRole
	}
	target, err := s.authorizeChange(ctx, actor, targetID, model.PermissionManageRoles)
	if err != nil {
		return nil, err
	}
	if !access.HasMinimumRole(actor.Role, role) {
		return nil, ErrRoleTooLow
	}
	if target.Role == role {
		return target, nil
	}

	if err := s.store.UpdateRole(ctx, targetID, role); err != nil {
		return nil, mapStoreErr(err)
	}
	s.log.Info().
		Int("actor_id", actor.ID).
		Int("user_id", targetID).
		Str("from", target.Role.String()).
		Str("to", role.String()).
		Msg("User role changed")

	s.revokeSessions(ctx, targetID)

	target.Role = role
	return target, nil
}

// Delete removes the target user. The actor must hold DELETE_USERS and
// dominate the target's role.
func (s *UserService) Delete(ctx context.Context, actor Actor, targetID int) error {
	if _, err := s.authorizeChange(ctx, actor, targetID, model.PermissionDeleteUsers); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, targetID); err != nil {
		return mapStoreErr(err)
	}
	s.log.Info().Int("actor_id", actor.ID).Int("user_id", targetID).Msg("User deleted")

	s.revokeSessions(ctx, targetID)
	return nil
}

func (s *UserService) authorizeChange(ctx context.Context, actor Actor, targetID int, perm model.Permission) (*model.User, error) {
	if actor.ID == targetID {
		return nil, ErrSelfModification
	}
	if !s.evaluator.HasPermission(actor.Role, perm) {
		return nil, ErrForbidden
	}
	target, err := s.store.GetByID(ctx, targetID)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	if !access.HasMinimumRole(actor.Role, target.Role) {
		return nil, ErrRoleTooLow
	}
	return target, nil
}

// revokeSessions is best effort: the change is already stored, and stale
// tokens expire on their own.
func (s *UserService) revokeSessions(ctx context.Context, userID int) {
	if err := s.revoker.RevokeAllForUser(ctx, userID); err != nil {
		s.log.Error().Err(err).Int("user_id", userID).Msg("Failed to revoke sessions")
	}
}

func mapStoreErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound):
		return ErrUserNotFound
	case errors.Is(err, repository.ErrDuplicate):
		return ErrEmailTaken
	default:
		return fmt.Errorf("user store: %w", err)
	}
}
