package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mazadclick/admin-access/internal/middleware"
	"github.com/mazadclick/admin-access/internal/model"
	"github.com/mazadclick/admin-access/internal/response"
	"github.com/mazadclick/admin-access/internal/service"
	"github.com/mazadclick/admin-access/internal/validator"
)

// UserHandler manages operator accounts.
type UserHandler struct {
	service *service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service *service.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// List godoc
// GET /api/v1/admin/users?page=1&per_page=20
func (h *UserHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", strconv.Itoa(service.DefaultPerPage)))
	page, perPage = service.NormalizePage(page, perPage)

	users, total, err := h.service.List(c.Request.Context(), page, perPage)
	if err != nil {
		_ = c.Error(err)
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, users, response.NewPagination(page, perPage, total))
}

// UpdateRole godoc
// PUT /api/v1/admin/users/:id/role
func (h *UserHandler) UpdateRole(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.UpdateRoleRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	actor, ok := actorFrom(c)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	user, err := h.service.ChangeRole(c.Request.Context(), actor, id, req.Role)
	if err != nil {
		failUserErr(c, err)
		return
	}

	response.Success(c, http.StatusOK, user)
}

// Delete godoc
// DELETE /api/v1/admin/users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	actor, ok := actorFrom(c)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	if err := h.service.Delete(c.Request.Context(), actor, id); err != nil {
		failUserErr(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"id": id})
}

func actorFrom(c *gin.Context) (service.Actor, bool) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		return service.Actor{}, false
	}
	return service.Actor{ID: claims.UserID, Role: claims.Role}, true
}

func failUserErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	case errors.Is(err, service.ErrEmailTaken):
		response.Fail(c, http.StatusConflict, response.ErrConflict)
	case errors.Is(err, service.ErrInvalidRole):
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, map[string]string{"role": err.Error()})
	case errors.Is(err, service.ErrSelfModification):
		response.Fail(c, http.StatusForbidden, response.ErrActionForbidden)
	case errors.Is(err, service.ErrRoleTooLow):
		response.Fail(c, http.StatusForbidden, response.ErrRoleTooLow)
	case errors.Is(err, service.ErrForbidden):
		response.Fail(c, http.StatusForbidden, response.ErrPermissionDenied)
	default:
		_ = c.Error(err)
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}
