package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mazadclick/admin-access/internal/export"
	"github.com/mazadclick/admin-access/internal/middleware"
	"github.com/mazadclick/admin-access/internal/model"
	"github.com/mazadclick/admin-access/internal/response"
	"github.com/mazadclick/admin-access/internal/service"
	"github.com/mazadclick/admin-access/internal/validator"
)

const matrixFilename = "permission-matrix.xlsx"

// AccessHandler answers permission, route and navigation questions for the
// authenticated operator.
type AccessHandler struct {
	service *service.AccessService
}

// NewAccessHandler creates a new AccessHandler.
func NewAccessHandler(service *service.AccessService) *AccessHandler {
	return &AccessHandler{service: service}
}

// Check godoc
// POST /api/v1/access/check
func (h *AccessHandler) Check(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	var req model.AccessCheckRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	response.Success(c, http.StatusOK, h.service.Check(claims.Role, req))
}

// Navigation godoc
// GET /api/v1/access/navigation
func (h *AccessHandler) Navigation(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	items, err := h.service.Navigation(claims.Role)
	if err != nil {
		_ = c.Error(err)
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, items)
}

// Matrix godoc
// GET /api/v1/access/matrix
func (h *AccessHandler) Matrix(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"roles":       model.AllRoles,
		"permissions": h.service.Matrix(),
	})
}

// ExportMatrix godoc
// GET /api/v1/access/matrix/export
func (h *AccessHandler) ExportMatrix(c *gin.Context) {
	body, err := h.service.ExportMatrix()
	if err != nil {
		_ = c.Error(err)
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Attachment(c, matrixFilename, export.XLSXContentType, body)
}
