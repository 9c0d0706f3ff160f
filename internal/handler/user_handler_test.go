package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mazadclick/admin-access/internal/response"
	"github.com/mazadclick/admin-access/internal/service"
)

func TestFailUserErr(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		err    error
		status int
		code   response.ErrCode
	}{
		{service.ErrUserNotFound, http.StatusNotFound, response.ErrNotFound},
		{service.ErrEmailTaken, http.StatusConflict, response.ErrConflict},
		{service.ErrInvalidRole, http.StatusBadRequest, response.ErrValidation},
		{service.ErrSelfModification, http.StatusForbidden, response.ErrActionForbidden},
		{service.ErrRoleTooLow, http.StatusForbidden, response.ErrRoleTooLow},
		{service.ErrForbidden, http.StatusForbidden, response.ErrPermissionDenied},
		{fmt.Errorf("wrapped: %w", service.ErrRoleTooLow), http.StatusForbidden, response.ErrRoleTooLow},
		{errors.New("connection reset"), http.StatusInternalServerError, response.ErrInternal},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)
		c.Request = httptest.NewRequest(http.MethodPut, "/", nil)

		failUserErr(c, tt.err)

		assert.Equalf(t, tt.status, rec.Code, "error %v", tt.err)
		var body response.Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.NotNil(t, body.Error)
		assert.Equal(t, tt.code, body.Error.Code)
	}
}
