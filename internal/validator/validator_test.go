package validator

import (
	"errors"
	"testing"

	govalidator "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mazadclick/admin-access/internal/model"
)

func newValidator(t *testing.T) *govalidator.Validate {
	t.Helper()
	v := govalidator.New()
	v.SetTagName("binding")
	Register(v)
	return v
}

func TestRoleTag(t *testing.T) {
	v := newValidator(t)

	require.NoError(t, v.Struct(model.UpdateRoleRequest{Role: model.RoleReseller}))

	err := v.Struct(model.UpdateRoleRequest{Role: "ROOT"})
	require.Error(t, err)
	fields := TranslateErrors(err)
	assert.Equal(t, "role must be a known role", fields["role"])
}

func TestTranslateErrors_UsesJSONNames(t *testing.T) {
	v := newValidator(t)

	err := v.Struct(model.LoginRequest{Email: "not-an-email", Password: "123"})
	require.Error(t, err)

	fields := TranslateErrors(err)
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "password")
}

func TestAccessCheckRequest_NeedsPermissionOrRoute(t *testing.T) {
	v := newValidator(t)

	require.Error(t, v.Struct(model.AccessCheckRequest{}))
	require.NoError(t, v.Struct(model.AccessCheckRequest{Route: "/dashboard"}))
	require.NoError(t, v.Struct(model.AccessCheckRequest{Permission: model.PermissionViewUsers}))
}

func TestTranslateErrors_NonValidationError(t *testing.T) {
	fields := TranslateErrors(errors.New("unexpected EOF"))
	assert.Equal(t, map[string]string{"detail": "unexpected EOF"}, fields)
}
