package handlers

import (
	"net/http"
	"testing"

	"github.com/praiadomeio/app-ampm/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	api := setupTestAPI(t)

	w := api.do(t, models.User{}, http.MethodPost, "/v1/auth/login", models.LoginRequest{Username: "ana", Password: "123456"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decode[models.LoginResponse](t, w)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, api.editor.ID, resp.User.ID)
	assert.Equal(t, models.RoleEditor, resp.User.Role)
	assert.NotContains(t, w.Body.String(), "$2a$")

	claims, err := api.tokens.Parse(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, api.editor.ID, claims.Subject)
}

func TestLogin_Failures(t *testing.T) {
	api := setupTestAPI(t)

	tests := []struct {
		name string
		body any
		want int
	}{
		{"missing password", map[string]string{"username": "ana"}, http.StatusBadRequest},
		{"wrong password", models.LoginRequest{Username: "ana", Password: "nope"}, http.StatusUnauthorized},
		{"unknown user", models.LoginRequest{Username: "zeca", Password: "123456"}, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := api.do(t, models.User{}, http.MethodPost, "/v1/auth/login", tt.body)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestLogin_RateLimited(t *testing.T) {
	api := setupTestAPI(t)
	wrong := models.LoginRequest{Username: "bia", Password: "wrong"}

	assert.Equal(t, http.StatusUnauthorized, api.do(t, models.User{}, http.MethodPost, "/v1/auth/login", wrong).Code)
	assert.Equal(t, http.StatusUnauthorized, api.do(t, models.User{}, http.MethodPost, "/v1/auth/login", wrong).Code)

	w := api.do(t, models.User{}, http.MethodPost, "/v1/auth/login", models.LoginRequest{Username: "bia", Password: "123456"})
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	// other accounts keep their own budget
	w = api.do(t, models.User{}, http.MethodPost, "/v1/auth/login", models.LoginRequest{Username: "ana", Password: "123456"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestProtectedRoutes_RequireToken(t *testing.T) {
	api := setupTestAPI(t)

	w := api.do(t, models.User{}, http.MethodGet, "/v1/members", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = api.do(t, api.viewer, http.MethodGet, "/v1/auth/me", nil)
	require.Equal(t, http.StatusOK, w.Code)
	me := decode[models.UserResponse](t, w)
	assert.Equal(t, "bia", me.Username)
	assert.Equal(t, "Visualizador", me.RoleLabel)
}

func TestChangePassword(t *testing.T) {
	api := setupTestAPI(t)

	w := api.do(t, api.editor, http.MethodPut, "/v1/auth/password", models.PasswordChange{
		CurrentPassword: "wrong", NewPassword: "abcdef", ConfirmPassword: "abcdef",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = api.do(t, api.editor, http.MethodPut, "/v1/auth/password", models.PasswordChange{
		CurrentPassword: "123456", NewPassword: "abcdef", ConfirmPassword: "abcdeg",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = api.do(t, api.editor, http.MethodPut, "/v1/auth/password", models.PasswordChange{
		CurrentPassword: "123456", NewPassword: "abc", ConfirmPassword: "abc",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = api.do(t, api.editor, http.MethodPut, "/v1/auth/password", models.PasswordChange{
		CurrentPassword: "123456", NewPassword: "abcdef", ConfirmPassword: "abcdef",
	})
	require.Equal(t, http.StatusNoContent, w.Code)

	w = api.do(t, models.User{}, http.MethodPost, "/v1/auth/login", models.LoginRequest{Username: "ana", Password: "abcdef"})
	assert.Equal(t, http.StatusOK, w.Code)
}
