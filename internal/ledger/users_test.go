package ledger

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praiadomeio/app-ampm/internal/auth"
	"github.com/praiadomeio/app-ampm/internal/models"
)

func TestBootstrapAdmin(t *testing.T) {
	admin, err := BootstrapAdmin("")
	require.NoError(t, err)

	assert.Equal(t, models.BootstrapAdminID, admin.ID)
	assert.Equal(t, "admin", admin.Username)
	assert.Equal(t, "Administrador Geral", admin.Name)
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.NotEqual(t, "123456", admin.Password)
	assert.True(t, auth.CheckPassword(admin.Password, "123456"))

	custom, err := BootstrapAdmin("outra-senha")
	require.NoError(t, err)
	assert.True(t, auth.CheckPassword(custom.Password, "outra-senha"))
}

func TestAuthenticate(t *testing.T) {
	users := []models.User{
		newTestUser(t, "admin", "Administrador Geral", models.RoleAdmin, "123456"),
		newTestUser(t, "maria", "Maria", models.RoleEditor, "maria123"),
	}

	u, err := Authenticate(users, "maria", "maria123")
	require.NoError(t, err)
	assert.Equal(t, "Maria", u.Name)

	_, err = Authenticate(users, "maria", "123456")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)

	_, err = Authenticate(users, "Maria", "maria123")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials, "usernames are case sensitive")

	_, err = Authenticate(nil, "admin", "123456")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
}

func TestSaveUser(t *testing.T) {
	admin := newTestUser(t, models.BootstrapAdminID, "Administrador Geral", models.RoleAdmin, "123456")
	users := []models.User{admin}

	users, created, err := SaveUser(users, models.UserInput{
		Username: "joao", Password: "joao123", Name: "João", Role: models.RoleViewer,
	}, admin)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.True(t, auth.CheckPassword(created.Password, "joao123"))
	assert.Equal(t, models.RoleViewer, created.Role)

	hash := created.Password
	users, edited, err := SaveUser(users, models.UserInput{
		ID: created.ID, Username: "joao", Name: "João Silva", Role: models.RoleEditor,
	}, admin)
	require.NoError(t, err)
	assert.Equal(t, hash, edited.Password, "empty password keeps the current hash")
	assert.Equal(t, models.RoleEditor, edited.Role)
	assert.Equal(t, "João Silva", users[1].Name)

	_, edited, err = SaveUser(users, models.UserInput{
		ID: created.ID, Username: "joao", Password: "nova-senha", Name: "João Silva", Role: models.RoleEditor,
	}, admin)
	require.NoError(t, err)
	assert.True(t, auth.CheckPassword(edited.Password, "nova-senha"))
}

func TestSaveUser_Errors(t *testing.T) {
	admin := newTestUser(t, models.BootstrapAdminID, "Administrador Geral", models.RoleAdmin, "123456")
	editor := newTestUser(t, "u2", "Eva", models.RoleEditor, "eva123")
	users := []models.User{admin, editor}

	tests := []struct {
		name  string
		input models.UserInput
		actor models.User
		want  error
	}{
		{"editor cannot manage", models.UserInput{Username: "x", Password: "x", Name: "X", Role: models.RoleViewer}, editor, models.ErrForbidden},
		{"username taken", models.UserInput{Username: "ADMIN", Password: "x", Name: "X", Role: models.RoleViewer}, admin, models.ErrUsernameTaken},
		{"password required", models.UserInput{Username: "novo", Name: "X", Role: models.RoleViewer}, admin, models.ErrPasswordRequired},
		{"unknown id", models.UserInput{ID: "nope", Username: "novo", Name: "X", Role: models.RoleViewer}, admin, models.ErrUserNotFound},
		{"password too long", models.UserInput{Username: "novo", Password: strings.Repeat("a", 100), Name: "X", Role: models.RoleViewer}, admin, models.ErrPasswordTooLong},
		{"new password too long on edit", models.UserInput{ID: "u2", Username: "eva", Password: strings.Repeat("a", 100), Name: "Eva", Role: models.RoleEditor}, admin, models.ErrPasswordTooLong},
		{"demote bootstrap admin", models.UserInput{ID: models.BootstrapAdminID, Username: "admin", Name: "A", Role: models.RoleViewer}, admin, models.ErrProtectedUser},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := SaveUser(users, tt.input, tt.actor)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, users, out)
		})
	}
}

func TestSearchUsers(t *testing.T) {
	users := []models.User{
		{ID: "1", Username: "admin", Name: "Administrador Geral"},
		{ID: "2", Username: "msouza", Name: "Maria Souza"},
	}

	assert.Len(t, SearchUsers(users, ""), 2)
	assert.Len(t, SearchUsers(users, "SOUZA"), 1)
	assert.Len(t, SearchUsers(users, "admin"), 1)
	assert.Empty(t, SearchUsers(users, "zzz"))
}

func TestChangePassword(t *testing.T) {
	users := []models.User{newTestUser(t, "u1", "Ana", models.RoleEditor, "antiga")}

	tests := []struct {
		name   string
		change models.PasswordChange
		want   error
	}{
		{"wrong current", models.PasswordChange{CurrentPassword: "x", NewPassword: "novasenha", ConfirmPassword: "novasenha"}, models.ErrInvalidPassword},
		{"mismatch", models.PasswordChange{CurrentPassword: "antiga", NewPassword: "novasenha", ConfirmPassword: "outra"}, models.ErrPasswordMismatch},
		{"too short", models.PasswordChange{CurrentPassword: "antiga", NewPassword: "12345", ConfirmPassword: "12345"}, models.ErrPasswordTooShort},
		{"too long", models.PasswordChange{CurrentPassword: "antiga", NewPassword: strings.Repeat("a", 100), ConfirmPassword: strings.Repeat("a", 100)}, models.ErrPasswordTooLong},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := ChangePassword(users, "u1", tt.change)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, users, out)
		})
	}

	_, err := ChangePassword(users, "ghost", models.PasswordChange{})
	assert.ErrorIs(t, err, models.ErrUserNotFound)

	out, err := ChangePassword(users, "u1", models.PasswordChange{CurrentPassword: "antiga", NewPassword: "123456", ConfirmPassword: "123456"})
	require.NoError(t, err)
	assert.True(t, auth.CheckPassword(out[0].Password, "123456"))
	assert.True(t, auth.CheckPassword(users[0].Password, "antiga"), "previous collection is untouched")
}
