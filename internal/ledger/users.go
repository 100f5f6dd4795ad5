package ledger

import (
	"fmt"
	"strings"

	"github.com/praiadomeio/app-ampm/internal/auth"
	"github.com/praiadomeio/app-ampm/internal/models"
)

// Bootstrap account defaults
const (
	BootstrapAdminUsername = "admin"
	BootstrapAdminName     = "Administrador Geral"
	BootstrapAdminPassword = "123456"
)

// BootstrapAdmin builds the account created when no users were ever stored
func BootstrapAdmin(password string) (models.User, error) {
	if password == "" {
		password = BootstrapAdminPassword
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, err
	}
	return models.User{
		ID:       models.BootstrapAdminID,
		Username: BootstrapAdminUsername,
		Password: hash,
		Name:     BootstrapAdminName,
		Role:     models.RoleAdmin,
	}, nil
}

// Authenticate returns the account matching username whose credential hash matches password
func Authenticate(users []models.User, username, password string) (models.User, error) {
	for _, u := range users {
		if u.Username == username && auth.CheckPassword(u.Password, password) {
			return u, nil
		}
	}
	return models.User{}, models.ErrInvalidCredentials
}

// FindUser returns the account with the given id
func FindUser(users []models.User, id string) (models.User, bool) {
	if idx := userIndex(users, id); idx >= 0 {
		return users[idx], true
	}
	return models.User{}, false
}

// SearchUsers filters accounts by name or username, ignoring case
func SearchUsers(users []models.User, term string) []models.User {
	term = strings.ToLower(strings.TrimSpace(term))
	out := make([]models.User, 0, len(users))
	for _, u := range users {
		if term == "" || containsFold(u.Name, term) || containsFold(u.Username, term) {
			out = append(out, u)
		}
	}
	return out
}

// SaveUser creates an account (empty input ID) or edits one. Only administrators manage accounts.
// The password is hashed on creation; on edit it is rehashed only when a new one is given.
func SaveUser(users []models.User, input models.UserInput, actor models.User) ([]models.User, models.User, error) {
	if !actor.Role.CanManageUsers() {
		return users, models.User{}, models.ErrForbidden
	}
	for _, u := range users {
		if u.ID != input.ID && strings.EqualFold(u.Username, input.Username) {
			return users, models.User{}, models.ErrUsernameTaken
		}
	}

	if input.ID == "" {
		if input.Password == "" {
			return users, models.User{}, models.ErrPasswordRequired
		}
		hash, err := auth.HashPassword(input.Password)
		if err != nil {
			return users, models.User{}, err
		}
		user := models.User{
			ID:       newID(),
			Username: input.Username,
			Password: hash,
			Name:     input.Name,
			Role:     input.Role,
		}
		out := make([]models.User, 0, len(users)+1)
		out = append(out, users...)
		return append(out, user), user, nil
	}

	idx := userIndex(users, input.ID)
	if idx < 0 {
		return users, models.User{}, models.ErrUserNotFound
	}
	if input.ID == models.BootstrapAdminID && input.Role != models.RoleAdmin {
		return users, models.User{}, fmt.Errorf("%w: role must stay admin", models.ErrProtectedUser)
	}

	user := users[idx]
	user.Username = input.Username
	user.Name = input.Name
	user.Role = input.Role
	if input.Password != "" {
		hash, err := auth.HashPassword(input.Password)
		if err != nil {
			return users, models.User{}, err
		}
		user.Password = hash
	}

	out := append([]models.User(nil), users...)
	out[idx] = user
	return out, user, nil
}

// ChangePassword replaces the password of the signed-in account after checking the current one
func ChangePassword(users []models.User, actorID string, change models.PasswordChange) ([]models.User, error) {
	idx := userIndex(users, actorID)
	if idx < 0 {
		return users, models.ErrUserNotFound
	}
	if !auth.CheckPassword(users[idx].Password, change.CurrentPassword) {
		return users, models.ErrInvalidPassword
	}
	if change.NewPassword != change.ConfirmPassword {
		return users, models.ErrPasswordMismatch
	}
	if len([]rune(change.NewPassword)) < models.MinPasswordLength {
		return users, models.ErrPasswordTooShort
	}

	hash, err := auth.HashPassword(change.NewPassword)
	if err != nil {
		return users, err
	}
	out := append([]models.User(nil), users...)
	out[idx].Password = hash
	return out, nil
}

func userIndex(users []models.User, id string) int {
	for i, u := range users {
		if u.ID == id {
			return i
		}
	}
	return -1
}
