package models

// Role is the permission level of a system account
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
	RoleViewer Role = "viewer"
)

// Label returns the display label used in the navigation shell
func (r Role) Label() string {
	switch r {
	case RoleAdmin:
		return "Acesso Total"
	case RoleEditor:
		return "Editor"
	case RoleViewer:
		return "Visualizador"
	default:
		return string(r)
	}
}

// CanEdit reports whether the role may create, edit or delete members, payments and expenses
func (r Role) CanEdit() bool {
	return r == RoleAdmin || r == RoleEditor
}

// CanManageUsers reports whether the role may manage system accounts
func (r Role) CanManageUsers() bool {
	return r == RoleAdmin
}

// BootstrapAdminID is the id of the account created on first start. It can never be deleted.
const BootstrapAdminID = "admin"

// User is a system account. Password holds a bcrypt hash, never the plaintext.
type User struct {
	ID       string `json:"id" bson:"_id" validate:"required"`
	Username string `json:"username" bson:"username" validate:"required"`
	Password string `json:"password" bson:"password" validate:"required"`
	Name     string `json:"name" bson:"name" validate:"required"`
	Role     Role   `json:"role" bson:"role" validate:"oneof=admin editor viewer"`
}

// UserResponse is the public view of a User
type UserResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Name      string `json:"name"`
	Role      Role   `json:"role"`
	RoleLabel string `json:"roleLabel"`
}

// ToResponse strips the credential hash from the account
func (u User) ToResponse() UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Name:      u.Name,
		Role:      u.Role,
		RoleLabel: u.Role.Label(),
	}
}

// UserInput is the account management form. Password may be empty on edit to keep the current one.
type UserInput struct {
	ID       string `json:"id,omitempty"`
	Username string `json:"username" binding:"required,max=100"`
	Password string `json:"password" binding:"omitempty,max=72"`
	Name     string `json:"name" binding:"required,max=200"`
	Role     Role   `json:"role" binding:"required,oneof=admin editor viewer"`
}

// PasswordChange is the settings form for the signed-in account
type PasswordChange struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,max=72"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

// MinPasswordLength is the shortest password accepted on change
const MinPasswordLength = 6

// MaxPasswordBytes is the longest password bcrypt can hash
const MaxPasswordBytes = 72
