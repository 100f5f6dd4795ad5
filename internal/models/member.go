package models

// Address represents the postal address of a household
type Address struct {
	Street       string `json:"street" bson:"street"`
	Number       string `json:"number" bson:"number"`
	Complement   string `json:"complement,omitempty" bson:"complement,omitempty"`
	Neighborhood string `json:"neighborhood" bson:"neighborhood"`
	ZipCode      string `json:"zipCode" bson:"zip_code"`
}

// Member represents a household/resident registered in the association
type Member struct {
	ID        string  `json:"id" bson:"_id" validate:"required"`
	Name      string  `json:"name" bson:"name" validate:"required"`
	CPF       string  `json:"cpf" bson:"cpf"`
	Email     string  `json:"email" bson:"email"`
	Phone     string  `json:"phone" bson:"phone"`
	Address   Address `json:"address" bson:"address"`
	JoinDate  string  `json:"joinDate" bson:"join_date"`
	BirthDate string  `json:"birthDate" bson:"birth_date"`
	Active    bool    `json:"active" bson:"active"`

	// Audit fields
	CreatedByID   string `json:"createdById,omitempty" bson:"created_by_id,omitempty"`
	CreatedByName string `json:"createdByName,omitempty" bson:"created_by_name,omitempty"`
	UpdatedByID   string `json:"updatedById,omitempty" bson:"updated_by_id,omitempty"`
	UpdatedByName string `json:"updatedByName,omitempty" bson:"updated_by_name,omitempty"`
	UpdatedAt     string `json:"updatedAt,omitempty" bson:"updated_at,omitempty"`
}

// MemberInput is the registration/edit form payload for a member.
// An empty ID means a new registration.
type MemberInput struct {
	ID        string  `json:"id,omitempty"`
	Name      string  `json:"name" binding:"required,max=200"`
	CPF       string  `json:"cpf" binding:"required,max=20"`
	Email     string  `json:"email" binding:"omitempty,email"`
	Phone     string  `json:"phone" binding:"max=30"`
	BirthDate string  `json:"birthDate" binding:"omitempty,datetime=2006-01-02"`
	Active    bool    `json:"active"`
	Address   Address `json:"address"`
}

// MemberStatusFilter narrows member listings by membership status
type MemberStatusFilter string

const (
	MemberStatusAll      MemberStatusFilter = "all"
	MemberStatusActive   MemberStatusFilter = "active"
	MemberStatusInactive MemberStatusFilter = "inactive"
)
