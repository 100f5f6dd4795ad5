package models

// PaymentStatus is the state of a recorded dues payment
type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusPending PaymentStatus = "pending"
)

// PaymentMethod tags how money moved
type PaymentMethod string

const (
	PaymentMethodPix      PaymentMethod = "Pix"
	PaymentMethodCash     PaymentMethod = "Dinheiro"
	PaymentMethodDebit    PaymentMethod = "Cartão de Débito"
	PaymentMethodCredit   PaymentMethod = "Cartão de Crédito"
	PaymentMethodTransfer PaymentMethod = "Transferência"
	PaymentMethodOther    PaymentMethod = "Outro"
)

// PaymentMethods lists every accepted payment method
var PaymentMethods = []PaymentMethod{
	PaymentMethodPix,
	PaymentMethodCash,
	PaymentMethodDebit,
	PaymentMethodCredit,
	PaymentMethodTransfer,
	PaymentMethodOther,
}

// IsValid reports whether m is one of the accepted payment methods
func (m PaymentMethod) IsValid() bool {
	for _, known := range PaymentMethods {
		if m == known {
			return true
		}
	}
	return false
}

// DefaultDuesAmount is the amount suggested for a new dues record
const DefaultDuesAmount = 30.00

// Payment is one dues record for one member, one calendar month and one year.
// Month is zero-based (0 = January).
type Payment struct {
	ID            string        `json:"id" bson:"_id" validate:"required"`
	MemberID      string        `json:"memberId" bson:"member_id" validate:"required"`
	Month         int           `json:"month" bson:"month" validate:"min=0,max=11"`
	Year          int           `json:"year" bson:"year" validate:"required"`
	Amount        float64       `json:"amount" bson:"amount" validate:"gte=0"`
	PaymentDate   string        `json:"paymentDate" bson:"payment_date" validate:"omitempty,datetime=2006-01-02"`
	Status        PaymentStatus `json:"status" bson:"status" validate:"oneof=paid pending"`
	PaymentMethod PaymentMethod `json:"paymentMethod,omitempty" bson:"payment_method,omitempty" validate:"omitempty,payment_method"`
	CreatedByName string        `json:"createdByName,omitempty" bson:"created_by_name,omitempty"`
}

// PaymentInput is the payment form submitted for a dues matrix cell
type PaymentInput struct {
	MemberID      string        `json:"memberId" binding:"required"`
	Month         *int          `json:"month" binding:"required,min=0,max=11"`
	Year          int           `json:"year" binding:"required,min=1900,max=9999"`
	Amount        float64       `json:"amount" binding:"gte=0"`
	PaymentDate   string        `json:"paymentDate" binding:"required,datetime=2006-01-02"`
	Status        PaymentStatus `json:"status" binding:"required,oneof=paid pending"`
	PaymentMethod PaymentMethod `json:"paymentMethod,omitempty"`
}
