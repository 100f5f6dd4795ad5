package models

// ExpenseCategory classifies an outflow
type ExpenseCategory string

const (
	ExpenseCategoryMaintenance    ExpenseCategory = "Manutenção"
	ExpenseCategoryUtilities      ExpenseCategory = "Utilidades"
	ExpenseCategoryAdministrative ExpenseCategory = "Administrativo"
	ExpenseCategoryEvents         ExpenseCategory = "Eventos"
	ExpenseCategoryOther          ExpenseCategory = "Outros"
)

// ExpenseCategories lists the fixed categories in display order
var ExpenseCategories = []ExpenseCategory{
	ExpenseCategoryMaintenance,
	ExpenseCategoryUtilities,
	ExpenseCategoryAdministrative,
	ExpenseCategoryEvents,
	ExpenseCategoryOther,
}

// IsValid reports whether c is one of the fixed categories
func (c ExpenseCategory) IsValid() bool {
	for _, known := range ExpenseCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Expense is one outflow record of the cash book
type Expense struct {
	ID            string          `json:"id" bson:"_id" validate:"required"`
	Category      ExpenseCategory `json:"category" bson:"category" validate:"expense_category"`
	Description   string          `json:"description" bson:"description"`
	Amount        float64         `json:"amount" bson:"amount" validate:"gte=0"`
	Date          string          `json:"date" bson:"date" validate:"required,datetime=2006-01-02"`
	PaymentMethod PaymentMethod   `json:"paymentMethod,omitempty" bson:"payment_method,omitempty" validate:"omitempty,payment_method"`
	CreatedByName string          `json:"createdByName" bson:"created_by_name"`
	CreatedAt     string          `json:"createdAt" bson:"created_at"`
}

// ExpenseInput is the cash-flow form payload
type ExpenseInput struct {
	Category      ExpenseCategory `json:"category" binding:"required"`
	Description   string          `json:"description" binding:"required,max=500"`
	Amount        float64         `json:"amount" binding:"gt=0"`
	Date          string          `json:"date" binding:"required,datetime=2006-01-02"`
	PaymentMethod PaymentMethod   `json:"paymentMethod,omitempty"`
}
