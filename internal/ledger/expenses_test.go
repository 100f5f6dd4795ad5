package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praiadomeio/app-ampm/internal/models"
)

func TestCreateExpense(t *testing.T) {
	actor := models.User{ID: "u1", Name: "Ana", Role: models.RoleEditor}
	now := time.Date(2024, time.March, 9, 10, 11, 12, 0, time.UTC)
	input := models.ExpenseInput{
		Category:      models.ExpenseCategoryUtilities,
		Description:   "Conta de luz",
		Amount:        87.35,
		Date:          "2024-03-08",
		PaymentMethod: models.PaymentMethodTransfer,
	}

	out, expense, err := CreateExpense(nil, input, actor, now)
	require.NoError(t, err)
	require.Len(t, out, 1)

	assert.NotEmpty(t, expense.ID)
	assert.Equal(t, "Ana", expense.CreatedByName)
	assert.Equal(t, "09/03/2024 10:11:12", expense.CreatedAt)
	assert.Equal(t, models.ExpenseCategoryUtilities, expense.Category)
	assert.Equal(t, 87.35, expense.Amount)

	_, expense, err = CreateExpense(out, models.ExpenseInput{Category: models.ExpenseCategoryOther, Description: "x", Amount: 0.1 + 0.2, Date: "2024-03-08"}, actor, now)
	require.NoError(t, err)
	assert.Equal(t, 0.3, expense.Amount)
}

func TestCreateExpense_Errors(t *testing.T) {
	editor := models.User{ID: "u1", Name: "Ana", Role: models.RoleEditor}
	viewer := models.User{ID: "u2", Name: "Vera", Role: models.RoleViewer}
	valid := models.ExpenseInput{Category: models.ExpenseCategoryOther, Description: "x", Amount: 1, Date: "2024-01-01"}

	_, _, err := CreateExpense(nil, valid, viewer, time.Now())
	assert.ErrorIs(t, err, models.ErrForbidden)

	bad := valid
	bad.Category = "Lazer"
	_, _, err = CreateExpense(nil, bad, editor, time.Now())
	assert.ErrorIs(t, err, models.ErrInvalidCategory)

	bad = valid
	bad.PaymentMethod = "Boleto"
	_, _, err = CreateExpense(nil, bad, editor, time.Now())
	assert.ErrorIs(t, err, models.ErrInvalidMethod)
}
