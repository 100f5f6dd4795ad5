package ledger

import (
	"time"

	"github.com/praiadomeio/app-ampm/internal/models"
)

// CreateExpense appends an outflow to the cash book, stamped with its creator
func CreateExpense(expenses []models.Expense, input models.ExpenseInput, actor models.User, now time.Time) ([]models.Expense, models.Expense, error) {
	if !actor.Role.CanEdit() {
		return expenses, models.Expense{}, models.ErrForbidden
	}
	if !input.Category.IsValid() {
		return expenses, models.Expense{}, models.ErrInvalidCategory
	}
	if input.PaymentMethod != "" && !input.PaymentMethod.IsValid() {
		return expenses, models.Expense{}, models.ErrInvalidMethod
	}

	expense := models.Expense{
		ID:            newID(),
		Category:      input.Category,
		Description:   input.Description,
		Amount:        RoundCents(input.Amount),
		Date:          input.Date,
		PaymentMethod: input.PaymentMethod,
		CreatedByName: actor.Name,
		CreatedAt:     FormatTimestamp(now),
	}

	out := make([]models.Expense, 0, len(expenses)+1)
	out = append(out, expenses...)
	return append(out, expense), expense, nil
}
