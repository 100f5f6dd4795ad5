package ledger

import (
	"github.com/praiadomeio/app-ampm/internal/auth"
	"github.com/praiadomeio/app-ampm/internal/models"
)

// VerifyActorPassword compares a re-entered password with the actor's stored credential hash
func VerifyActorPassword(actor models.User, password string) error {
	if !auth.CheckPassword(actor.Password, password) {
		return models.ErrInvalidPassword
	}
	return nil
}

// DeleteMember removes a member after the actor re-enters their password.
// Payments of the member are kept.
func DeleteMember(members []models.Member, id string, actor models.User, password string) ([]models.Member, error) {
	return deleteGated(members, id, func(m models.Member) string { return m.ID }, models.ErrMemberNotFound, actor, password)
}

// DeletePayment removes a dues record after the actor re-enters their password
func DeletePayment(payments []models.Payment, id string, actor models.User, password string) ([]models.Payment, error) {
	return deleteGated(payments, id, func(p models.Payment) string { return p.ID }, models.ErrPaymentNotFound, actor, password)
}

// DeleteExpense removes an expense after the actor re-enters their password
func DeleteExpense(expenses []models.Expense, id string, actor models.User, password string) ([]models.Expense, error) {
	return deleteGated(expenses, id, func(e models.Expense) string { return e.ID }, models.ErrExpenseNotFound, actor, password)
}

// DeleteUser removes a system account. It needs an explicit confirmation instead of a password.
// The bootstrap administrator can never be removed.
func DeleteUser(users []models.User, id string, actor models.User, confirmed bool) ([]models.User, error) {
	if id == models.BootstrapAdminID {
		return users, models.ErrProtectedUser
	}
	if !actor.Role.CanManageUsers() {
		return users, models.ErrForbidden
	}
	if !confirmed {
		return users, models.ErrNotConfirmed
	}
	idx := userIndex(users, id)
	if idx < 0 {
		return users, models.ErrUserNotFound
	}
	return without(users, idx), nil
}

// deleteGated returns a copy of items without the first record matching id.
// On any error the input slice is returned as is.
func deleteGated[T any](items []T, id string, idOf func(T) string, notFound error, actor models.User, password string) ([]T, error) {
	if !actor.Role.CanEdit() {
		return items, models.ErrForbidden
	}
	if err := VerifyActorPassword(actor, password); err != nil {
		return items, err
	}
	for i, item := range items {
		if idOf(item) == id {
			return without(items, i), nil
		}
	}
	return items, notFound
}

func without[T any](items []T, idx int) []T {
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:idx]...)
	return append(out, items[idx+1:]...)
}
