package ledger

import "github.com/praiadomeio/app-ampm/internal/models"

// UpsertPayment records the payment form of a dues cell. When the cell already holds a payment the
// whole record is replaced, keeping only its id, so the editing actor becomes its author.
// Otherwise a new payment is appended.
func UpsertPayment(payments []models.Payment, input models.PaymentInput, actor models.User) ([]models.Payment, models.Payment, error) {
	if !actor.Role.CanEdit() {
		return payments, models.Payment{}, models.ErrForbidden
	}
	if input.Month == nil || *input.Month < 0 || *input.Month > 11 {
		return payments, models.Payment{}, models.ErrInvalidMonth
	}
	if input.PaymentMethod != "" && !input.PaymentMethod.IsValid() {
		return payments, models.Payment{}, models.ErrInvalidMethod
	}

	payment := models.Payment{
		MemberID:      input.MemberID,
		Month:         *input.Month,
		Year:          input.Year,
		Amount:        RoundCents(input.Amount),
		PaymentDate:   input.PaymentDate,
		Status:        input.Status,
		PaymentMethod: input.PaymentMethod,
		CreatedByName: actor.Name,
	}

	for i, p := range payments {
		if p.MemberID == payment.MemberID && p.Month == payment.Month && p.Year == payment.Year {
			payment.ID = p.ID
			out := append([]models.Payment(nil), payments...)
			out[i] = payment
			return out, payment, nil
		}
	}

	payment.ID = newID()
	out := make([]models.Payment, 0, len(payments)+1)
	out = append(out, payments...)
	return append(out, payment), payment, nil
}
