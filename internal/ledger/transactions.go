package ledger

import (
	"sort"
	"strings"

	"github.com/praiadomeio/app-ampm/internal/models"
)

// Labels used when a transaction lacks the corresponding data
const (
	DuesCategory        = "Mensalidade"
	UnknownMemberLabel  = "Associado"
	UnknownMethodLabel  = "Não Inf."
	SystemOperatorLabel = "Sistema"
)

// UnifyTransactions merges paid dues and all expenses into one feed ordered by date, newest first.
// A payment whose member no longer exists is labelled with a generic placeholder.
func UnifyTransactions(payments []models.Payment, expenses []models.Expense, members []models.Member) []models.Transaction {
	names := make(map[string]string, len(members))
	for _, m := range members {
		if _, exists := names[m.ID]; !exists {
			names[m.ID] = m.Name
		}
	}

	feed := make([]models.Transaction, 0, len(payments)+len(expenses))
	for _, p := range payments {
		if p.Status != models.PaymentStatusPaid {
			continue
		}
		name, ok := names[p.MemberID]
		if !ok || name == "" {
			name = UnknownMemberLabel
		}
		feed = append(feed, models.Transaction{
			ID:            p.ID,
			Type:          models.TransactionIncome,
			Description:   "Mensalidade: " + name,
			Category:      DuesCategory,
			Amount:        p.Amount,
			AmountLabel:   FormatBRL(p.Amount),
			Date:          p.PaymentDate,
			PaymentMethod: methodLabel(p.PaymentMethod),
			User:          orDefault(p.CreatedByName, SystemOperatorLabel),
		})
	}
	for _, e := range expenses {
		feed = append(feed, models.Transaction{
			ID:            e.ID,
			Type:          models.TransactionExpense,
			Description:   e.Description,
			Category:      string(e.Category),
			Amount:        e.Amount,
			AmountLabel:   FormatBRL(e.Amount),
			Date:          e.Date,
			PaymentMethod: methodLabel(e.PaymentMethod),
			User:          e.CreatedByName,
		})
	}

	sort.SliceStable(feed, func(i, j int) bool {
		return feed[i].Date > feed[j].Date
	})
	return feed
}

// FilterTransactions applies the free-text and type filters to a feed.
// The search matches description, category, operator and payment method, ignoring case.
func FilterTransactions(feed []models.Transaction, filter models.TransactionFilter) []models.Transaction {
	term := strings.ToLower(strings.TrimSpace(filter.Search))
	out := make([]models.Transaction, 0, len(feed))
	for _, t := range feed {
		if filter.Type != "" && t.Type != filter.Type {
			continue
		}
		if term != "" &&
			!containsFold(t.Description, term) &&
			!containsFold(t.Category, term) &&
			!containsFold(t.User, term) &&
			!containsFold(t.PaymentMethod, term) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// SummarizeTransactions totals the inflows and outflows of a feed
func SummarizeTransactions(feed []models.Transaction) models.FeedTotals {
	var totals models.FeedTotals
	for _, t := range feed {
		switch t.Type {
		case models.TransactionIncome:
			totals.Income += t.Amount
		case models.TransactionExpense:
			totals.Expense += t.Amount
		}
	}
	totals.Balance = totals.Income - totals.Expense
	return totals
}

// BuildCashFlow returns the filtered feed with its totals
func BuildCashFlow(payments []models.Payment, expenses []models.Expense, members []models.Member, filter models.TransactionFilter) models.CashFlow {
	feed := FilterTransactions(UnifyTransactions(payments, expenses, members), filter)
	return models.CashFlow{
		Transactions: feed,
		Totals:       SummarizeTransactions(feed),
	}
}

func methodLabel(m models.PaymentMethod) string {
	return orDefault(string(m), UnknownMethodLabel)
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
