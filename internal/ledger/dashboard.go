package ledger

import (
	"time"

	"github.com/praiadomeio/app-ampm/internal/models"
)

// BuildDashboard computes the home screen KPIs at now.
// Pending counts active members without a paid record for the current month.
func BuildDashboard(members []models.Member, payments []models.Payment, now time.Time) models.Dashboard {
	year, month := now.Year(), int(now.Month())-1

	paidMembers := make(map[string]struct{})
	var received float64
	for _, p := range payments {
		if p.Year != year || p.Month != month || p.Status != models.PaymentStatusPaid {
			continue
		}
		received += p.Amount
		paidMembers[p.MemberID] = struct{}{}
	}

	dash := models.Dashboard{
		TotalMembers:           len(members),
		ReceivedThisMonth:      received,
		ReceivedThisMonthLabel: FormatBRL(received),
		Trend:                  RollingSixMonth(payments, now),
		Birthdays:              UpcomingBirthdays(members, now, BirthdayWindowDays),
	}
	for _, m := range members {
		if !m.Active {
			continue
		}
		dash.ActiveMembers++
		if _, paid := paidMembers[m.ID]; !paid {
			dash.PendingThisMonth++
		}
	}
	return dash
}

// BuildFinancePanel computes the yearly finance view
func BuildFinancePanel(payments []models.Payment, expenses []models.Expense, year int) models.FinancePanel {
	return models.FinancePanel{
		Summary:    FinancialSummary(payments, expenses, year),
		Monthly:    MonthlySeries(payments, expenses, year),
		Categories: CategoryBreakdown(expenses, year),
	}
}

// BuildReport computes the strategic report of a year
func BuildReport(members []models.Member, payments []models.Payment, year, recent int) models.Report {
	report := models.Report{
		Collection:     YearlyCollection(payments, year),
		TotalMembers:   len(members),
		TopOperators:   TopOperators(members, 5),
		RecentActivity: RecentActivity(members, recent),
	}
	for _, m := range members {
		if m.Active {
			report.ActiveMembers++
		}
	}
	return report
}
