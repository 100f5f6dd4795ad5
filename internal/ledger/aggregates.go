package ledger

import (
	"time"

	"github.com/praiadomeio/app-ampm/internal/models"
)

// anyMonth disables the month scope of a sum
const anyMonth = -1

func sumPayments(payments []models.Payment, year, month int, status models.PaymentStatus) (total float64, count int) {
	for _, p := range payments {
		if p.Year != year || p.Status != status {
			continue
		}
		if month != anyMonth && p.Month != month {
			continue
		}
		total += p.Amount
		count++
	}
	return total, count
}

func sumExpenses(expenses []models.Expense, year, month int) float64 {
	var total float64
	for _, e := range expenses {
		if dateInPeriod(e.Date, year, month) {
			total += e.Amount
		}
	}
	return total
}

// PaidTotal sums the paid dues of a year
func PaidTotal(payments []models.Payment, year int) float64 {
	total, _ := sumPayments(payments, year, anyMonth, models.PaymentStatusPaid)
	return total
}

// PendingTotal sums the dues of a year recorded as pending
func PendingTotal(payments []models.Payment, year int) float64 {
	total, _ := sumPayments(payments, year, anyMonth, models.PaymentStatusPending)
	return total
}

// ExpenseTotal sums the expenses dated in a year
func ExpenseTotal(expenses []models.Expense, year int) float64 {
	return sumExpenses(expenses, year, anyMonth)
}

// Balance is the paid total of a year minus its expense total
func Balance(payments []models.Payment, expenses []models.Expense, year int) float64 {
	return PaidTotal(payments, year) - ExpenseTotal(expenses, year)
}

// FinancialSummary bundles the yearly KPIs
func FinancialSummary(payments []models.Payment, expenses []models.Expense, year int) models.FinancialSummary {
	paid := PaidTotal(payments, year)
	spent := ExpenseTotal(expenses, year)
	return models.FinancialSummary{
		Year:         year,
		PaidTotal:    paid,
		ExpenseTotal: spent,
		Balance:      paid - spent,
		PendingTotal: PendingTotal(payments, year),
	}
}

// MonthlySeries compares paid dues and expenses month by month
func MonthlySeries(payments []models.Payment, expenses []models.Expense, year int) [12]models.MonthlyFlow {
	var series [12]models.MonthlyFlow
	for month := 0; month < 12; month++ {
		in, _ := sumPayments(payments, year, month, models.PaymentStatusPaid)
		series[month] = models.MonthlyFlow{
			Month:    month,
			Name:     models.MonthShortName(month),
			Entradas: in,
			Saidas:   sumExpenses(expenses, year, month),
		}
	}
	return series
}

// CategoryBreakdown returns the share of each expense category in the yearly outflow,
// in the fixed category order. Percentages are zero when nothing was spent.
func CategoryBreakdown(expenses []models.Expense, year int) []models.CategoryShare {
	totals := make(map[models.ExpenseCategory]float64, len(models.ExpenseCategories))
	var overall float64
	for _, e := range expenses {
		if !dateInPeriod(e.Date, year, anyMonth) {
			continue
		}
		totals[e.Category] += e.Amount
		overall += e.Amount
	}

	shares := make([]models.CategoryShare, 0, len(models.ExpenseCategories))
	for _, c := range models.ExpenseCategories {
		share := models.CategoryShare{Category: c, Total: totals[c]}
		if overall > 0 {
			share.Percent = totals[c] / overall * 100
		}
		shares = append(shares, share)
	}
	return shares
}

// RollingSixMonth returns the paid dues of the six calendar months ending at now's month, oldest first
func RollingSixMonth(payments []models.Payment, now time.Time) []models.MonthTrend {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	trend := make([]models.MonthTrend, 0, 6)
	for back := 5; back >= 0; back-- {
		d := first.AddDate(0, -back, 0)
		month := int(d.Month()) - 1
		total, count := sumPayments(payments, d.Year(), month, models.PaymentStatusPaid)
		trend = append(trend, models.MonthTrend{
			Year:  d.Year(),
			Month: month,
			Name:  models.MonthShortName(month),
			Total: total,
			Count: count,
		})
	}
	return trend
}

// YearlyCollection returns the paid dues of each month of a year with the yearly total
// and the average over twelve months
func YearlyCollection(payments []models.Payment, year int) models.YearReport {
	report := models.YearReport{Year: year}
	for month := 0; month < 12; month++ {
		total, count := sumPayments(payments, year, month, models.PaymentStatusPaid)
		report.Months[month] = models.MonthTrend{
			Year:  year,
			Month: month,
			Name:  models.MonthShortName(month),
			Total: total,
			Count: count,
		}
		report.Total += total
	}
	report.AverageMonthly = report.Total / 12
	return report
}
