// Package ledger is the reconciliation core of the association: the dues grid,
// the cash-flow feed, financial aggregates, audit rollups and the record
// mutations behind them. Every function takes record collections and returns
// values or new collections; inputs are never modified.
package ledger

import (
	"strings"

	"github.com/praiadomeio/app-ampm/internal/models"
)

type cellKey struct {
	memberID string
	month    int
}

// indexPayments maps (member, month) to the first payment of the year for that cell
func indexPayments(payments []models.Payment, year int) map[cellKey]models.Payment {
	index := make(map[cellKey]models.Payment)
	for _, p := range payments {
		if p.Year != year {
			continue
		}
		key := cellKey{memberID: p.MemberID, month: p.Month}
		if _, exists := index[key]; exists {
			continue
		}
		index[key] = p
	}
	return index
}

// BuildDuesMatrix builds the twelve-month dues grid of the given members for one year.
// Members keep their input order; members without any payment still get all twelve cells.
func BuildDuesMatrix(payments []models.Payment, year int, members []models.Member) models.DuesMatrix {
	index := indexPayments(payments, year)

	matrix := models.DuesMatrix{
		Year: year,
		Rows: make([]models.MatrixRow, 0, len(members)),
	}
	for _, m := range members {
		row := models.MatrixRow{MemberID: m.ID, MemberName: m.Name}
		for month := 0; month < 12; month++ {
			row.Cells[month] = models.MatrixCell{Month: month, State: models.CellEmpty}
			p, ok := index[cellKey{memberID: m.ID, month: month}]
			if !ok {
				continue
			}
			row.Cells[month].Payment = &p
			if p.Status == models.PaymentStatusPaid {
				row.Cells[month].State = models.CellPaid
			} else {
				row.Cells[month].State = models.CellPending
			}
		}
		matrix.Rows = append(matrix.Rows, row)
	}
	return matrix
}

// MatrixMembers returns the active members shown in the dues grid, filtered by name
func MatrixMembers(members []models.Member, search string) []models.Member {
	term := strings.ToLower(strings.TrimSpace(search))
	out := make([]models.Member, 0, len(members))
	for _, m := range members {
		if !m.Active {
			continue
		}
		if term != "" && !strings.Contains(strings.ToLower(m.Name), term) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// FindPayment returns the first payment recorded for a dues cell
func FindPayment(payments []models.Payment, memberID string, month, year int) (models.Payment, bool) {
	for _, p := range payments {
		if p.MemberID == memberID && p.Month == month && p.Year == year {
			return p, true
		}
	}
	return models.Payment{}, false
}

// BuildAuditSheet lists the paid dues of every active member for one year,
// members ordered by name
func BuildAuditSheet(payments []models.Payment, members []models.Member, year int) models.AuditSheet {
	active := make([]models.Member, 0, len(members))
	for _, m := range members {
		if m.Active {
			active = append(active, m)
		}
	}
	sortByName(active, func(m models.Member) string { return m.Name })

	index := indexPayments(payments, year)
	sheet := models.AuditSheet{
		Year:          year,
		ActiveMembers: len(active),
		Rows:          make([]models.AuditRow, 0, len(active)),
	}
	for _, m := range active {
		row := models.AuditRow{MemberID: m.ID, MemberName: m.Name}
		for month := 0; month < 12; month++ {
			p, ok := index[cellKey{memberID: m.ID, month: month}]
			if !ok || p.Status != models.PaymentStatusPaid {
				continue
			}
			row.Months[month].Paid = true
			if d, ok := parseISODate(p.PaymentDate); ok {
				row.Months[month].Day = d.Day()
			}
		}
		sheet.Rows = append(sheet.Rows, row)
	}
	return sheet
}
