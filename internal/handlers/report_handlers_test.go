package handlers

import (
	"net/http"
	"testing"

	"github.com/praiadomeio/app-ampm/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedLedger registers one member with paid March dues and one March expense
func seedLedger(t *testing.T, api *testAPI) models.Member {
	t.Helper()
	member := api.createMember(t, "Maria")

	w := api.do(t, api.editor, http.MethodPut, "/v1/payments/cell", march(member.ID, models.PaymentStatusPaid))
	require.Equal(t, http.StatusOK, w.Code)

	w = api.do(t, api.editor, http.MethodPost, "/v1/expenses", models.ExpenseInput{
		Category: models.ExpenseCategoryEvents, Description: "Festa junina", Amount: 10, Date: "2024-03-20",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	return member
}

func TestFinancePanel(t *testing.T) {
	api := setupTestAPI(t)
	seedLedger(t, api)

	w := api.do(t, api.viewer, http.MethodGet, "/v1/finance?year=2024", nil)
	require.Equal(t, http.StatusOK, w.Code)
	panel := decode[models.FinancePanel](t, w)
	assert.Equal(t, 30.0, panel.Summary.PaidTotal)
	assert.Equal(t, 10.0, panel.Summary.ExpenseTotal)
	assert.Equal(t, 20.0, panel.Summary.Balance)
	assert.Equal(t, 30.0, panel.Monthly[2].Entradas)
	assert.Equal(t, 10.0, panel.Monthly[2].Saidas)

	w = api.do(t, api.viewer, http.MethodGet, "/v1/finance?year=2023", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Zero(t, decode[models.FinancePanel](t, w).Summary.PaidTotal)
}

func TestReport(t *testing.T) {
	api := setupTestAPI(t)
	seedLedger(t, api)

	w := api.do(t, api.viewer, http.MethodGet, "/v1/reports", nil)
	require.Equal(t, http.StatusOK, w.Code)
	report := decode[models.Report](t, w)
	assert.Equal(t, 30.0, report.Collection.Total)
	assert.Equal(t, 1, report.TotalMembers)
	assert.Equal(t, 1, report.ActiveMembers)
	require.Len(t, report.TopOperators, 1)
	assert.Equal(t, models.OperatorCount{Name: "Ana", Count: 1}, report.TopOperators[0])
	assert.Len(t, report.RecentActivity, 1)
}

func TestAuditSheet(t *testing.T) {
	api := setupTestAPI(t)
	member := seedLedger(t, api)

	w := api.do(t, api.viewer, http.MethodGet, "/v1/reports/audit-sheet?year=2024", nil)
	require.Equal(t, http.StatusOK, w.Code)
	sheet := decode[models.AuditSheet](t, w)
	assert.Equal(t, 1, sheet.ActiveMembers)
	require.Len(t, sheet.Rows, 1)
	assert.Equal(t, member.ID, sheet.Rows[0].MemberID)
	assert.Equal(t, models.AuditCell{Paid: true, Day: 10}, sheet.Rows[0].Months[2])
	assert.False(t, sheet.Rows[0].Months[3].Paid)
}

func TestDashboard(t *testing.T) {
	api := setupTestAPI(t)
	seedLedger(t, api)
	api.createMember(t, "João")

	w := api.do(t, api.viewer, http.MethodGet, "/v1/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code)
	dash := decode[models.Dashboard](t, w)
	assert.Equal(t, 2, dash.TotalMembers)
	assert.Equal(t, 2, dash.ActiveMembers)
	assert.Equal(t, 30.0, dash.ReceivedThisMonth)
	assert.Equal(t, 1, dash.PendingThisMonth)
	assert.Len(t, dash.Trend, 6)
}
