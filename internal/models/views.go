package models

// MonthNames holds the Portuguese month names indexed by zero-based month
var MonthNames = [12]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

// MonthShortName returns the three-letter label of a zero-based month
func MonthShortName(month int) string {
	if month < 0 || month > 11 {
		return ""
	}
	return string([]rune(MonthNames[month])[:3])
}

// CellState is the rendering state of one dues matrix cell.
// CellEmpty (no record) and CellPending (record marked unpaid) are distinct states.
type CellState string

const (
	CellEmpty   CellState = "empty"
	CellPending CellState = "pending"
	CellPaid    CellState = "paid"
)

// MatrixCell is the (member, month) intersection of the dues grid
type MatrixCell struct {
	Month   int       `json:"month"`
	State   CellState `json:"state"`
	Payment *Payment  `json:"payment,omitempty"`
}

// MatrixRow holds the twelve cells of one member
type MatrixRow struct {
	MemberID   string         `json:"memberId"`
	MemberName string         `json:"memberName"`
	Cells      [12]MatrixCell `json:"cells"`
}

// DuesMatrix is the dues grid of one year
type DuesMatrix struct {
	Year int         `json:"year"`
	Rows []MatrixRow `json:"rows"`
}

// AuditCell is a paid month on the audit sheet; Day is zero when nothing was paid
type AuditCell struct {
	Paid bool `json:"paid"`
	Day  int  `json:"day,omitempty"`
}

// AuditRow is one active member on the audit sheet
type AuditRow struct {
	MemberID   string        `json:"memberId"`
	MemberName string        `json:"memberName"`
	Months     [12]AuditCell `json:"months"`
}

// AuditSheet is the yearly paid-dues sheet used for internal auditing
type AuditSheet struct {
	Year          int        `json:"year"`
	ActiveMembers int        `json:"activeMembers"`
	Rows          []AuditRow `json:"rows"`
}

// TransactionType is the direction of a cash-book entry
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// Transaction is one entry of the unified cash-flow feed
type Transaction struct {
	ID            string          `json:"id"`
	Type          TransactionType `json:"type"`
	Description   string          `json:"description"`
	Category      string          `json:"category"`
	Amount        float64         `json:"amount"`
	AmountLabel   string          `json:"amountLabel"`
	Date          string          `json:"date"`
	PaymentMethod string          `json:"paymentMethod"`
	User          string          `json:"user"`
}

// TransactionFilter narrows the cash-flow feed. An empty Type means all.
type TransactionFilter struct {
	Search string          `form:"search"`
	Type   TransactionType `form:"type"`
}

// FeedTotals sums a cash-flow feed
type FeedTotals struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Balance float64 `json:"balance"`
}

// CashFlow is the cash book view
type CashFlow struct {
	Transactions []Transaction `json:"transactions"`
	Totals       FeedTotals    `json:"totals"`
}

// FinancialSummary holds the yearly KPIs of the finance panel
type FinancialSummary struct {
	Year         int     `json:"year"`
	PaidTotal    float64 `json:"paidTotal"`
	ExpenseTotal float64 `json:"expenseTotal"`
	Balance      float64 `json:"balance"`
	PendingTotal float64 `json:"pendingTotal"`
}

// MonthlyFlow compares inflows and outflows of one month
type MonthlyFlow struct {
	Month    int     `json:"month"`
	Name     string  `json:"name"`
	Entradas float64 `json:"entradas"`
	Saidas   float64 `json:"saidas"`
}

// CategoryShare is the share of one expense category in the yearly outflow
type CategoryShare struct {
	Category ExpenseCategory `json:"category"`
	Total    float64         `json:"total"`
	Percent  float64         `json:"percent"`
}

// FinancePanel is the consolidated yearly finance view
type FinancePanel struct {
	Summary    FinancialSummary `json:"summary"`
	Monthly    [12]MonthlyFlow  `json:"monthly"`
	Categories []CategoryShare  `json:"categories"`
}

// MonthTrend is the paid dues of one calendar month
type MonthTrend struct {
	Year  int     `json:"year"`
	Month int     `json:"month"`
	Name  string  `json:"name"`
	Total float64 `json:"total"`
	Count int     `json:"count"`
}

// YearReport is the per-month paid collection of a year
type YearReport struct {
	Year           int            `json:"year"`
	Months         [12]MonthTrend `json:"months"`
	Total          float64        `json:"total"`
	AverageMonthly float64        `json:"averageMonthly"`
}

// OperatorCount is the number of members registered by one operator
type OperatorCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Report is the strategic report view
type Report struct {
	Collection     YearReport      `json:"collection"`
	TotalMembers   int             `json:"totalMembers"`
	ActiveMembers  int             `json:"activeMembers"`
	TopOperators   []OperatorCount `json:"topOperators"`
	RecentActivity []Member        `json:"recentActivity"`
}

// Dashboard holds the home screen KPIs
type Dashboard struct {
	TotalMembers           int          `json:"totalMembers"`
	ActiveMembers          int          `json:"activeMembers"`
	ReceivedThisMonth      float64      `json:"receivedThisMonth"`
	ReceivedThisMonthLabel string       `json:"receivedThisMonthLabel"`
	PendingThisMonth       int          `json:"pendingThisMonth"`
	Trend                  []MonthTrend `json:"trend"`
	Birthdays              []Birthday   `json:"birthdays"`
}

// Birthday is an upcoming member birthday
type Birthday struct {
	MemberID  string `json:"memberId"`
	Name      string `json:"name"`
	BirthDate string `json:"birthDate"`
	DaysUntil int    `json:"daysUntil"`
	IsToday   bool   `json:"isToday"`
}

// DirectoryEntry is one member listed in the address directory
type DirectoryEntry struct {
	MemberID     string `json:"memberId"`
	Name         string `json:"name"`
	Number       string `json:"number"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood"`
	ZipCode      string `json:"zipCode"`
	Phone        string `json:"phone"`
	Active       bool   `json:"active"`
	MapsURL      string `json:"mapsUrl"`
}

// DirectoryStreet groups the members living on one street
type DirectoryStreet struct {
	Street  string           `json:"street"`
	Members []DirectoryEntry `json:"members"`
}
