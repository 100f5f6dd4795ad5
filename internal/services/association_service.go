package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/praiadomeio/app-ampm/internal/ledger"
	"github.com/praiadomeio/app-ampm/internal/logging"
	"github.com/praiadomeio/app-ampm/internal/models"
	"github.com/praiadomeio/app-ampm/internal/observability"
	"github.com/praiadomeio/app-ampm/internal/store"
	"github.com/praiadomeio/app-ampm/internal/utils"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// AssociationService owns the loaded collections of one association.
// Mutations are serialized: each runs the pure ledger operation on the
// current collections, persists the result and only then swaps it in, so a
// failed write leaves the in-memory state untouched.
type AssociationService struct {
	mu       sync.RWMutex
	repo     *store.Repository
	members  []models.Member
	payments []models.Payment
	expenses []models.Expense
	users    []models.User

	audit *AuditWorker
	city  string
	now   func() time.Time

	logger *logging.SafeLogger
}

// Option configures an AssociationService
type Option func(*AssociationService)

// WithAuditWorker sends an audit event for every successful mutation
func WithAuditWorker(worker *AuditWorker) Option {
	return func(s *AssociationService) { s.audit = worker }
}

// WithDirectoryCity sets the city appended to map searches
func WithDirectoryCity(city string) Option {
	return func(s *AssociationService) { s.city = city }
}

// WithClock replaces time.Now
func WithClock(now func() time.Time) Option {
	return func(s *AssociationService) { s.now = now }
}

// NewAssociationService loads every collection from repo
func NewAssociationService(ctx context.Context, repo *store.Repository, opts ...Option) (*AssociationService, error) {
	s := &AssociationService{
		repo:   repo,
		now:    time.Now,
		logger: logging.Logger.Named("association"),
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.Reload(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload replaces the in-memory collections with the stored ones
func (s *AssociationService) Reload(ctx context.Context) error {
	snap, err := s.repo.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("load records: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.members = snap.Members
	s.payments = snap.Payments
	s.expenses = snap.Expenses
	s.users = snap.Users
	return nil
}

// Ping checks the record store
func (s *AssociationService) Ping(ctx context.Context) error {
	return s.repo.Store().Ping(ctx)
}

// observe records metrics and span status for one mutation
func (s *AssociationService) observe(span trace.Span, operation string, err error) {
	status := "success"
	if err != nil {
		status = "error"
		if isRejection(err) {
			status = "rejected"
		}
		utils.RecordErrorInSpan(span, err, map[string]interface{}{"ledger.operation": operation})
		s.logger.Warn("ledger operation failed", zap.String("operation", operation), zap.Error(err))
	}
	observability.LedgerMutations.WithLabelValues(operation, status).Inc()
}

func isRejection(err error) bool {
	return errors.Is(err, models.ErrForbidden) ||
		errors.Is(err, models.ErrInvalidPassword) ||
		errors.Is(err, models.ErrProtectedUser) ||
		errors.Is(err, models.ErrNotConfirmed)
}

func (s *AssociationService) record(ctx context.Context, actor models.User, action, resource, id string) {
	s.audit.Record(NewAuditEvent(ctx, actor, action, resource, id))
}

// Authentication

// Authenticate checks username and password against the stored accounts
func (s *AssociationService) Authenticate(ctx context.Context, username, password string) (models.User, error) {
	s.mu.RLock()
	user, err := ledger.Authenticate(s.users, username, password)
	s.mu.RUnlock()

	if err != nil {
		observability.LoginAttempts.WithLabelValues("failure").Inc()
		return models.User{}, err
	}
	observability.LoginAttempts.WithLabelValues("success").Inc()
	s.record(ctx, user, AuditActionLogin, AuditResourceUser, user.ID)
	return user, nil
}

// User returns the account with id
func (s *AssociationService) User(id string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return ledger.FindUser(s.users, id)
}

// Members

// Members lists members matching term and status
func (s *AssociationService) Members(term string, status models.MemberStatusFilter) []models.Member {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return ledger.SearchMembers(s.members, term, status)
}

// Member returns the member with id
func (s *AssociationService) Member(id string) (models.Member, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	member, ok := ledger.FindMember(s.members, id)
	if !ok {
		return models.Member{}, models.ErrMemberNotFound
	}
	return member, nil
}

// SaveMember registers a new member or edits an existing one
func (s *AssociationService) SaveMember(ctx context.Context, actor models.User, input models.MemberInput) (models.Member, error) {
	ctx, span, cleanup := utils.TraceLedgerOperation(ctx, "save_member", actor.ID)
	defer cleanup()

	s.mu.Lock()
	defer s.mu.Unlock()

	members, saved, err := ledger.SaveMember(s.members, input, actor, s.now())
	if err == nil {
		err = s.repo.PersistMembers(ctx, members)
	}
	s.observe(span, "save_member", err)
	if err != nil {
		return models.Member{}, err
	}
	s.members = members

	action := AuditActionUpdate
	if input.ID == "" {
		action = AuditActionCreate
	}
	s.record(ctx, actor, action, AuditResourceMember, saved.ID)
	return saved, nil
}

// DeleteMember removes a member after re-checking the actor's password.
// Payments of the member are kept.
func (s *AssociationService) DeleteMember(ctx context.Context, actor models.User, id, password string) error {
	return s.gatedDelete(ctx, actor, AuditResourceMember, id, func() (func(context.Context) error, error) {
		members, err := ledger.DeleteMember(s.members, id, actor, password)
		if err != nil {
			return nil, err
		}
		return func(ctx context.Context) error {
			if err := s.repo.PersistMembers(ctx, members); err != nil {
				return err
			}
			s.members = members
			return nil
		}, nil
	})
}

// Directory returns active members grouped by street
func (s *AssociationService) Directory(search string) []models.DirectoryStreet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return ledger.BuildDirectory(s.members, search, s.city)
}

// Birthdays returns the active members with a birthday in the coming week
func (s *AssociationService) Birthdays() []models.Birthday {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return ledger.UpcomingBirthdays(s.members, s.now(), ledger.BirthdayWindowDays)
}

// Payments

// DuesMatrix builds the year grid for active members whose name matches search
func (s *AssociationService) DuesMatrix(year int, search string) models.DuesMatrix {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return ledger.BuildDuesMatrix(s.payments, year, ledger.MatrixMembers(s.members, search))
}

// PaymentCell returns the payment recorded for one matrix cell
func (s *AssociationService) PaymentCell(memberID string, month, year int) (models.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if payment, ok := ledger.FindPayment(s.payments, memberID, month, year); ok {
		return payment, nil
	}
	return models.Payment{}, models.ErrPaymentNotFound
}

// UpsertPayment creates or replaces the payment of one matrix cell
func (s *AssociationService) UpsertPayment(ctx context.Context, actor models.User, input models.PaymentInput) (models.Payment, error) {
	ctx, span, cleanup := utils.TraceLedgerOperation(ctx, "upsert_payment", actor.ID)
	defer cleanup()

	s.mu.Lock()
	defer s.mu.Unlock()

	payments, saved, err := ledger.UpsertPayment(s.payments, input, actor)
	if err == nil {
		err = s.repo.PersistPayments(ctx, payments)
	}
	s.observe(span, "upsert_payment", err)
	if err != nil {
		return models.Payment{}, err
	}
	s.payments = payments
	s.record(ctx, actor, AuditActionUpdate, AuditResourcePayment, saved.ID)
	return saved, nil
}

// DeletePayment removes a payment after re-checking the actor's password
func (s *AssociationService) DeletePayment(ctx context.Context, actor models.User, id, password string) error {
	return s.gatedDelete(ctx, actor, AuditResourcePayment, id, func() (func(context.Context) error, error) {
		payments, err := ledger.DeletePayment(s.payments, id, actor, password)
		if err != nil {
			return nil, err
		}
		return func(ctx context.Context) error {
			if err := s.repo.PersistPayments(ctx, payments); err != nil {
				return err
			}
			s.payments = payments
			return nil
		}, nil
	})
}

// Cash flow

// CashFlow returns the filtered transaction feed and its totals
func (s *AssociationService) CashFlow(filter models.TransactionFilter) models.CashFlow {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return ledger.BuildCashFlow(s.payments, s.expenses, s.members, filter)
}

// CreateExpense records a new expense
func (s *AssociationService) CreateExpense(ctx context.Context, actor models.User, input models.ExpenseInput) (models.Expense, error) {
	ctx, span, cleanup := utils.TraceLedgerOperation(ctx, "create_expense", actor.ID)
	defer cleanup()

	s.mu.Lock()
	defer s.mu.Unlock()

	expenses, saved, err := ledger.CreateExpense(s.expenses, input, actor, s.now())
	if err == nil {
		err = s.repo.PersistExpenses(ctx, expenses)
	}
	s.observe(span, "create_expense", err)
	if err != nil {
		return models.Expense{}, err
	}
	s.expenses = expenses
	s.record(ctx, actor, AuditActionCreate, AuditResourceExpense, saved.ID)
	return saved, nil
}

// DeleteExpense removes an expense after re-checking the actor's password
func (s *AssociationService) DeleteExpense(ctx context.Context, actor models.User, id, password string) error {
	return s.gatedDelete(ctx, actor, AuditResourceExpense, id, func() (func(context.Context) error, error) {
		expenses, err := ledger.DeleteExpense(s.expenses, id, actor, password)
		if err != nil {
			return nil, err
		}
		return func(ctx context.Context) error {
			if err := s.repo.PersistExpenses(ctx, expenses); err != nil {
				return err
			}
			s.expenses = expenses
			return nil
		}, nil
	})
}

// gatedDelete runs a delete under the write lock. remove applies the gate and
// returns the commit step, which persists and swaps in the new collection.
func (s *AssociationService) gatedDelete(ctx context.Context, actor models.User, resource, id string, remove func() (func(context.Context) error, error)) error {
	operation := "delete_" + resource
	ctx, span, cleanup := utils.TraceLedgerOperation(ctx, operation, actor.ID)
	defer cleanup()
	utils.AddSpanAttribute(span, "ledger.resource_id", id)

	s.mu.Lock()
	defer s.mu.Unlock()

	commit, err := remove()
	if err == nil {
		err = commit(ctx)
	}
	s.observe(span, operation, err)
	if err != nil {
		if errors.Is(err, models.ErrForbidden) || errors.Is(err, models.ErrInvalidPassword) {
			observability.DeleteGateRejections.WithLabelValues(resource).Inc()
		}
		return err
	}
	s.record(ctx, actor, AuditActionDelete, resource, id)
	return nil
}

// Reporting

// FinancePanel returns the year summary, monthly series and category split
func (s *AssociationService) FinancePanel(year int) models.FinancePanel {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return ledger.BuildFinancePanel(s.payments, s.expenses, year)
}

// Report returns the yearly collection report with operator rollups
func (s *AssociationService) Report(year int) models.Report {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return ledger.BuildReport(s.members, s.payments, year, ledger.DefaultRecentActivity)
}

// AuditSheet returns the paid-days sheet of active members for year
func (s *AssociationService) AuditSheet(year int) models.AuditSheet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return ledger.BuildAuditSheet(s.payments, s.members, year)
}

// Dashboard returns the headline figures for the current month
func (s *AssociationService) Dashboard() models.Dashboard {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return ledger.BuildDashboard(s.members, s.payments, s.now())
}

// Users

// Users lists accounts matching term, without credential hashes
func (s *AssociationService) Users(term string) []models.UserResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()

	found := ledger.SearchUsers(s.users, term)
	out := make([]models.UserResponse, 0, len(found))
	for _, u := range found {
		out = append(out, u.ToResponse())
	}
	return out
}

// SaveUser creates or edits an account
func (s *AssociationService) SaveUser(ctx context.Context, actor models.User, input models.UserInput) (models.User, error) {
	ctx, span, cleanup := utils.TraceLedgerOperation(ctx, "save_user", actor.ID)
	defer cleanup()

	s.mu.Lock()
	defer s.mu.Unlock()

	users, saved, err := ledger.SaveUser(s.users, input, actor)
	if err == nil {
		err = s.repo.PersistUsers(ctx, users)
	}
	s.observe(span, "save_user", err)
	if err != nil {
		return models.User{}, err
	}
	s.users = users

	action := AuditActionUpdate
	if input.ID == "" {
		action = AuditActionCreate
	}
	s.record(ctx, actor, action, AuditResourceUser, saved.ID)
	return saved, nil
}

// DeleteUser removes an account once the caller confirmed it
func (s *AssociationService) DeleteUser(ctx context.Context, actor models.User, id string, confirmed bool) error {
	ctx, span, cleanup := utils.TraceLedgerOperation(ctx, "delete_user", actor.ID)
	defer cleanup()

	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := ledger.DeleteUser(s.users, id, actor, confirmed)
	if err == nil {
		err = s.repo.PersistUsers(ctx, users)
	}
	s.observe(span, "delete_user", err)
	if err != nil {
		return err
	}
	s.users = users
	s.record(ctx, actor, AuditActionDelete, AuditResourceUser, id)
	return nil
}

// ChangePassword replaces the actor's own password
func (s *AssociationService) ChangePassword(ctx context.Context, actor models.User, change models.PasswordChange) error {
	ctx, span, cleanup := utils.TraceLedgerOperation(ctx, "change_password", actor.ID)
	defer cleanup()

	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := ledger.ChangePassword(s.users, actor.ID, change)
	if err == nil {
		err = s.repo.PersistUsers(ctx, users)
	}
	s.observe(span, "change_password", err)
	if err != nil {
		return err
	}
	s.users = users
	s.record(ctx, actor, AuditActionPasswordChange, AuditResourceUser, actor.ID)
	return nil
}
