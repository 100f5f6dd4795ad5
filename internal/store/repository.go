package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/praiadomeio/app-ampm/internal/auth"
	"github.com/praiadomeio/app-ampm/internal/ledger"
	"github.com/praiadomeio/app-ampm/internal/logging"
	"github.com/praiadomeio/app-ampm/internal/models"
	"go.uber.org/zap"
)

// Snapshot is every collection as loaded from the store
type Snapshot struct {
	Members  []models.Member
	Payments []models.Payment
	Expenses []models.Expense
	Users    []models.User
}

// Repository turns store blobs into typed, validated collections
type Repository struct {
	store         Store
	validate      *validator.Validate
	adminPassword string
	logger        *logging.SafeLogger
}

// NewRepository creates a repository. adminPassword seeds the bootstrap
// admin when no user collection exists yet.
func NewRepository(s Store, adminPassword string) *Repository {
	return &Repository{
		store:         s,
		validate:      NewValidator(),
		adminPassword: adminPassword,
		logger:        logging.Logger.Named("repository"),
	}
}

// NewValidator returns a validator that knows the enum tags used by the models
func NewValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("payment_method", func(fl validator.FieldLevel) bool {
		return models.PaymentMethod(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("expense_category", func(fl validator.FieldLevel) bool {
		return models.ExpenseCategory(fl.Field().String()).IsValid()
	})
	return v
}

// Store returns the underlying blob store
func (r *Repository) Store() Store {
	return r.store
}

// LoadAll loads and validates every collection. A missing key is an empty
// collection, except users, which is seeded with the bootstrap admin.
// Users whose password is not yet a credential hash are upgraded in place.
func (r *Repository) LoadAll(ctx context.Context) (*Snapshot, error) {
	var (
		snap Snapshot
		err  error
	)

	if snap.Members, _, err = loadCollection[models.Member](ctx, r, KeyMembers); err != nil {
		return nil, err
	}
	if snap.Payments, _, err = loadCollection[models.Payment](ctx, r, KeyPayments); err != nil {
		return nil, err
	}
	if snap.Expenses, _, err = loadCollection[models.Expense](ctx, r, KeyExpenses); err != nil {
		return nil, err
	}

	users, found, err := loadCollection[models.User](ctx, r, KeyUsers)
	if err != nil {
		return nil, err
	}
	if !found {
		admin, err := ledger.BootstrapAdmin(r.adminPassword)
		if err != nil {
			return nil, fmt.Errorf("bootstrap admin: %w", err)
		}
		users = []models.User{admin}
		if err := r.PersistUsers(ctx, users); err != nil {
			return nil, err
		}
		r.logger.Info("seeded bootstrap admin", zap.String("username", admin.Username))
	} else if upgraded, n, err := upgradePasswords(users); err != nil {
		return nil, err
	} else if n > 0 {
		users = upgraded
		if err := r.PersistUsers(ctx, users); err != nil {
			return nil, err
		}
		r.logger.Info("upgraded plaintext passwords", zap.Int("users", n))
	}
	snap.Users = users

	r.logger.Info("records loaded",
		zap.Int("members", len(snap.Members)),
		zap.Int("payments", len(snap.Payments)),
		zap.Int("expenses", len(snap.Expenses)),
		zap.Int("users", len(snap.Users)))
	return &snap, nil
}

func (r *Repository) PersistMembers(ctx context.Context, members []models.Member) error {
	return persistCollection(ctx, r, KeyMembers, members)
}

func (r *Repository) PersistPayments(ctx context.Context, payments []models.Payment) error {
	return persistCollection(ctx, r, KeyPayments, payments)
}

func (r *Repository) PersistExpenses(ctx context.Context, expenses []models.Expense) error {
	return persistCollection(ctx, r, KeyExpenses, expenses)
}

func (r *Repository) PersistUsers(ctx context.Context, users []models.User) error {
	return persistCollection(ctx, r, KeyUsers, users)
}

// loadCollection decodes and validates one blob record by record, so a
// failure names the offending index. found is false when the key is absent.
func loadCollection[T any](ctx context.Context, r *Repository, key string) ([]T, bool, error) {
	data, err := r.store.Load(ctx, key)
	if errors.Is(err, ErrKeyNotFound) {
		return []T{}, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, true, &models.CorruptStateError{Key: key, Index: -1, Err: err}
	}

	out := make([]T, 0, len(raw))
	for i, item := range raw {
		var record T
		if err := json.Unmarshal(item, &record); err != nil {
			return nil, true, &models.CorruptStateError{Key: key, Index: i, Err: err}
		}
		if err := r.validate.Struct(record); err != nil {
			return nil, true, &models.CorruptStateError{Key: key, Index: i, Err: err}
		}
		out = append(out, record)
	}
	return out, true, nil
}

func persistCollection[T any](ctx context.Context, r *Repository, key string, records []T) error {
	if records == nil {
		records = []T{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return r.store.Persist(ctx, key, data)
}

// upgradePasswords hashes any stored password that is not already a credential hash
func upgradePasswords(users []models.User) ([]models.User, int, error) {
	out := make([]models.User, len(users))
	copy(out, users)

	upgraded := 0
	for i := range out {
		if auth.IsHash(out[i].Password) {
			continue
		}
		hash, err := auth.HashPassword(out[i].Password)
		if err != nil {
			return nil, 0, fmt.Errorf("hash password for %s: %w", out[i].Username, err)
		}
		out[i].Password = hash
		upgraded++
	}
	return out, upgraded, nil
}
