// Package store persists the association's four record collections as
// opaque JSON blobs, one per key, and loads them back into typed,
// validated snapshots.
package store

import (
	"context"
	"errors"

	"github.com/praiadomeio/app-ampm/internal/observability"
)

// Record keys, one blob per collection
const (
	KeyMembers  = "ampm_members"
	KeyPayments = "ampm_payments"
	KeyExpenses = "ampm_expenses"
	KeyUsers    = "ampm_users"
)

// ErrKeyNotFound is returned by Load when nothing was ever persisted under the key
var ErrKeyNotFound = errors.New("record key not found")

// Store is a key-value gateway for collection blobs
type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Persist(ctx context.Context, key string, data []byte) error
	Ping(ctx context.Context) error
	Name() string
}

// observe records the outcome of one store operation
func observe(backend, operation string, err error) {
	status := "success"
	switch {
	case errors.Is(err, ErrKeyNotFound):
		status = "not_found"
	case err != nil:
		status = "error"
	}
	observability.StoreOperations.WithLabelValues(backend, operation, status).Inc()
}
