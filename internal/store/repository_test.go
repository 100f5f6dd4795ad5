package store

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/praiadomeio/app-ampm/internal/auth"
	"github.com/praiadomeio/app-ampm/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T, s Store, key string, value string) {
	t.Helper()
	require.NoError(t, s.Persist(context.Background(), key, []byte(value)))
}

func TestRepository_LoadAll_EmptyStoreSeedsAdmin(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	repo := NewRepository(s, "")

	snap, err := repo.LoadAll(ctx)
	require.NoError(t, err)

	assert.Empty(t, snap.Members)
	assert.NotNil(t, snap.Members)
	assert.Empty(t, snap.Payments)
	assert.Empty(t, snap.Expenses)
	require.Len(t, snap.Users, 1)

	admin := snap.Users[0]
	assert.Equal(t, models.BootstrapAdminID, admin.ID)
	assert.Equal(t, "admin", admin.Username)
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.True(t, auth.CheckPassword(admin.Password, "123456"))

	// The seeded admin is persisted
	data, err := s.Load(ctx, KeyUsers)
	require.NoError(t, err)
	var stored []models.User
	require.NoError(t, json.Unmarshal(data, &stored))
	assert.Len(t, stored, 1)
}

func TestRepository_LoadAll_CustomAdminPassword(t *testing.T) {
	repo := NewRepository(NewMemoryStore(), "s3nha-forte")

	snap, err := repo.LoadAll(context.Background())
	require.NoError(t, err)
	assert.True(t, auth.CheckPassword(snap.Users[0].Password, "s3nha-forte"))
}

func TestRepository_LoadAll_UpgradesPlaintextPasswords(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	seed(t, s, KeyUsers, `[{"id":"admin","username":"admin","password":"123456","name":"Administrador Geral","role":"admin"}]`)

	snap, err := NewRepository(s, "").LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, snap.Users, 1)
	assert.True(t, auth.IsHash(snap.Users[0].Password))
	assert.True(t, auth.CheckPassword(snap.Users[0].Password, "123456"))

	data, err := s.Load(ctx, KeyUsers)
	require.NoError(t, err)
	assert.NotContains(t, string(data), `"password":"123456"`)
}

func TestRepository_LoadAll_ValidCollections(t *testing.T) {
	s := NewMemoryStore()
	hash, err := auth.HashPassword("123456")
	require.NoError(t, err)
	users, err := json.Marshal([]models.User{{ID: "admin", Username: "admin", Password: hash, Name: "Admin", Role: models.RoleAdmin}})
	require.NoError(t, err)

	seed(t, s, KeyMembers, `[{"id":"m1","name":"Maria","cpf":"123","address":{"street":"Rua Chile"},"active":true}]`)
	seed(t, s, KeyPayments, `[{"id":"p1","memberId":"m1","month":0,"year":2024,"amount":30,"paymentDate":"2024-01-10","status":"paid","paymentMethod":"Pix"}]`)
	seed(t, s, KeyExpenses, `[{"id":"e1","category":"Eventos","description":"Festa","amount":100,"date":"2024-02-01","createdByName":"Ana","createdAt":"01/02/2024 10:00:00"}]`)
	seed(t, s, KeyUsers, string(users))

	snap, err := NewRepository(s, "").LoadAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, snap.Members, 1)
	assert.Len(t, snap.Payments, 1)
	assert.Len(t, snap.Expenses, 1)
	assert.Equal(t, models.PaymentMethodPix, snap.Payments[0].PaymentMethod)
	assert.Equal(t, hash, snap.Users[0].Password, "hashed passwords are left alone")
}

func TestRepository_LoadAll_CorruptState(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		index int
	}{
		{"not an array", KeyMembers, `{"id":"m1"}`, -1},
		{"invalid json", KeyPayments, `[{"id":`, -1},
		{"wrong field type", KeyPayments, `[{"id":"p1","memberId":"m1","month":0,"year":2024,"amount":30,"status":"paid"},{"id":"p2","memberId":"m1","month":"jan","year":2024,"status":"paid"}]`, 1},
		{"month out of range", KeyPayments, `[{"id":"p1","memberId":"m1","month":12,"year":2024,"status":"paid"}]`, 0},
		{"unknown status", KeyPayments, `[{"id":"p1","memberId":"m1","month":1,"year":2024,"status":"late"}]`, 0},
		{"unknown payment method", KeyPayments, `[{"id":"p1","memberId":"m1","month":1,"year":2024,"status":"paid","paymentMethod":"Cheque"}]`, 0},
		{"unknown category", KeyExpenses, `[{"id":"e1","category":"Viagem","amount":1,"date":"2024-01-01"}]`, 0},
		{"member without id", KeyMembers, `[{"id":"m1","name":"A"},{"name":"B"}]`, 1},
		{"expense date with time", KeyExpenses, `[{"id":"e1","category":"Eventos","amount":50,"date":"2024-03-05T10:00:00.000Z"}]`, 0},
		{"payment date in display format", KeyPayments, `[{"id":"p1","memberId":"m1","month":1,"year":2024,"status":"paid","paymentDate":"05/02/2024"}]`, 0},
		{"unknown role", KeyUsers, `[{"id":"u1","username":"u","password":"x","name":"U","role":"root"}]`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewMemoryStore()
			seed(t, s, tt.key, tt.value)

			_, err := NewRepository(s, "").LoadAll(context.Background())
			require.Error(t, err)

			var corrupt *models.CorruptStateError
			require.True(t, errors.As(err, &corrupt))
			assert.Equal(t, tt.key, corrupt.Key)
			assert.Equal(t, tt.index, corrupt.Index)
		})
	}
}

func TestRepository_LoadAll_NullIsEmpty(t *testing.T) {
	s := NewMemoryStore()
	seed(t, s, KeyMembers, `null`)

	snap, err := NewRepository(s, "").LoadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, snap.Members)
}

func TestRepository_StoreErrorsPropagate(t *testing.T) {
	boom := errors.New("unreachable")
	_, err := NewRepository(failingStore{err: boom}, "").LoadAll(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestRepository_PersistRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	repo := NewRepository(s, "")

	require.NoError(t, repo.PersistMembers(ctx, nil))
	data, err := s.Load(ctx, KeyMembers)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data), "nil collections persist as empty arrays")

	require.NoError(t, repo.PersistPayments(ctx, []models.Payment{{ID: "p1", MemberID: "m1", Month: 3, Year: 2024, Status: models.PaymentStatusPending}}))
	require.NoError(t, repo.PersistExpenses(ctx, []models.Expense{{ID: "e1", Category: models.ExpenseCategoryOther, Date: "2024-01-01"}}))

	snap, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, snap.Payments[0].Month)
	assert.Equal(t, models.ExpenseCategoryOther, snap.Expenses[0].Category)
}
