package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/praiadomeio/app-ampm/internal/models"
)

func TestMain(m *testing.M) {
	HashCost = bcrypt.MinCost
	m.Run()
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("123456")
	require.NoError(t, err)

	assert.NotEqual(t, "123456", hash)
	assert.True(t, IsHash(hash))
	assert.True(t, CheckPassword(hash, "123456"))
	assert.False(t, CheckPassword(hash, "1234567"))
}

func TestHashPassword_TooLong(t *testing.T) {
	_, err := HashPassword(strings.Repeat("a", models.MaxPasswordBytes+1))
	assert.ErrorIs(t, err, models.ErrPasswordTooLong)

	// multi-byte runes count by their encoded size
	_, err = HashPassword(strings.Repeat("ç", 40))
	assert.ErrorIs(t, err, models.ErrPasswordTooLong)

	hash, err := HashPassword(strings.Repeat("a", models.MaxPasswordBytes))
	require.NoError(t, err)
	assert.True(t, IsHash(hash))
}

func TestHashPassword_Salted(t *testing.T) {
	first, err := HashPassword("segredo")
	require.NoError(t, err)
	second, err := HashPassword("segredo")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, CheckPassword(first, "segredo"))
	assert.True(t, CheckPassword(second, "segredo"))
}

func TestCheckPassword_InvalidHash(t *testing.T) {
	tests := []struct {
		name string
		hash string
	}{
		{"empty hash", ""},
		{"plaintext stored", "123456"},
		{"truncated hash", "$2a$10$abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, CheckPassword(tt.hash, "123456"))
		})
	}
}

func TestIsHash(t *testing.T) {
	assert.False(t, IsHash(""))
	assert.False(t, IsHash("123456"))

	hash, err := HashPassword("x")
	require.NoError(t, err)
	assert.True(t, IsHash(hash))
}
