package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/praiadomeio/app-ampm/internal/models"
)

// ErrInvalidToken is returned for tokens that fail signature or expiry checks
var ErrInvalidToken = errors.New("invalid token")

// TokenMaker issues and parses session tokens signed with HMAC-SHA256
type TokenMaker struct {
	secretKey []byte
	ttl       time.Duration
	now       func() time.Time
}

// NewTokenMaker creates a TokenMaker for the given secret and token lifetime
func NewTokenMaker(secretKey string, ttl time.Duration) *TokenMaker {
	return &TokenMaker{
		secretKey: []byte(secretKey),
		ttl:       ttl,
		now:       time.Now,
	}
}

// Issue signs a session token for the user and returns it with its expiry
func (m *TokenMaker) Issue(user models.User) (string, time.Time, error) {
	issuedAt := m.now()
	expiresAt := issuedAt.Add(m.ttl)

	claims := models.SessionClaims{
		Name: user.Name,
		Role: user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secretKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// Parse verifies the token signature and expiry and returns its claims
func (m *TokenMaker) Parse(tokenStr string) (*models.SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &models.SessionClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secretKey, nil
	}, jwt.WithTimeFunc(m.now))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*models.SessionClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
