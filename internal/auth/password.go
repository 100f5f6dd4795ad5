package auth

import (
	"fmt"

	"github.com/praiadomeio/app-ampm/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// HashCost is the bcrypt cost used for new credential hashes
var HashCost = bcrypt.DefaultCost

// HashPassword returns the bcrypt hash of a plaintext password
func HashPassword(password string) (string, error) {
	if len(password) > models.MaxPasswordBytes {
		return "", models.ErrPasswordTooLong
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), HashCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the stored hash
func CheckPassword(hash, password string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// IsHash reports whether s is already a bcrypt hash
func IsHash(s string) bool {
	_, err := bcrypt.Cost([]byte(s))
	return err == nil
}
