package utils

import "github.com/google/uuid"

// GenerateUUID generates a random record id
func GenerateUUID() string {
	return uuid.NewString()
}
