package utils

import "github.com/google/uuid"

// GenerateID returns a fresh identifier for a new row.
func GenerateID() string {
	return uuid.New().String()
}
