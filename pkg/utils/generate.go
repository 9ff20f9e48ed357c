package utils

import (
	"github.com/google/uuid"
)

// ==================== UUID ====================

func GenerateUUIDString() string {
	return uuid.New().String()
}

// IsValidUUID reports whether s is a canonical UUID, used to accept client-supplied request ids.
func IsValidUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
