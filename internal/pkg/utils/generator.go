package utils

import (
	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.New().String()
}

// GenerateStoredFileName prefixes a random token to an already sanitized file name.
func GenerateStoredFileName(sanitizedOriginalName string) string {
	return uuid.New().String() + "-" + sanitizedOriginalName
}
