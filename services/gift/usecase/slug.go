package usecase

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

const slugBytes = 6

// NewSlug returns 8 URL-safe characters drawn from 6 random bytes.
func NewSlug() (string, error) {
	b := make([]byte, slugBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
