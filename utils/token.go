package utils

import (
	"crypto/rand"
	"encoding/base32"
	"fmt"
)

// confirmationTokenBytes gives 192 bits of entropy, which encodes to a
// 39-character base32 string.
const confirmationTokenBytes = 24

// NewConfirmationToken generates an opaque confirmation token from a
// cryptographically secure random source. It returns a base32 encoded
// string without padding.
func NewConfirmationToken() (string, error) {
	randomBytes := make([]byte, confirmationTokenBytes)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(randomBytes), nil
}
