package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfirmationToken(t *testing.T) {
	token, err := NewConfirmationToken()
	require.NoError(t, err)

	assert.GreaterOrEqual(t, len(token), 36)
	assert.Regexp(t, regexp.MustCompile(`^[A-Z2-7]+$`), token, "tokens are unpadded base32")
}

func TestNewConfirmationTokenUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		token, err := NewConfirmationToken()
		require.NoError(t, err)
		assert.False(t, seen[token], "duplicate token generated")
		seen[token] = true
	}
}
