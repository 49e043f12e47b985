package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(hash, "$argon2id$"))
	assert.NotContains(t, hash, "s3cret")

	// A fresh salt every call means a fresh hash every call
	hash2, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, hash, hash2)
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)

	ok, err := VerifyPassword("s3cret", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword("wrong", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	tests := []string{
		"",
		"plainhash",
		"$argon2id$v=19$m=65536",
		"$bcrypt$v=19$m=65536,t=3,p=2$c2FsdA$aGFzaA",
	}

	for _, hash := range tests {
		_, err := VerifyPassword("s3cret", hash)
		assert.Error(t, err, "hash %q should not verify", hash)
	}
}
