package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("correct-horse-1!")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$"))

	ok, err := VerifyPassword(hash, "correct-horse-1!")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword(hash, "wrong-password-1!")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	h1, err := HashPassword("same-password-1!")
	require.NoError(t, err)
	h2, err := HashPassword("same-password-1!")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}

func TestHashPassword_Empty(t *testing.T) {
	_, err := HashPassword("")
	assert.Error(t, err)
}

func TestHashPassword_TooLong(t *testing.T) {
	_, err := HashPassword(strings.Repeat("a", maxPasswordLength+1))
	assert.Error(t, err)
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	ok, err := VerifyPassword("not-a-hash", "whatever")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = VerifyPassword("$bcrypt$v=19$m=1,t=1,p=1$c2FsdA$aGFzaA", "whatever")
	require.NoError(t, err)
	assert.False(t, ok)
}
