package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("sekret")
	require.NoError(t, err)
	assert.NotEqual(t, "sekret", hash)

	assert.True(t, CheckPassword("sekret", hash))
	assert.False(t, CheckPassword("wrong", hash))
}

func TestHashPasswordIsSalted(t *testing.T) {
	t.Parallel()

	first, err := HashPassword("sekret")
	require.NoError(t, err)
	second, err := HashPassword("sekret")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, CheckPassword("sekret", first))
	assert.True(t, CheckPassword("sekret", second))
}

func TestCheckPasswordMalformedDigest(t *testing.T) {
	t.Parallel()

	assert.False(t, CheckPassword("sekret", "not-a-bcrypt-digest"))
}
