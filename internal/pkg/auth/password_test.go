package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("Welcome@UAP25001")
	require.NoError(t, err)
	require.NotEqual(t, "Welcome@UAP25001", hash)

	assert.True(t, CheckPassword(hash, "Welcome@UAP25001"))
	assert.False(t, CheckPassword(hash, "welcome@uap25001"))
	assert.False(t, CheckPassword(hash, ""))
}

func TestInitialPassword(t *testing.T) {
	assert.Equal(t, "Welcome@UAP25001", InitialPassword("UAP25001"))
	assert.Equal(t, "Welcome@STF26007", InitialPassword("STF26007"))
}

func TestGenerateRandomPassword(t *testing.T) {
	p1, err := GenerateRandomPassword(10)
	require.NoError(t, err)
	assert.Len(t, p1, 10)

	p2, err := GenerateRandomPassword(10)
	require.NoError(t, err)
	assert.NotEqual(t, p1, p2)

	// Non-positive lengths fall back to the default.
	p3, err := GenerateRandomPassword(0)
	require.NoError(t, err)
	assert.Len(t, p3, 10)
}
