package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	t.Parallel()

	hash, err := Hash("correct horse battery staple")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(hash), "argon2id$v=19$"))

	assert.NoError(t, VerifyPassword(string(hash), "correct horse battery staple"))
	assert.Error(t, VerifyPassword(string(hash), "wrong password"))
}

func TestHashesAreSalted(t *testing.T) {
	t.Parallel()

	first, err := Hash("same password")
	require.NoError(t, err)
	second, err := Hash("same password")
	require.NoError(t, err)

	assert.NotEqual(t, string(first), string(second))
}

func TestVerifyPasswordRejectsMalformedHash(t *testing.T) {
	t.Parallel()

	assert.Error(t, VerifyPassword("not-a-hash", "anything"))
	assert.Error(t, VerifyPassword("argon2id$v=19$m=x,t=y,p=z$salt$hash", "anything"))
}

func TestGenerateStateOauthCookie(t *testing.T) {
	t.Parallel()

	first, err := GenerateStateOauthCookie()
	require.NoError(t, err)
	second, err := GenerateStateOauthCookie()
	require.NoError(t, err)

	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)
}
