package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndVerifyTokens(t *testing.T) {
	AccessTokenSecret = []byte("access-secret-for-tests")
	RefreshTokenSecret = []byte("refresh-secret-for-tests")

	userID := uuid.New()
	access, refresh, jti, err := GenerateTokens(userID)
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)
	require.NotEmpty(t, jti)

	accessClaims, err := VerifyJWT(access, AccessTokenSecret)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), accessClaims.Subject)
	assert.Equal(t, jti, accessClaims.ID)

	refreshClaims, err := VerifyJWT(refresh, RefreshTokenSecret)
	require.NoError(t, err)
	assert.Equal(t, jti, refreshClaims.ID)

	// Tokens are bound to their own secret.
	_, err = VerifyJWT(access, RefreshTokenSecret)
	assert.Error(t, err)

	_, err = VerifyJWT("not.a.token", AccessTokenSecret)
	assert.Error(t, err)
}
