package auth

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/tracker/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("test-secret")

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken("u1", []string{"Operations_Manager"}, secret, time.Minute)
	require.NoError(t, err)

	claims, err := ParseToken(token, secret)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, []string{"Operations_Manager"}, claims.Roles)
}

func TestParseToken_EmptyRoles(t *testing.T) {
	token, err := GenerateToken("u1", nil, secret, time.Minute)
	require.NoError(t, err)

	claims, err := ParseToken(token, secret)
	require.NoError(t, err)
	assert.Empty(t, claims.Roles)
}

func TestParseToken_Expired(t *testing.T) {
	token, err := GenerateToken("u1", nil, secret, -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(token, secret)
	require.ErrorIs(t, err, common.ErrTokenExpired)
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken("u1", nil, secret, time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(token, []byte("other"))
	require.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestParseToken_Garbage(t *testing.T) {
	_, err := ParseToken("not-a-token", secret)
	require.ErrorIs(t, err, common.ErrInvalidToken)
}
