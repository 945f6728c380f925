package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCheckPassword(t *testing.T) {
	digest, err := HashPassword("abcd")
	require.NoError(t, err)
	require.NotEqual(t, "abcd", digest)

	require.True(t, CheckPassword("abcd", digest))
	require.False(t, CheckPassword("abce", digest))
	require.False(t, CheckPassword("", digest))
}

func TestHashCost(t *testing.T) {
	digest, err := HashPassword("abcd")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(digest))
	require.NoError(t, err)
	require.Equal(t, 12, cost)
}
