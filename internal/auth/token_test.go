package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	iss := NewIssuer("secret-key", time.Hour)

	tok, err := iss.Issue(42, "a@b.com")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := iss.Verify(tok)
	require.NoError(t, err)
	require.Equal(t, int64(42), claims.UserID)
	require.Equal(t, "a@b.com", claims.Email)
}

func TestTokenExpiryWindow(t *testing.T) {
	iss := NewIssuer("secret-key", time.Hour)
	before := time.Now()
	tok, err := iss.Issue(7, "u@example.com")
	require.NoError(t, err)
	after := time.Now()

	var tc tokenClaims
	_, err = jwt.ParseWithClaims(tok, &tc, func(*jwt.Token) (interface{}, error) {
		return []byte("secret-key"), nil
	})
	require.NoError(t, err)

	// Expiry sits exactly one hour after issuance, within clock skew.
	exp := tc.ExpiresAt.Time
	require.False(t, exp.Before(before.Add(time.Hour).Add(-2*time.Second)))
	require.False(t, exp.After(after.Add(time.Hour).Add(2*time.Second)))
	require.WithinDuration(t, tc.IssuedAt.Time.Add(time.Hour), exp, time.Second)
}

func TestVerifyRejectsExpired(t *testing.T) {
	iss := NewIssuer("secret-key", -time.Minute)
	tok, err := iss.Issue(1, "a@b.com")
	require.NoError(t, err)

	_, err = iss.Verify(tok)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	iss := NewIssuer("secret-key", time.Hour)
	tok, err := iss.Issue(1, "a@b.com")
	require.NoError(t, err)

	other := NewIssuer("different-key", time.Hour)
	_, err = other.Verify(tok)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	iss := NewIssuer("secret-key", time.Hour)
	_, err := iss.Verify("not.a.token")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsWrongAlg(t *testing.T) {
	// A token signed with "none" must never pass, whatever its claims say.
	iss := NewIssuer("secret-key", time.Hour)
	tok := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "1"})
	signed, err := tok.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = iss.Verify(signed)
	require.ErrorIs(t, err, ErrInvalidToken)
}
