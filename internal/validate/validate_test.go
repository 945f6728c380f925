package validate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUserInputEmails(t *testing.T) {
	bad := []string{
		"",
		"not-an-email",
		"missing@domain",
		"@nolocal.com",
		"spaces in@mail.com",
		"trailingdot@domain.",
		"Display Name <a@b.com>",
	}
	for _, email := range bad {
		errs := UserInput(email, "abcd")
		require.Len(t, errs, 1, "email %q", email)
		require.Equal(t, "Invalid email!", errs[0].Message)
	}

	good := []string{"a@b.com", "user.name+tag@example.co.uk", "x@sub.domain.io"}
	for _, email := range good {
		require.Empty(t, UserInput(email, "abcd"), "email %q", email)
	}
}

func TestUserInputPasswords(t *testing.T) {
	for _, pw := range []string{"", "a", "abc"} {
		errs := UserInput("a@b.com", pw)
		require.Len(t, errs, 1, "password %q", pw)
		require.Equal(t, "Invalid password!", errs[0].Message)
	}
	require.Empty(t, UserInput("a@b.com", "abcd"))
}

func TestUserInputCollectsAllViolations(t *testing.T) {
	errs := UserInput("not-an-email", "x")
	require.Len(t, errs, 2)
	// Order is stable: email first, then password.
	require.Equal(t, "Invalid email!", errs[0].Message)
	require.Equal(t, "Invalid password!", errs[1].Message)
}

func TestPostInput(t *testing.T) {
	require.Empty(t, PostInput("A real title", "Some content here"))

	errs := PostInput("hi", "no")
	require.Len(t, errs, 2)
	require.Equal(t, "Invalid title!", errs[0].Message)
	require.Equal(t, "Invalid content!", errs[1].Message)

	errs = PostInput("     ", "long enough content")
	require.Len(t, errs, 1)
	require.Equal(t, "Invalid title!", errs[0].Message)

	errs = PostInput("long enough title", "")
	require.Len(t, errs, 1)
	require.Equal(t, "Invalid content!", errs[0].Message)
}
