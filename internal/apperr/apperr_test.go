package apperr

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestKindCodes(t *testing.T) {
	require.Equal(t, 422, Invalid.Code())
	require.Equal(t, 401, Unauthenticated.Code())
	require.Equal(t, 403, Forbidden.Code())
	require.Equal(t, 404, NotFound.Code())
	require.Equal(t, 409, Conflict.Code())
	require.Equal(t, 500, Internal.Code())
}

func TestInvalidInputExtensions(t *testing.T) {
	err := InvalidInput([]Message{{Message: "Invalid email!"}, {Message: "Invalid password!"}})
	require.Equal(t, "Invalid input!", err.Error())

	ext := err.Extensions()
	require.Equal(t, 422, ext["code"])
	require.Equal(t, []Message{{Message: "Invalid email!"}, {Message: "Invalid password!"}}, ext["data"])
}

func TestPlainErrorHasNoData(t *testing.T) {
	ext := New(Forbidden, "Not authorized!").Extensions()
	require.Equal(t, 403, ext["code"])
	require.NotContains(t, ext, "data")
}

func TestKindOf(t *testing.T) {
	require.Equal(t, NotFound, KindOf(New(NotFound, "gone")))
	require.Equal(t, Internal, KindOf(errors.New("some db failure")))

	wrapped := errors.WithMessage(New(Conflict, "User already exists!"), "createUser")
	require.Equal(t, Conflict, KindOf(wrapped))
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(cause, "Internal server error!")
	require.Equal(t, Internal, err.Kind)
	require.ErrorIs(t, err, cause)
}
