package auth

import "context"

// Identity is the request-scoped authenticated user, populated once by the
// token middleware before any resolver runs. Resolvers only read it.
type Identity struct {
	UserID int64
	Email  string
}

type ctxKeyIdentity struct{}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ctxKeyIdentity{}, id)
}

// IdentityFrom returns the authenticated identity, if any. The second return
// is the isAuth flag: false means the request carried no valid token.
func IdentityFrom(ctx context.Context) (Identity, bool) {
	v := ctx.Value(ctxKeyIdentity{})
	if v == nil {
		return Identity{}, false
	}
	id, ok := v.(Identity)
	return id, ok && id.UserID != 0
}
