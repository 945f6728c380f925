package auth

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims is the identity payload embedded in a signed token.
type Claims struct {
	UserID int64
	Email  string
}

type tokenClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Issuer signs and verifies bearer tokens. Tokens are stateless: nothing is
// stored server-side, the lifetime alone bounds exposure of a leaked token.
type Issuer struct {
	Secret   []byte
	Lifetime time.Duration
}

func NewIssuer(secret string, lifetime time.Duration) *Issuer {
	return &Issuer{Secret: []byte(secret), Lifetime: lifetime}
}

func (i *Issuer) Issue(userID int64, email string) (string, error) {
	now := time.Now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.Lifetime)),
		},
	})
	signed, err := tok.SignedString(i.Secret)
	if err != nil {
		return "", errors.Wrap(err, "signing token")
	}
	return signed, nil
}

// Verify parses and validates a token. Any failure (bad signature, wrong
// algorithm, expiry, malformed subject) comes back as ErrInvalidToken; the
// embedded user may no longer exist, which callers must handle themselves.
func (i *Issuer) Verify(tokenStr string) (Claims, error) {
	var tc tokenClaims
	tok, err := jwt.ParseWithClaims(tokenStr, &tc, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return i.Secret, nil
	})
	if err != nil || !tok.Valid {
		return Claims{}, errors.WithMessage(ErrInvalidToken, "parse")
	}
	uid, err := strconv.ParseInt(tc.Subject, 10, 64)
	if err != nil {
		return Claims{}, errors.WithMessage(ErrInvalidToken, "subject")
	}
	return Claims{UserID: uid, Email: tc.Email}, nil
}
