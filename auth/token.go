// path: auth/token.go
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenIssuer mints the opaque token handed out at login. Issuance-only
// for now: no endpoint validates these tokens and nothing is persisted
// server-side.
// TODO: validate tokens in middleware once the clients start sending
// Authorization headers.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

// Issue signs an HS256 token for the user.
func (t *TokenIssuer) Issue(userID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		Issuer:    "rail-back",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}
