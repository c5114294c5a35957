// Package token issues and verifies the signed credentials that bind a user
// id to an expiry window. A credential is an HS256 JWT carrying only the
// registered claims sub/iat/exp.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalid covers every verification failure: bad signature, malformed
// input, wrong algorithm, or expiry. Callers must not be able to tell a
// forged token from an expired one.
var ErrInvalid = errors.New("invalid or expired token")

const defaultTTL = 7 * 24 * time.Hour

// Codec mints and validates credentials with a shared HMAC secret.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

// NewCodec returns a Codec signing with secret. A non-positive ttl falls
// back to the 7-day default.
func NewCodec(secret string, ttl time.Duration) *Codec {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Codec{secret: []byte(secret), ttl: ttl}
}

// Issue mints a credential for the given subject id.
func (c *Codec) Issue(subject string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.secret)
}

// Verify validates raw and returns the embedded subject id. Any failure
// collapses to ErrInvalid.
func (c *Codec) Verify(raw string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil || !tkn.Valid || claims.Subject == "" {
		return "", ErrInvalid
	}
	return claims.Subject, nil
}
