// Package token implements issuing and verifying the signed bearer tokens
// that carry an authenticated identity between requests. The server is
// stateless with respect to tokens: validity is a pure function of the token
// contents and the process-wide signing secret.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/schnackhq/forum-api/internal/core/domain"
)

// Claims is the payload encoded into every issued token. Subject carries the
// account email; Username and Role are snapshots taken at issuance time.
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Codec signs and verifies HS256 tokens with an immutable secret.
type Codec struct {
	secret []byte
	now    func() time.Time
}

func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret), now: time.Now}
}

// Issue builds and signs a token for the given subject with iat = now and
// exp = now + ttl.
func (c *Codec) Issue(subject, username, role string, ttl time.Duration) (string, error) {
	now := c.now().UTC()
	claims := Claims{
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.secret)
}

// Verify parses the token and checks its signature. Expiry is deliberately
// not validated here so callers can tell a tampered token from an expired
// one; use IsExpired on the returned claims.
func (c *Codec) Verify(tokenString string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	}, jwt.WithoutClaimsValidation())
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || claims.Subject == "" || claims.ExpiresAt == nil {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}

// IsExpired reports whether the claims' expiry is strictly before now.
func (c *Codec) IsExpired(claims *Claims) bool {
	return claims.ExpiresAt.Time.Before(c.now().UTC())
}
