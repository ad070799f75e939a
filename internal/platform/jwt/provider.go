// Package jwtmw issues and verifies the signed authentication tokens and
// provides the Gin middleware that gates authenticated routes.
package jwtmw

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is how long an issued token stays valid. There is no
// refresh mechanism; a new token requires signing in again.
const DefaultTTL = 15 * 24 * time.Hour

// ErrInvalidToken is returned by Verify for every verification failure.
// Expired, malformed and badly signed tokens are indistinguishable to
// the caller on purpose.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the verified content of a token.
type Claims struct {
	UserID   uint
	Username string
	Roles    []string
}

// tokenClaims is the wire shape of the token payload.
type tokenClaims struct {
	UserID uint     `json:"uid"`
	Roles  []string `json:"roles"`
	jwt.RegisteredClaims
}

// Provider signs and verifies tokens with a process-wide symmetric key.
// The key is loaded once at startup and never mutated, so a single
// Provider is safe to share across requests.
type Provider struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewProvider creates a Provider. A non-positive ttl falls back to DefaultTTL.
func NewProvider(secret, issuer string, ttl time.Duration) *Provider {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Provider{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
	}
}

// Generate creates a signed token carrying the username as subject, the
// configured issuer and the caller's role names.
func (p *Provider) Generate(userID uint, username string, roles []string) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		UserID: userID,
		Roles:  roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			Issuer:    p.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(p.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(p.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify validates the signature, expiry and issuer of a token and
// returns its claims. Any failure yields ErrInvalidToken.
func (p *Provider) Verify(tokenStr string) (*Claims, error) {
	var claims tokenClaims
	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (interface{}, error) {
		// Only HMAC is acceptable for a symmetric key
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return p.secret, nil
	}, jwt.WithIssuer(p.issuer), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	return &Claims{
		UserID:   claims.UserID,
		Username: claims.Subject,
		Roles:    claims.Roles,
	}, nil
}
