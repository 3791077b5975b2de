package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/introprep/assay/pkg/idx"
)

// DefaultAccessTokenTTL is the default session token lifetime. There is no
// refresh flow, so tokens live long enough to cover a writing session.
const DefaultAccessTokenTTL = 12 * time.Hour

// Claims are the session-token claims. The subject is the user ID (the login
// email); DisplayName rides along so callers can greet the user without a
// lookup.
type Claims struct {
	jwt.RegisteredClaims

	DisplayName string `json:"display_name,omitempty"`
}

// NewSessionClaims builds minimally-correct claims bound to a single user.
func NewSessionClaims(userID, displayName, issuer string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        idx.New().String(),
		},
		DisplayName: displayName,
	}
}

// ValidateIssuer checks the issuer claim against the expected value.
// An empty expected issuer enforces nothing.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil
	}
	if c.Issuer != expected {
		return ErrIssuer
	}
	return nil
}

// ValidateExpiry ensures the token hasn't expired (exp) and isn't used
// before it is valid (nbf).
func (c *Claims) ValidateExpiry() error {
	now := time.Now().UTC()

	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Time) {
		return ErrExpired
	}
	if c.NotBefore != nil && now.Before(c.NotBefore.Time) {
		return ErrNotYetValid
	}
	return nil
}
