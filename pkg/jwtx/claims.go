package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Default token lifetimes. Both are overridable from config.
const (
	DefaultAccessTokenTTL  = 15 * time.Minute
	DefaultRefreshTokenTTL = 7 * 24 * time.Hour
)

// Claims are shared by access and refresh tokens. Access tokens carry the
// user's email and username; refresh tokens carry only the subject so a
// leaked refresh token reveals as little as possible.
type Claims struct {
	jwt.RegisteredClaims

	Email    string `json:"email,omitempty"`
	Username string `json:"username,omitempty"`
}

// NewAccessClaims builds claims for a short-lived access token.
func NewAccessClaims(userID, email, username, issuer string, ttl time.Duration, now time.Time) Claims {
	c := newRegistered(userID, issuer, ttl, now)
	c.Email = email
	c.Username = username
	return c
}

// NewRefreshClaims builds claims for a long-lived refresh token.
func NewRefreshClaims(userID, issuer string, ttl time.Duration, now time.Time) Claims {
	return newRegistered(userID, issuer, ttl, now)
}

func newRegistered(subject, issuer string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        NewJTI(),
		},
	}
}

// UserID is the subject claim.
func (c *Claims) UserID() string { return c.Subject }

// NewJTI returns a URL-safe random identifier for the "jti" claim. It also
// keeps two tokens minted in the same second for the same user distinct,
// which refresh rotation relies on.
func NewJTI() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}

// ValidateIssuer checks if the issuer matches expected value.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil
	}
	if c.Issuer != expected {
		return ErrIssuer
	}
	return nil
}
