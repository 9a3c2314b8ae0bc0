package models

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the claim set carried by a session token.
// Subject holds the username of the authenticated account.
type Claims struct {
	jwt.RegisteredClaims
}

// Token wraps a signed session token together with its decoded claims.
//
// SignedString holds the compact serialized form (header.payload.signature)
// that is handed to the client. The server never stores it.
type Token struct {
	// Claims are the claims that were signed into, or verified from, the token.
	Claims Claims `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`
}

// Username returns the subject claim of the token.
func (t *Token) Username() string {
	return t.Claims.Subject
}

// ExpiresAt returns the absolute expiration instant of the token.
// A zero time is returned if the token carries no exp claim.
func (t *Token) ExpiresAt() time.Time {
	if t.Claims.ExpiresAt == nil {
		return time.Time{}
	}
	return t.Claims.ExpiresAt.Time
}

// Validate implements [jwt.ClaimsValidator]. It is called by the jwt parser
// after the registered claims passed their own checks.
func (c Claims) Validate() error {
	if c.Subject == "" {
		return errEmptySubject
	}
	return nil
}

var errEmptySubject = errors.New("token subject is empty")

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
