// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and other common operations.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UsernameCtxKey is the key under which the auth middleware stores the
// subject of a verified token.
//
//	ctx := context.WithValue(ctx, utils.UsernameCtxKey, "jz")
var UsernameCtxKey = contextKey("username")

// GetUsernameFromContext retrieves the authenticated username from the
// context. ok is false when the value is missing, empty or not a string.
func GetUsernameFromContext(ctx context.Context) (username string, ok bool) {
	username, ok = ctx.Value(UsernameCtxKey).(string)
	return username, ok && username != ""
}
