// Package crypto holds the password hashing used by the authenticator.
package crypto
