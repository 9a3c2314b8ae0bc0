package service

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned when a username or password is empty or
	// exceeds its length limit. No store access happens in that case.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDuplicateUsername is returned when registering a username that is
	// already taken.
	ErrDuplicateUsername = errors.New("username is already taken")

	// ErrInvalidCredentials is the common parent of every login failure
	// caused by the supplied credentials.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidUsername means no account has the supplied username.
	ErrInvalidUsername = fmt.Errorf("unknown username: %w", ErrInvalidCredentials)

	// ErrIncorrectPassword means the password does not match the account.
	ErrIncorrectPassword = fmt.Errorf("incorrect password: %w", ErrInvalidCredentials)

	ErrMalformedToken = errors.New("token is malformed")
	ErrBadSignature   = errors.New("token signature is invalid")
	ErrTokenExpired   = errors.New("token is expired")

	// ErrStorageUnavailable is returned when the credential store fails.
	ErrStorageUnavailable = errors.New("credential storage is unavailable")

	// ErrSigningFailure is returned when a token cannot be signed.
	ErrSigningFailure = errors.New("token signing failed")

	// ErrTimeout is returned when the request budget ran out during
	// hashing or storage access.
	ErrTimeout = errors.New("operation timed out")

	ErrVersionIsNotSpecified = errors.New("application version is not specified")
)
