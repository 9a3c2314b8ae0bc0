package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when an attempt to register a new
	// user fails because the username is already taken.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrNoUserWasFound is returned when a query expected to match a user
	// record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrStorageUnavailable wraps any driver failure that is not a
	// well-known domain condition (connection refused, broken pool, ...).
	ErrStorageUnavailable = errors.New("storage is unavailable")

	// ErrStorageTimeout is returned when the context of an operation ends
	// before the database answers.
	ErrStorageTimeout = errors.New("storage operation timed out")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrUnsupportedDSN is returned when the DSN scheme selects no known
	// backend.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)
