package store

import (
	"context"

	"github.com/MKhiriev/go-pass-auth/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists credential records. It offers no way to update
// or delete a record once created.
type UserRepository interface {
	// CreateUser inserts the username, password hash and creation time of
	// user and returns the stored record with its assigned UserID.
	// A taken username yields [ErrUsernameAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername returns the record with the given username or
	// [ErrNoUserWasFound].
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

// ErrorClassificator inspects driver errors of one database backend.
type ErrorClassificator interface {
	// Classify reports whether the operation that failed with err may
	// succeed when attempted again.
	Classify(err error) ErrorClassification

	// IsUniqueViolation reports whether err is a UNIQUE constraint failure.
	IsUniqueViolation(err error) bool
}
