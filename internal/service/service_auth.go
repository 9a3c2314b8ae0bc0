package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-auth/internal/crypto"
	"github.com/MKhiriev/go-pass-auth/internal/logger"
	"github.com/MKhiriev/go-pass-auth/internal/store"
	"github.com/MKhiriev/go-pass-auth/internal/validators"
	"github.com/MKhiriev/go-pass-auth/models"
)

// authService is the concrete implementation of AuthService.
// It validates credentials, hashes and compares passwords through a
// PasswordHasher and persists records through a UserRepository.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// passwordHasher produces and checks the salted slow password hashes.
	passwordHasher crypto.PasswordHasher

	// validator rejects empty and oversized usernames and passwords.
	validator validators.Validator

	// now stamps CreatedAt of new records.
	now func() time.Time

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(
	userRepository store.UserRepository,
	passwordHasher crypto.PasswordHasher,
	validator validators.Validator,
	logger *logger.Logger,
) AuthService {
	return &authService{
		userRepository: userRepository,
		passwordHasher: passwordHasher,
		validator:      validator,
		now:            time.Now,
		logger:         logger,
	}
}

// RegisterUser creates a new account.
//
// Returns the persisted record (with a server-assigned UserID) or:
//   - ErrInvalidInput if the username or password is empty or too long.
//   - ErrDuplicateUsername if the username is taken.
//   - ErrTimeout if ctx ends during hashing or the insert.
//   - ErrStorageUnavailable on any other storage failure.
//
// A record with an empty password hash is never handed to the repository.
func (a *authService) RegisterUser(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContextOr(ctx, a.logger)

	if err := a.validator.Validate(ctx, creds); err != nil {
		log.Debug().Err(err).Object("credentials", creds).Msg("invalid registration data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	hash, err := a.passwordHasher.Hash(ctx, creds.Password)
	if err != nil {
		log.Err(err).Object("credentials", creds).Msg("password hashing failed")
		return models.User{}, hasherError(err)
	}

	user := models.User{
		Username:     creds.Username,
		PasswordHash: hash,
		CreatedAt:    a.now().UTC(),
	}
	if err = a.validator.Validate(ctx, user); err != nil {
		log.Error().Err(err).Str("username", user.Username).Msg("refusing to store incomplete user record")
		return models.User{}, fmt.Errorf("invalid user record: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, store.ErrUsernameAlreadyExists) {
			log.Info().Object("credentials", creds).Msg("username is already taken")
			return models.User{}, ErrDuplicateUsername
		}

		log.Err(err).Object("credentials", creds).Msg("user creation ended with error")
		return models.User{}, storageError(err)
	}

	log.Info().Int64("id", registeredUser.UserID).Str("username", registeredUser.Username).Msg("user registered")
	return registeredUser, nil
}

// Login authenticates an existing account.
//
// Returns the stored record or:
//   - ErrInvalidInput if the username or password is empty or too long;
//     the store is not consulted.
//   - ErrInvalidUsername if no account has the username.
//   - ErrIncorrectPassword if the password does not match.
//   - ErrTimeout or ErrStorageUnavailable as for RegisterUser.
//
// ErrInvalidUsername and ErrIncorrectPassword both match ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContextOr(ctx, a.logger)

	if err := a.validator.Validate(ctx, creds); err != nil {
		log.Debug().Err(err).Object("credentials", creds).Msg("invalid login data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, creds.Username)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Info().Object("credentials", creds).Msg("login with unknown username")
			return models.User{}, ErrInvalidUsername
		}

		log.Err(err).Object("credentials", creds).Msg("user search by username failed")
		return models.User{}, storageError(err)
	}

	err = a.passwordHasher.Compare(ctx, foundUser.PasswordHash, creds.Password)
	switch {
	case err == nil:
		return foundUser, nil
	case errors.Is(err, crypto.ErrPasswordMismatch):
		log.Info().Int64("id", foundUser.UserID).Str("username", foundUser.Username).Msg("wrong password")
		return models.User{}, ErrIncorrectPassword
	case isContextError(err):
		log.Err(err).Object("credentials", creds).Msg("password check interrupted")
		return models.User{}, fmt.Errorf("%w: %w", ErrTimeout, err)
	default:
		log.Error().Err(err).Int64("id", foundUser.UserID).Msg("stored password hash is unusable")
		return models.User{}, ErrIncorrectPassword
	}
}

func isContextError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}

func hasherError(err error) error {
	if isContextError(err) {
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	}
	return fmt.Errorf("error hashing password: %w", err)
}

func storageError(err error) error {
	if errors.Is(err, store.ErrStorageTimeout) || isContextError(err) {
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	}
	return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
}
