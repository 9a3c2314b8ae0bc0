package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/MKhiriev/go-pass-auth/internal/logger"
	"github.com/MKhiriev/go-pass-auth/models"
	"github.com/sethvargo/go-retry"
)

const (
	// defaultReadAttempts is the total number of tries of a read,
	// the first one included.
	defaultReadAttempts = 3
	defaultRetryBase    = 50 * time.Millisecond
)

// userRepository is the SQL implementation of [UserRepository] over the
// "users" table. Every method borrows one connection from the pool and
// gives it back before returning.
type userRepository struct {
	logger    *logger.Logger
	db        *DB
	attempts  uint64
	retryBase time.Duration
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:        db,
		logger:    logger,
		attempts:  defaultReadAttempts,
		retryBase: defaultRetryBase,
	}
}

// CreateUser persists a new credential record and returns it with the
// UserID assigned by the database. The other fields are stored as given.
//
// Inserts are never retried. Error handling:
//   - UNIQUE violation on username → [ErrUsernameAlreadyExists].
//   - context deadline or cancellation → [ErrStorageTimeout].
//   - any other driver error → [ErrStorageUnavailable].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateUserQuery(r.db.placeholder, user)
	if err != nil {
		return models.User{}, err
	}

	conn, err := r.db.Conn(ctx)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error acquiring connection")
		return models.User{}, storageError(err)
	}
	defer conn.Close()

	created := user
	err = conn.QueryRowContext(ctx, query, args...).Scan(&created.UserID)
	if err != nil {
		if r.db.errorClassificator.IsUniqueViolation(err) {
			log.Debug().Str("func", "*userRepository.CreateUser").Str("username", user.Username).Msg("username is taken")
			return models.User{}, ErrUsernameAlreadyExists
		}

		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, storageError(err)
	}

	return created, nil
}

// FindUserByUsername returns the record whose username equals username.
//
// Transient failures, as judged by the backend's [ErrorClassificator], are
// retried with exponential backoff. Error handling:
//   - no row → [ErrNoUserWasFound].
//   - context deadline or cancellation → [ErrStorageTimeout].
//   - any other driver error → [ErrStorageUnavailable].
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserByUsernameQuery(r.db.placeholder, username)
	if err != nil {
		return models.User{}, err
	}

	var found models.User
	backoff := retry.WithMaxRetries(r.attempts-1, retry.NewExponential(r.retryBase))

	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		user, err := r.findUser(ctx, query, args)
		if err != nil {
			if r.db.errorClassificator.Classify(err) == Retryable {
				log.Warn().Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("retrying user lookup")
				return retry.RetryableError(err)
			}
			return err
		}

		found = user
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNoUserWasFound) {
			return models.User{}, err
		}

		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("error finding user")
		return models.User{}, storageError(err)
	}

	return found, nil
}

func (r *userRepository) findUser(ctx context.Context, query string, args []any) (models.User, error) {
	conn, err := r.db.Conn(ctx)
	if err != nil {
		return models.User{}, err
	}
	defer conn.Close()

	var user models.User
	err = conn.QueryRowContext(ctx, query, args...).
		Scan(&user.UserID, &user.Username, &user.PasswordHash, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}

	return user, err
}
