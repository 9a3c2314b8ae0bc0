package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pass-auth/internal/config"
	"github.com/MKhiriev/go-pass-auth/internal/logger"
	"github.com/MKhiriev/go-pass-auth/migrations"
	sq "github.com/Masterminds/squirrel"
)

// DB is a connection pool bound to one backend. Besides the pool it carries
// what differs between backends: the SQL placeholder style, the driver
// error classifier and the migrations dialect.
type DB struct {
	*sql.DB
	placeholder        sq.PlaceholderFormat
	errorClassificator ErrorClassificator
	migrationDialect   string
	logger             *logger.Logger
}

// NewConnect opens the backend selected by the DSN scheme.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch {
	case strings.HasPrefix(cfg.DSN, "postgres://"), strings.HasPrefix(cfg.DSN, "postgresql://"):
		return NewConnectPostgres(ctx, cfg, log)
	case strings.HasPrefix(cfg.DSN, sqliteScheme):
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, ErrUnsupportedDSN
	}
}

// Migrate brings the schema up to date.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.migrationDialect)
}

// storageError converts a driver failure into a storage sentinel while
// keeping the cause in the chain for logging.
func storageError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %w", ErrStorageTimeout, err)
	}
	return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
}
