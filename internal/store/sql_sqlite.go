package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pass-auth/internal/config"
	"github.com/MKhiriev/go-pass-auth/internal/logger"
	"github.com/MKhiriev/go-pass-auth/migrations"
	sq "github.com/Masterminds/squirrel"
	_ "modernc.org/sqlite"
)

const (
	sqliteScheme = "sqlite://"

	// sqliteBusyTimeout makes a writer wait for the file lock instead of
	// failing right away with SQLITE_BUSY.
	sqliteBusyTimeout = "_pragma=busy_timeout(5000)"
)

// NewConnectSQLite opens an embedded SQLite database. The DSN has the form
// sqlite://<path>, e.g. sqlite:///var/lib/go-pass-auth/users.db.
//
// SQLite serializes writers on the file lock, so the pool is capped to a
// single connection regardless of the configured limits.
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	dsn, err := sqliteDataSource(cfg.DSN)
	if err != nil {
		return nil, err
	}

	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)
	// an in-memory database lives as long as its only connection
	conn.SetConnMaxLifetime(0)

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		conn.Close()
		return nil, err
	}
	log.Info().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	return &DB{
		DB:                 conn,
		placeholder:        sq.Question,
		errorClassificator: NewSQLiteErrorClassifier(),
		migrationDialect:   migrations.DialectSQLite,
		logger:             log,
	}, nil
}

// sqliteDataSource turns a sqlite:// DSN into the data source name of the
// modernc driver.
func sqliteDataSource(dsn string) (string, error) {
	path, ok := strings.CutPrefix(dsn, sqliteScheme)
	if !ok || path == "" {
		return "", ErrUnsupportedDSN
	}

	if strings.Contains(path, "?") {
		return path + "&" + sqliteBusyTimeout, nil
	}
	return path + "?" + sqliteBusyTimeout, nil
}
