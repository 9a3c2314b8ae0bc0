package store

import (
	"fmt"

	"github.com/MKhiriev/go-pass-auth/models"
	sq "github.com/Masterminds/squirrel"
)

var userColumns = []string{"id", "username", "password_hash", "created_at"}

// buildCreateUserQuery builds the INSERT of a credential record. The assigned
// id is read back with RETURNING, supported by PostgreSQL and SQLite 3.35+.
func buildCreateUserQuery(placeholder sq.PlaceholderFormat, user models.User) (string, []any, error) {
	query, args, err := sq.Insert(user.TableName()).
		Columns("username", "password_hash", "created_at").
		Values(user.Username, user.PasswordHash, user.CreatedAt).
		Suffix("RETURNING id").
		PlaceholderFormat(placeholder).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildFindUserByUsernameQuery(placeholder sq.PlaceholderFormat, username string) (string, []any, error) {
	query, args, err := sq.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"username": username}).
		PlaceholderFormat(placeholder).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
