package repository

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const pgDuplicateKeyCode = "23505"

// MapError translates database errors to domain errors.
// It maps sql.ErrNoRows to notFoundErr. PostgreSQL unique violations (23505)
// are resolved through duplicates by constraint name; the "" entry acts as
// the fallback when no named constraint matches. Other errors are returned
// unchanged.
func MapError(err error, notFoundErr error, duplicates map[string]error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return notFoundErr
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgDuplicateKeyCode {
		if mapped, ok := duplicates[pgErr.ConstraintName]; ok {
			return mapped
		}
		if mapped, ok := duplicates[""]; ok {
			return mapped
		}
	}

	return err
}
