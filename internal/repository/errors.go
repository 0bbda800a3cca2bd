package repository

import (
	"errors"

	"github.com/jackc/pgconn"
)

// SQLSTATE for unique-key violations.
const uniqueViolationCode = "23505"

// isUniqueViolation reports whether err carries a Postgres unique-key
// violation, so callers can surface a slug or email conflict instead of an
// opaque database error.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
