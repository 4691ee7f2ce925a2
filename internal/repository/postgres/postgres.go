// Package postgres implements the repository interfaces over database/sql
// with parameterized queries only.
package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"cybercorner/internal/repository"
)

// pgUniqueViolation is the PostgreSQL error code for unique_violation.
const pgUniqueViolation = "23505"

// wrapUnique translates driver-level unique violations into the
// repository-level sentinel so callers need no pgx knowledge.
func wrapUnique(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return fmt.Errorf("%w: %s", repository.ErrUniqueViolation, pgErr.ConstraintName)
	}
	return err
}
