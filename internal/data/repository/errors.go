package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound is returned by update/delete when no row matched.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate wraps a unique constraint violation.
	ErrDuplicate = errors.New("duplicate record")
	// ErrInvalidReference wraps a foreign key violation.
	ErrInvalidReference = errors.New("referenced record does not exist")
)

// translateError maps postgres constraint errors to the sentinels above and
// leaves every other error untouched.
func translateError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return fmt.Errorf("%w (%s)", ErrDuplicate, pgErr.ConstraintName)
	case pgerrcode.ForeignKeyViolation:
		return fmt.Errorf("%w (%s)", ErrInvalidReference, pgErr.ConstraintName)
	default:
		return err
	}
}
