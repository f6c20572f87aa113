package repository

import (
	"errors"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestTranslateError(t *testing.T) {
	plain := errors.New("connection reset")

	tests := []struct {
		name   string
		err    error
		target error
	}{
		{
			name:   "unique violation",
			err:    &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "genres_name_key"},
			target: ErrDuplicate,
		},
		{
			name:   "foreign key violation",
			err:    &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, ConstraintName: "movie_genres_genre_id_fkey"},
			target: ErrInvalidReference,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translateError(tt.err)
			assert.ErrorIs(t, got, tt.target)
		})
	}

	t.Run("other errors pass through", func(t *testing.T) {
		assert.Same(t, plain, translateError(plain))

		checkViolation := &pgconn.PgError{Code: pgerrcode.CheckViolation}
		assert.Equal(t, error(checkViolation), translateError(checkViolation))
	})
}
