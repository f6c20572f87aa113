package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMovieSessionListQuery(t *testing.T) {
	t.Run("no filters still computes availability", func(t *testing.T) {
		query, args := buildMovieSessionListQuery(MovieSessionFilter{})

		assert.Empty(t, args)
		assert.Contains(t, query, "h.rows * h.seats_in_row AS capacity")
		assert.Contains(t, query, "AS tickets_sold")
		assert.Contains(t, query, "ORDER BY ms.id")
		assert.NotContains(t, query, "show_time >=")
	})

	t.Run("date covers one calendar day in its zone", func(t *testing.T) {
		loc, err := time.LoadLocation("Asia/Jakarta")
		require.NoError(t, err)
		day := time.Date(2024, 3, 10, 0, 0, 0, 0, loc)

		query, args := buildMovieSessionListQuery(MovieSessionFilter{Day: &day})

		require.Len(t, args, 2)
		assert.Equal(t, day, args[0])
		assert.Equal(t, time.Date(2024, 3, 11, 0, 0, 0, 0, loc), args[1])
		assert.Contains(t, query, "ms.show_time >= $1 AND ms.show_time < $2")
	})

	t.Run("date and movie", func(t *testing.T) {
		day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
		movieID := int64(7)

		query, args := buildMovieSessionListQuery(MovieSessionFilter{Day: &day, MovieID: &movieID})

		require.Len(t, args, 3)
		assert.Equal(t, int64(7), args[2])
		assert.Contains(t, query, "ms.movie_id = $3")
	})

	t.Run("movie only", func(t *testing.T) {
		movieID := int64(4)

		query, args := buildMovieSessionListQuery(MovieSessionFilter{MovieID: &movieID})

		assert.Equal(t, []any{int64(4)}, args)
		assert.Contains(t, query, "ms.movie_id = $1")
	})
}
