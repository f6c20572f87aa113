package repository

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLike(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "matrix", want: "matrix"},
		{in: "100%", want: `100\%`},
		{in: "a_b", want: `a\_b`},
		{in: `c:\path`, want: `c:\\path`},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, escapeLike(tt.in))
		})
	}
}

func TestBuildMovieListQuery(t *testing.T) {
	t.Run("no filters", func(t *testing.T) {
		query, args := buildMovieListQuery(MovieFilter{})

		assert.Empty(t, args)
		assert.NotContains(t, query, "EXISTS")
		assert.NotContains(t, query, "ILIKE")
		assert.True(t, strings.HasSuffix(strings.TrimSpace(query), "ORDER BY m.id"))
	})

	t.Run("all filters are combined with AND in order", func(t *testing.T) {
		filter := MovieFilter{
			ActorLastNames: []string{"Reeves", "Moss"},
			GenreIDs:       []int64{1, 3},
			Title:          "Matrix",
		}

		query, args := buildMovieListQuery(filter)

		assert.Equal(t, []any{filter.ActorLastNames, filter.GenreIDs, "Matrix"}, args)
		assert.Contains(t, query, "a.last_name = ANY($1)")
		assert.Contains(t, query, "mg.genre_id = ANY($2)")
		assert.Contains(t, query, `m.title ILIKE '%' || $3 || '%' ESCAPE '\'`)
		assert.Equal(t, 2, strings.Count(query, "AND EXISTS"))
	})

	t.Run("placeholders stay contiguous when a filter is skipped", func(t *testing.T) {
		query, args := buildMovieListQuery(MovieFilter{GenreIDs: []int64{2}, Title: "50%"})

		assert.Equal(t, []any{[]int64{2}, `50\%`}, args)
		assert.Contains(t, query, "mg.genre_id = ANY($1)")
		assert.Contains(t, query, "ILIKE '%' || $2 || '%'")
		assert.NotContains(t, query, "last_name")
	})
}
