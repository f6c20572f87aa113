package usecase_test

import (
	"context"
	"testing"

	"cinema-api/internal/data/entity"
	"cinema-api/internal/data/repository"
	"cinema-api/internal/dto/request"
	"cinema-api/internal/dto/response"
	"cinema-api/internal/mocks"
	"cinema-api/internal/usecase"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func sampleMovie() *entity.Movie {
	return &entity.Movie{
		ID:          1,
		Title:       "The Matrix",
		Description: "A hacker learns the truth",
		Duration:    136,
		Genres:      []*entity.Genre{{ID: 2, Name: "Sci-Fi"}},
		Actors:      []*entity.Actor{{ID: 4, FirstName: "Keanu", LastName: "Reeves"}},
	}
}

func noMissingIDs(ctx context.Context, ids []int64) ([]int64, error) {
	return nil, nil
}

func TestMovieServiceListPassesFilterAndUsesListShape(t *testing.T) {
	var got repository.MovieFilter
	movies := &mocks.MockMovieRepo{
		FindAllFunc: func(ctx context.Context, filter repository.MovieFilter) ([]*entity.Movie, error) {
			got = filter
			return []*entity.Movie{sampleMovie()}, nil
		},
	}
	service := usecase.NewMovieService(&repository.Repository{Movie: movies}, zap.NewNop())

	out, err := service.List(context.Background(), request.MovieFilter{
		Actors:   []string{"Reeves"},
		GenreIDs: []int64{2},
		Title:    "matrix",
	})

	require.NoError(t, err)
	assert.Equal(t, repository.MovieFilter{
		ActorLastNames: []string{"Reeves"},
		GenreIDs:       []int64{2},
		Title:          "matrix",
	}, got)

	want := []any{response.MovieListResponse{
		ID:          1,
		Title:       "The Matrix",
		Description: "A hacker learns the truth",
		Duration:    136,
		Genres:      []string{"Sci-Fi"},
		Actors:      []string{"Keanu Reeves"},
	}}
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("list shape mismatch (-want +got):\n%s", diff)
	}
}

func TestMovieServiceGetUsesDetailShape(t *testing.T) {
	movies := &mocks.MockMovieRepo{
		FindByIDFunc: func(ctx context.Context, id int64) (*entity.Movie, error) {
			if id != 1 {
				return nil, nil
			}
			return sampleMovie(), nil
		},
	}
	service := usecase.NewMovieService(&repository.Repository{Movie: movies}, zap.NewNop())

	out, err := service.Get(context.Background(), 1)
	require.NoError(t, err)

	detail, ok := out.(response.MovieDetailResponse)
	require.True(t, ok, "expected detail shape, got %T", out)
	assert.Equal(t, "Sci-Fi", detail.Genres[0].Name)
	assert.Equal(t, "Keanu Reeves", detail.Actors[0].FullName)

	_, err = service.Get(context.Background(), 2)
	assert.ErrorIs(t, err, usecase.ErrNotFound)
}

func TestMovieServiceCreate(t *testing.T) {
	t.Run("unknown genre is a validation error", func(t *testing.T) {
		repo := &repository.Repository{
			Movie: &mocks.MockMovieRepo{},
			Genre: &mocks.MockGenreRepo{
				FindMissingIDsFunc: func(ctx context.Context, ids []int64) ([]int64, error) {
					return []int64{9}, nil
				},
			},
			Actor: &mocks.MockActorRepo{FindMissingIDsFunc: noMissingIDs},
		}
		service := usecase.NewMovieService(repo, zap.NewNop())

		_, err := service.Create(context.Background(), &request.MovieRequest{
			Title: "Heat", Duration: 170, Genres: []int64{9},
		})

		assert.ErrorIs(t, err, usecase.ErrValidation)
	})

	t.Run("links deduplicated ids and returns write shape", func(t *testing.T) {
		var stored *entity.Movie
		repo := &repository.Repository{
			Movie: &mocks.MockMovieRepo{
				CreateFunc: func(ctx context.Context, movie *entity.Movie) error {
					movie.ID = 8
					stored = movie
					return nil
				},
			},
			Genre: &mocks.MockGenreRepo{FindMissingIDsFunc: noMissingIDs},
			Actor: &mocks.MockActorRepo{FindMissingIDsFunc: noMissingIDs},
		}
		service := usecase.NewMovieService(repo, zap.NewNop())

		out, err := service.Create(context.Background(), &request.MovieRequest{
			Title:    "Heat",
			Duration: 170,
			Genres:   []int64{3, 3, 1},
			Actors:   []int64{5},
		})

		require.NoError(t, err)
		assert.Equal(t, []int64{3, 1}, stored.GenreIDs())
		assert.Equal(t, response.MovieWriteResponse{
			ID:       8,
			Title:    "Heat",
			Duration: 170,
			Genres:   []int64{3, 1},
			Actors:   []int64{5},
		}, out)
	})

	t.Run("payload validation", func(t *testing.T) {
		service := usecase.NewMovieService(&repository.Repository{}, zap.NewNop())

		_, err := service.Create(context.Background(), &request.MovieRequest{Title: "No duration"})

		assert.ErrorIs(t, err, usecase.ErrValidation)
	})
}
