package usecase_test

import (
	"context"
	"testing"
	"time"

	"cinema-api/internal/data/entity"
	"cinema-api/internal/data/repository"
	"cinema-api/internal/dto/request"
	"cinema-api/internal/dto/response"
	"cinema-api/internal/mocks"
	"cinema-api/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMovieSessionServiceList(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)

	var got repository.MovieSessionFilter
	sessions := &mocks.MockMovieSessionRepo{
		FindAllFunc: func(ctx context.Context, filter repository.MovieSessionFilter) ([]*entity.MovieSessionListing, error) {
			got = filter
			return []*entity.MovieSessionListing{{
				MovieSession:   entity.MovieSession{ID: 3, MovieID: 1, CinemaHallID: 2, ShowTime: time.Date(2024, 3, 10, 19, 0, 0, 0, loc)},
				MovieTitle:     "The Matrix",
				CinemaHallName: "Blue",
				Capacity:       120,
				TicketsSold:    5,
			}}, nil
		},
	}
	service := usecase.NewMovieSessionService(&repository.Repository{MovieSession: sessions}, loc, zap.NewNop())

	movieID := int64(1)
	out, err := service.List(context.Background(), request.MovieSessionFilter{Date: "2024-03-10", MovieID: &movieID})
	require.NoError(t, err)

	require.NotNil(t, got.Day)
	assert.True(t, got.Day.Equal(time.Date(2024, 3, 10, 0, 0, 0, 0, loc)))
	assert.Equal(t, loc, got.Day.Location())
	assert.Equal(t, &movieID, got.MovieID)

	require.Len(t, out, 1)
	listing, ok := out[0].(response.MovieSessionListResponse)
	require.True(t, ok, "expected list shape, got %T", out[0])
	assert.Equal(t, 120, listing.CinemaHallCapacity)
	assert.Equal(t, 115, listing.TicketsAvailable)
}

func TestMovieSessionServiceListRejectsBadDate(t *testing.T) {
	service := usecase.NewMovieSessionService(&repository.Repository{}, time.UTC, zap.NewNop())

	_, err := service.List(context.Background(), request.MovieSessionFilter{Date: "10/03/2024"})

	assert.ErrorIs(t, err, usecase.ErrValidation)
}

func TestMovieSessionServiceGetUsesDetailShape(t *testing.T) {
	show := time.Date(2024, 3, 10, 19, 0, 0, 0, time.UTC)
	repo := &repository.Repository{
		MovieSession: &mocks.MockMovieSessionRepo{
			FindByIDFunc: func(ctx context.Context, id int64) (*entity.MovieSession, error) {
				return &entity.MovieSession{ID: id, MovieID: 1, CinemaHallID: 2, ShowTime: show}, nil
			},
			FindTakenPlacesFunc: func(ctx context.Context, sessionID int64) ([]entity.Place, error) {
				return []entity.Place{{Row: 1, Seat: 4}}, nil
			},
		},
		Movie: &mocks.MockMovieRepo{
			FindByIDFunc: func(ctx context.Context, id int64) (*entity.Movie, error) {
				return sampleMovie(), nil
			},
		},
		CinemaHall: &mocks.MockCinemaHallRepo{
			FindByIDFunc: func(ctx context.Context, id int64) (*entity.CinemaHall, error) {
				return &entity.CinemaHall{ID: id, Name: "Blue", Rows: 10, SeatsInRow: 12}, nil
			},
		},
	}
	service := usecase.NewMovieSessionService(repo, time.UTC, zap.NewNop())

	out, err := service.Get(context.Background(), 3)
	require.NoError(t, err)

	detail, ok := out.(response.MovieSessionDetailResponse)
	require.True(t, ok, "expected detail shape, got %T", out)
	assert.Equal(t, "The Matrix", detail.Movie.Title)
	assert.Equal(t, 120, detail.CinemaHall.Capacity)
	assert.Equal(t, []response.PlaceResponse{{Row: 1, Seat: 4}}, detail.TakenPlaces)
}

func TestMovieSessionServiceCreate(t *testing.T) {
	show := time.Date(2024, 3, 10, 19, 0, 0, 0, time.UTC)
	repo := &repository.Repository{
		MovieSession: &mocks.MockMovieSessionRepo{
			CreateFunc: func(ctx context.Context, session *entity.MovieSession) error {
				session.ID = 12
				return nil
			},
		},
		Movie: &mocks.MockMovieRepo{
			FindByIDFunc: func(ctx context.Context, id int64) (*entity.Movie, error) {
				return sampleMovie(), nil
			},
		},
		CinemaHall: &mocks.MockCinemaHallRepo{
			FindByIDFunc: func(ctx context.Context, id int64) (*entity.CinemaHall, error) {
				if id != 2 {
					return nil, nil
				}
				return &entity.CinemaHall{ID: 2, Name: "Blue", Rows: 10, SeatsInRow: 12}, nil
			},
		},
	}
	service := usecase.NewMovieSessionService(repo, time.UTC, zap.NewNop())

	out, err := service.Create(context.Background(), &request.MovieSessionRequest{ShowTime: show, Movie: 1, CinemaHall: 2})
	require.NoError(t, err)
	assert.Equal(t, response.MovieSessionWriteResponse{ID: 12, ShowTime: show, Movie: 1, CinemaHall: 2}, out)

	_, err = service.Create(context.Background(), &request.MovieSessionRequest{ShowTime: show, Movie: 1, CinemaHall: 9})
	assert.ErrorIs(t, err, usecase.ErrValidation)
}

func TestMovieSessionServiceUpdateChecksHallLayout(t *testing.T) {
	show := time.Date(2024, 3, 11, 19, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		outside     int
		wantErr     error
		wantUpdated bool
	}{
		{name: "sold seats fit the new hall", outside: 0, wantUpdated: true},
		{name: "sold seats fall outside the new hall", outside: 2, wantErr: usecase.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotRows, gotSeats int
			updated := false
			repo := &repository.Repository{
				MovieSession: &mocks.MockMovieSessionRepo{
					CountTicketsOutsideFunc: func(ctx context.Context, sessionID int64, rows, seatsInRow int) (int, error) {
						assert.Equal(t, int64(3), sessionID)
						gotRows, gotSeats = rows, seatsInRow
						return tt.outside, nil
					},
					UpdateFunc: func(ctx context.Context, session *entity.MovieSession) error {
						updated = true
						return nil
					},
				},
				Movie: &mocks.MockMovieRepo{
					FindByIDFunc: func(ctx context.Context, id int64) (*entity.Movie, error) {
						return sampleMovie(), nil
					},
				},
				CinemaHall: &mocks.MockCinemaHallRepo{
					FindByIDFunc: func(ctx context.Context, id int64) (*entity.CinemaHall, error) {
						return &entity.CinemaHall{ID: id, Name: "Small", Rows: 4, SeatsInRow: 6}, nil
					},
				},
			}
			service := usecase.NewMovieSessionService(repo, time.UTC, zap.NewNop())

			_, err := service.Update(context.Background(), 3, &request.MovieSessionRequest{ShowTime: show, Movie: 1, CinemaHall: 7})

			assert.Equal(t, 4, gotRows)
			assert.Equal(t, 6, gotSeats)
			assert.Equal(t, tt.wantUpdated, updated)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
