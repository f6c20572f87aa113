package usecase_test

import (
	"context"
	"testing"

	"cinema-api/internal/data/entity"
	"cinema-api/internal/data/repository"
	"cinema-api/internal/dto/request"
	"cinema-api/internal/mocks"
	"cinema-api/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCinemaHallServiceUpdate(t *testing.T) {
	tests := []struct {
		name        string
		outside     int
		updateErr   error
		wantErr     error
		wantUpdated bool
	}{
		{name: "grows the hall", wantUpdated: true},
		{name: "shrinking below sold seats is rejected", outside: 3, wantErr: usecase.ErrValidation},
		{name: "unknown hall", updateErr: repository.ErrNotFound, wantErr: usecase.ErrNotFound, wantUpdated: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			updated := false
			repo := &mocks.MockCinemaHallRepo{
				CountTicketsOutsideFunc: func(ctx context.Context, hallID int64, rows, seatsInRow int) (int, error) {
					assert.Equal(t, int64(5), hallID)
					assert.Equal(t, 8, rows)
					assert.Equal(t, 10, seatsInRow)
					return tt.outside, nil
				},
				UpdateFunc: func(ctx context.Context, hall *entity.CinemaHall) error {
					updated = true
					return tt.updateErr
				},
			}
			service := usecase.NewCinemaHallService(repo, zap.NewNop())

			resp, err := service.Update(context.Background(), 5, &request.CinemaHallRequest{Name: "Red", Rows: 8, SeatsInRow: 10})

			assert.Equal(t, tt.wantUpdated, updated)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 80, resp.Capacity)
		})
	}
}

func TestCinemaHallServiceCreateValidates(t *testing.T) {
	service := usecase.NewCinemaHallService(&mocks.MockCinemaHallRepo{}, zap.NewNop())

	_, err := service.Create(context.Background(), &request.CinemaHallRequest{Name: "Red", Rows: 0, SeatsInRow: 10})

	assert.ErrorIs(t, err, usecase.ErrValidation)
}
