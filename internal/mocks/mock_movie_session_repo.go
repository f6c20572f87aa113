package mocks

import (
	"context"

	"cinema-api/internal/data/entity"
	"cinema-api/internal/data/repository"
)

type MockMovieSessionRepo struct {
	repository.MovieSessionRepository
	FindAllFunc               func(ctx context.Context, filter repository.MovieSessionFilter) ([]*entity.MovieSessionListing, error)
	FindByIDFunc              func(ctx context.Context, id int64) (*entity.MovieSession, error)
	FindTakenPlacesFunc       func(ctx context.Context, sessionID int64) ([]entity.Place, error)
	FindHallsBySessionIDsFunc func(ctx context.Context, sessionIDs []int64) (map[int64]*entity.CinemaHall, error)
	CreateFunc                func(ctx context.Context, session *entity.MovieSession) error
	UpdateFunc                func(ctx context.Context, session *entity.MovieSession) error
	CountTicketsOutsideFunc   func(ctx context.Context, sessionID int64, rows, seatsInRow int) (int, error)
}

func (m *MockMovieSessionRepo) FindAll(ctx context.Context, filter repository.MovieSessionFilter) ([]*entity.MovieSessionListing, error) {
	return m.FindAllFunc(ctx, filter)
}

func (m *MockMovieSessionRepo) FindByID(ctx context.Context, id int64) (*entity.MovieSession, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *MockMovieSessionRepo) FindTakenPlaces(ctx context.Context, sessionID int64) ([]entity.Place, error) {
	return m.FindTakenPlacesFunc(ctx, sessionID)
}

func (m *MockMovieSessionRepo) FindHallsBySessionIDs(ctx context.Context, sessionIDs []int64) (map[int64]*entity.CinemaHall, error) {
	return m.FindHallsBySessionIDsFunc(ctx, sessionIDs)
}

func (m *MockMovieSessionRepo) Create(ctx context.Context, session *entity.MovieSession) error {
	return m.CreateFunc(ctx, session)
}

func (m *MockMovieSessionRepo) Update(ctx context.Context, session *entity.MovieSession) error {
	return m.UpdateFunc(ctx, session)
}

func (m *MockMovieSessionRepo) CountTicketsOutside(ctx context.Context, sessionID int64, rows, seatsInRow int) (int, error) {
	return m.CountTicketsOutsideFunc(ctx, sessionID, rows, seatsInRow)
}
