package mocks

import (
	"context"

	"cinema-api/internal/data/entity"
	"cinema-api/internal/data/repository"
)

type MockMovieRepo struct {
	repository.MovieRepository
	FindAllFunc  func(ctx context.Context, filter repository.MovieFilter) ([]*entity.Movie, error)
	FindByIDFunc func(ctx context.Context, id int64) (*entity.Movie, error)
	CreateFunc   func(ctx context.Context, movie *entity.Movie) error
	UpdateFunc   func(ctx context.Context, movie *entity.Movie) error
}

func (m *MockMovieRepo) FindAll(ctx context.Context, filter repository.MovieFilter) ([]*entity.Movie, error) {
	return m.FindAllFunc(ctx, filter)
}

func (m *MockMovieRepo) FindByID(ctx context.Context, id int64) (*entity.Movie, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *MockMovieRepo) Create(ctx context.Context, movie *entity.Movie) error {
	return m.CreateFunc(ctx, movie)
}

func (m *MockMovieRepo) Update(ctx context.Context, movie *entity.Movie) error {
	return m.UpdateFunc(ctx, movie)
}
