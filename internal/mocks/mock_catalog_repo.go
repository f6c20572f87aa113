package mocks

import (
	"context"

	"cinema-api/internal/data/entity"
	"cinema-api/internal/data/repository"
)

type MockGenreRepo struct {
	repository.GenreRepository
	FindAllFunc        func(ctx context.Context) ([]*entity.Genre, error)
	FindByIDFunc       func(ctx context.Context, id int64) (*entity.Genre, error)
	FindMissingIDsFunc func(ctx context.Context, ids []int64) ([]int64, error)
	CreateFunc         func(ctx context.Context, genre *entity.Genre) error
	UpdateFunc         func(ctx context.Context, genre *entity.Genre) error
	DeleteFunc         func(ctx context.Context, id int64) error
}

func (m *MockGenreRepo) FindAll(ctx context.Context) ([]*entity.Genre, error) {
	return m.FindAllFunc(ctx)
}

func (m *MockGenreRepo) FindByID(ctx context.Context, id int64) (*entity.Genre, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *MockGenreRepo) FindMissingIDs(ctx context.Context, ids []int64) ([]int64, error) {
	return m.FindMissingIDsFunc(ctx, ids)
}

func (m *MockGenreRepo) Create(ctx context.Context, genre *entity.Genre) error {
	return m.CreateFunc(ctx, genre)
}

func (m *MockGenreRepo) Update(ctx context.Context, genre *entity.Genre) error {
	return m.UpdateFunc(ctx, genre)
}

func (m *MockGenreRepo) Delete(ctx context.Context, id int64) error {
	return m.DeleteFunc(ctx, id)
}

type MockActorRepo struct {
	repository.ActorRepository
	FindAllFunc        func(ctx context.Context) ([]*entity.Actor, error)
	FindByIDFunc       func(ctx context.Context, id int64) (*entity.Actor, error)
	FindMissingIDsFunc func(ctx context.Context, ids []int64) ([]int64, error)
	CreateFunc         func(ctx context.Context, actor *entity.Actor) error
	UpdateFunc         func(ctx context.Context, actor *entity.Actor) error
	DeleteFunc         func(ctx context.Context, id int64) error
}

func (m *MockActorRepo) FindAll(ctx context.Context) ([]*entity.Actor, error) {
	return m.FindAllFunc(ctx)
}

func (m *MockActorRepo) FindByID(ctx context.Context, id int64) (*entity.Actor, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *MockActorRepo) FindMissingIDs(ctx context.Context, ids []int64) ([]int64, error) {
	return m.FindMissingIDsFunc(ctx, ids)
}

func (m *MockActorRepo) Create(ctx context.Context, actor *entity.Actor) error {
	return m.CreateFunc(ctx, actor)
}

func (m *MockActorRepo) Update(ctx context.Context, actor *entity.Actor) error {
	return m.UpdateFunc(ctx, actor)
}

func (m *MockActorRepo) Delete(ctx context.Context, id int64) error {
	return m.DeleteFunc(ctx, id)
}

type MockCinemaHallRepo struct {
	repository.CinemaHallRepository
	FindAllFunc             func(ctx context.Context) ([]*entity.CinemaHall, error)
	FindByIDFunc            func(ctx context.Context, id int64) (*entity.CinemaHall, error)
	CreateFunc              func(ctx context.Context, hall *entity.CinemaHall) error
	UpdateFunc              func(ctx context.Context, hall *entity.CinemaHall) error
	CountTicketsOutsideFunc func(ctx context.Context, hallID int64, rows, seatsInRow int) (int, error)
	DeleteFunc              func(ctx context.Context, id int64) error
}

func (m *MockCinemaHallRepo) FindAll(ctx context.Context) ([]*entity.CinemaHall, error) {
	return m.FindAllFunc(ctx)
}

func (m *MockCinemaHallRepo) FindByID(ctx context.Context, id int64) (*entity.CinemaHall, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *MockCinemaHallRepo) Create(ctx context.Context, hall *entity.CinemaHall) error {
	return m.CreateFunc(ctx, hall)
}

func (m *MockCinemaHallRepo) Update(ctx context.Context, hall *entity.CinemaHall) error {
	return m.UpdateFunc(ctx, hall)
}

func (m *MockCinemaHallRepo) CountTicketsOutside(ctx context.Context, hallID int64, rows, seatsInRow int) (int, error) {
	return m.CountTicketsOutsideFunc(ctx, hallID, rows, seatsInRow)
}

func (m *MockCinemaHallRepo) Delete(ctx context.Context, id int64) error {
	return m.DeleteFunc(ctx, id)
}
