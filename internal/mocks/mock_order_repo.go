package mocks

import (
	"context"

	"cinema-api/internal/data/entity"
	"cinema-api/internal/data/repository"

	"github.com/google/uuid"
)

type MockOrderRepo struct {
	repository.OrderRepository
	FindByUserFunc      func(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)
	FindByIDForUserFunc func(ctx context.Context, id int64, userID uuid.UUID) (*entity.Order, error)
	CreateFunc          func(ctx context.Context, order *entity.Order) error
	ReplaceTicketsFunc  func(ctx context.Context, order *entity.Order) error
	DeleteFunc          func(ctx context.Context, id int64, userID uuid.UUID) error
}

func (m *MockOrderRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	return m.FindByUserFunc(ctx, userID)
}

func (m *MockOrderRepo) FindByIDForUser(ctx context.Context, id int64, userID uuid.UUID) (*entity.Order, error) {
	return m.FindByIDForUserFunc(ctx, id, userID)
}

func (m *MockOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	return m.CreateFunc(ctx, order)
}

func (m *MockOrderRepo) ReplaceTickets(ctx context.Context, order *entity.Order) error {
	return m.ReplaceTicketsFunc(ctx, order)
}

func (m *MockOrderRepo) Delete(ctx context.Context, id int64, userID uuid.UUID) error {
	return m.DeleteFunc(ctx, id, userID)
}
