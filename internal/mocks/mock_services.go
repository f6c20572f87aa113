package mocks

import (
	"context"

	"cinema-api/internal/dto/request"
	"cinema-api/internal/dto/response"
	"cinema-api/internal/usecase"

	"github.com/google/uuid"
)

type MockMovieService struct {
	usecase.MovieService
	ListFunc func(ctx context.Context, filter request.MovieFilter) ([]any, error)
}

func (m *MockMovieService) List(ctx context.Context, filter request.MovieFilter) ([]any, error) {
	return m.ListFunc(ctx, filter)
}

type MockMovieSessionService struct {
	usecase.MovieSessionService
	ListFunc func(ctx context.Context, filter request.MovieSessionFilter) ([]any, error)
}

func (m *MockMovieSessionService) List(ctx context.Context, filter request.MovieSessionFilter) ([]any, error) {
	return m.ListFunc(ctx, filter)
}

type MockOrderService struct {
	usecase.OrderService
	ListFunc   func(ctx context.Context, userID uuid.UUID) ([]response.OrderResponse, error)
	GetFunc    func(ctx context.Context, userID uuid.UUID, id int64) (*response.OrderResponse, error)
	CreateFunc func(ctx context.Context, userID uuid.UUID, req *request.OrderRequest) (*response.OrderResponse, error)
}

func (m *MockOrderService) List(ctx context.Context, userID uuid.UUID) ([]response.OrderResponse, error) {
	return m.ListFunc(ctx, userID)
}

func (m *MockOrderService) Get(ctx context.Context, userID uuid.UUID, id int64) (*response.OrderResponse, error) {
	return m.GetFunc(ctx, userID, id)
}

func (m *MockOrderService) Create(ctx context.Context, userID uuid.UUID, req *request.OrderRequest) (*response.OrderResponse, error) {
	return m.CreateFunc(ctx, userID, req)
}
