package usecase_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"cinema-api/internal/data/entity"
	"cinema-api/internal/data/repository"
	"cinema-api/internal/dto/request"
	"cinema-api/internal/mocks"
	"cinema-api/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

type OrderServiceTestSuite struct {
	suite.Suite
	orders   *mocks.MockOrderRepo
	sessions *mocks.MockMovieSessionRepo
	service  usecase.OrderService
	caller   uuid.UUID
}

func (s *OrderServiceTestSuite) SetupTest() {
	s.orders = &mocks.MockOrderRepo{}
	s.sessions = &mocks.MockMovieSessionRepo{
		FindHallsBySessionIDsFunc: func(ctx context.Context, ids []int64) (map[int64]*entity.CinemaHall, error) {
			halls := map[int64]*entity.CinemaHall{}
			for _, id := range ids {
				if id == 1 {
					halls[id] = &entity.CinemaHall{ID: 5, Name: "Blue", Rows: 10, SeatsInRow: 12}
				}
			}
			return halls, nil
		},
	}
	s.caller = uuid.New()
	s.service = usecase.NewOrderService(&repository.Repository{
		Order:        s.orders,
		MovieSession: s.sessions,
	}, zap.NewNop())
}

func TestOrderServiceSuite(t *testing.T) {
	suite.Run(t, new(OrderServiceTestSuite))
}

func (s *OrderServiceTestSuite) TestCreateStampsCaller() {
	var stored *entity.Order
	s.orders.CreateFunc = func(ctx context.Context, order *entity.Order) error {
		stored = order
		order.ID = 11
		order.CreatedAt = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
		for i, t := range order.Tickets {
			t.ID = int64(100 + i)
			t.OrderID = order.ID
		}
		return nil
	}

	resp, err := s.service.Create(context.Background(), s.caller, &request.OrderRequest{
		Tickets: []request.TicketRequest{
			{MovieSession: 1, Row: 1, Seat: 1},
			{MovieSession: 1, Row: 10, Seat: 12},
		},
	})

	s.Require().NoError(err)
	s.Require().NotNil(stored)
	s.Equal(s.caller, stored.UserID)
	s.Equal(int64(11), resp.ID)
	s.Len(resp.Tickets, 2)
	s.Equal(12, resp.Tickets[1].Seat)
}

func (s *OrderServiceTestSuite) TestCreateRejectsInvalidTickets() {
	tests := []struct {
		name    string
		tickets []request.TicketRequest
	}{
		{name: "no tickets", tickets: nil},
		{name: "unknown session", tickets: []request.TicketRequest{{MovieSession: 2, Row: 1, Seat: 1}}},
		{name: "row outside hall", tickets: []request.TicketRequest{{MovieSession: 1, Row: 11, Seat: 1}}},
		{name: "seat outside hall", tickets: []request.TicketRequest{{MovieSession: 1, Row: 1, Seat: 13}}},
		{name: "zero row", tickets: []request.TicketRequest{{MovieSession: 1, Row: 0, Seat: 1}}},
		{
			name: "same seat twice",
			tickets: []request.TicketRequest{
				{MovieSession: 1, Row: 2, Seat: 3},
				{MovieSession: 1, Row: 2, Seat: 3},
			},
		},
	}

	s.orders.CreateFunc = func(ctx context.Context, order *entity.Order) error {
		s.Fail("repository must not be called for invalid orders")
		return nil
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.service.Create(context.Background(), s.caller, &request.OrderRequest{Tickets: tt.tickets})
			s.ErrorIs(err, usecase.ErrValidation)
		})
	}
}

func (s *OrderServiceTestSuite) TestCreateSeatAlreadyTaken() {
	s.orders.CreateFunc = func(ctx context.Context, order *entity.Order) error {
		return fmt.Errorf("create order: %w", repository.ErrDuplicate)
	}

	_, err := s.service.Create(context.Background(), s.caller, &request.OrderRequest{
		Tickets: []request.TicketRequest{{MovieSession: 1, Row: 4, Seat: 4}},
	})

	s.ErrorIs(err, usecase.ErrValidation)
	s.Contains(err.Error(), "seat already taken")
}

func (s *OrderServiceTestSuite) TestGetOtherUsersOrderIsNotFound() {
	s.orders.FindByIDForUserFunc = func(ctx context.Context, id int64, userID uuid.UUID) (*entity.Order, error) {
		s.Equal(s.caller, userID)
		return nil, nil
	}

	_, err := s.service.Get(context.Background(), s.caller, 99)

	s.ErrorIs(err, usecase.ErrNotFound)
}

func (s *OrderServiceTestSuite) TestListScopedToCaller() {
	s.orders.FindByUserFunc = func(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
		s.Equal(s.caller, userID)
		return []*entity.Order{
			{ID: 2, UserID: userID, Tickets: []*entity.Ticket{{ID: 5, MovieSessionID: 1, OrderID: 2, Row: 1, Seat: 2}}},
			{ID: 1, UserID: userID, Tickets: []*entity.Ticket{}},
		}, nil
	}

	orders, err := s.service.List(context.Background(), s.caller)

	s.Require().NoError(err)
	s.Len(orders, 2)
	s.Equal(int64(1), orders[0].Tickets[0].MovieSession)
	s.Empty(orders[1].Tickets)
}

func (s *OrderServiceTestSuite) TestUpdateOtherUsersOrderIsNotFound() {
	s.orders.ReplaceTicketsFunc = func(ctx context.Context, order *entity.Order) error {
		s.Equal(s.caller, order.UserID)
		return fmt.Errorf("update order %d: %w", order.ID, repository.ErrNotFound)
	}

	_, err := s.service.Update(context.Background(), s.caller, 7, &request.OrderRequest{
		Tickets: []request.TicketRequest{{MovieSession: 1, Row: 1, Seat: 1}},
	})

	s.ErrorIs(err, usecase.ErrNotFound)
}

func (s *OrderServiceTestSuite) TestDeleteOtherUsersOrderIsNotFound() {
	s.orders.DeleteFunc = func(ctx context.Context, id int64, userID uuid.UUID) error {
		return fmt.Errorf("order %d: %w", id, repository.ErrNotFound)
	}

	err := s.service.Delete(context.Background(), s.caller, 7)

	s.ErrorIs(err, usecase.ErrNotFound)
}
