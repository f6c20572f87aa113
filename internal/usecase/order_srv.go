package usecase

import (
	"context"
	"errors"
	"fmt"

	"cinema-api/internal/data/entity"
	"cinema-api/internal/data/repository"
	"cinema-api/internal/dto/request"
	"cinema-api/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// OrderService takes the caller id on every call; an order owned by someone
// else behaves as if it did not exist.
type OrderService interface {
	List(ctx context.Context, userID uuid.UUID) ([]response.OrderResponse, error)
	Get(ctx context.Context, userID uuid.UUID, id int64) (*response.OrderResponse, error)
	Create(ctx context.Context, userID uuid.UUID, req *request.OrderRequest) (*response.OrderResponse, error)
	Update(ctx context.Context, userID uuid.UUID, id int64, req *request.OrderRequest) (*response.OrderResponse, error)
	Delete(ctx context.Context, userID uuid.UUID, id int64) error
}

type orderService struct {
	repo *repository.Repository // orders plus session hall lookups
	log  *zap.Logger
}

func NewOrderService(repo *repository.Repository, log *zap.Logger) OrderService {
	return &orderService{
		repo: repo,
		log:  log.With(zap.String("service", "order")),
	}
}

func (s *orderService) List(ctx context.Context, userID uuid.UUID) ([]response.OrderResponse, error) {
	orders, err := s.repo.Order.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]response.OrderResponse, len(orders))
	for i, o := range orders {
		out[i] = response.OrderToResponse(o)
	}
	return out, nil
}

func (s *orderService) Get(ctx context.Context, userID uuid.UUID, id int64) (*response.OrderResponse, error) {
	order, err := s.repo.Order.FindByIDForUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fmt.Errorf("order %d: %w", id, ErrNotFound)
	}

	resp := response.OrderToResponse(order)
	return &resp, nil
}

func (s *orderService) Create(ctx context.Context, userID uuid.UUID, req *request.OrderRequest) (*response.OrderResponse, error) {
	tickets, err := s.buildTickets(ctx, req)
	if err != nil {
		return nil, err
	}

	order := &entity.Order{UserID: userID, Tickets: tickets}
	if err := s.repo.Order.Create(ctx, order); err != nil {
		return nil, orderError(err)
	}

	s.log.Info("Order placed",
		zap.Int64("order_id", order.ID),
		zap.String("user_id", userID.String()),
		zap.Int("tickets", len(tickets)),
	)

	resp := response.OrderToResponse(order)
	return &resp, nil
}

func (s *orderService) Update(ctx context.Context, userID uuid.UUID, id int64, req *request.OrderRequest) (*response.OrderResponse, error) {
	tickets, err := s.buildTickets(ctx, req)
	if err != nil {
		return nil, err
	}

	order := &entity.Order{ID: id, UserID: userID, Tickets: tickets}
	if err := s.repo.Order.ReplaceTickets(ctx, order); err != nil {
		return nil, orderError(err)
	}

	resp := response.OrderToResponse(order)
	return &resp, nil
}

func (s *orderService) Delete(ctx context.Context, userID uuid.UUID, id int64) error {
	return fromRepository(s.repo.Order.Delete(ctx, id, userID), "order")
}

// orderError reports a ticket uniqueness violation as a taken seat.
func orderError(err error) error {
	if errors.Is(err, repository.ErrDuplicate) {
		return fmt.Errorf("%w: seat already taken", ErrValidation)
	}
	return fromRepository(err, "order")
}

// buildTickets validates the payload against the hall layout of every
// referenced session. Seats sold to other orders are caught by the
// tickets unique constraint on insert.
func (s *orderService) buildTickets(ctx context.Context, req *request.OrderRequest) ([]*entity.Ticket, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	sessionIDs := make([]int64, 0, len(req.Tickets))
	for _, t := range req.Tickets {
		sessionIDs = append(sessionIDs, t.MovieSession)
	}

	halls, err := s.repo.MovieSession.FindHallsBySessionIDs(ctx, dedupeIDs(sessionIDs))
	if err != nil {
		return nil, err
	}

	type seatKey struct {
		session   int64
		row, seat int
	}
	seen := make(map[seatKey]struct{}, len(req.Tickets))
	tickets := make([]*entity.Ticket, 0, len(req.Tickets))

	for i, t := range req.Tickets {
		hall, ok := halls[t.MovieSession]
		if !ok {
			return nil, fmt.Errorf("%w: tickets[%d]: movie session %d does not exist", ErrValidation, i, t.MovieSession)
		}
		if t.Row < 1 || t.Row > hall.Rows {
			return nil, fmt.Errorf("%w: tickets[%d]: row must be in range [1, %d]", ErrValidation, i, hall.Rows)
		}
		if t.Seat < 1 || t.Seat > hall.SeatsInRow {
			return nil, fmt.Errorf("%w: tickets[%d]: seat must be in range [1, %d]", ErrValidation, i, hall.SeatsInRow)
		}

		key := seatKey{t.MovieSession, t.Row, t.Seat}
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("%w: tickets[%d]: seat listed twice", ErrValidation, i)
		}
		seen[key] = struct{}{}

		tickets = append(tickets, &entity.Ticket{
			MovieSessionID: t.MovieSession,
			Row:            t.Row,
			Seat:           t.Seat,
		})
	}

	return tickets, nil
}
