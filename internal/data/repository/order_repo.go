package repository

import (
	"context"
	"errors"
	"fmt"

	"cinema-api/internal/data/entity"
	"cinema-api/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// OrderRepository only ever reads or writes orders through their owner.
type OrderRepository interface {
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)
	FindByIDForUser(ctx context.Context, id int64, userID uuid.UUID) (*entity.Order, error)
	Create(ctx context.Context, order *entity.Order) error
	ReplaceTickets(ctx context.Context, order *entity.Order) error
	Delete(ctx context.Context, id int64, userID uuid.UUID) error
}

type orderRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOrderRepository(db database.PgxIface, log *zap.Logger) OrderRepository {
	return &orderRepository{
		db:  db,
		log: log.With(zap.String("repository", "order")),
	}
}

func (r *orderRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	query := `
		SELECT id, user_id, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find orders",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find orders for user %s: %w", userID, err)
	}

	orders, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[entity.Order])
	if err != nil {
		r.log.Error("Failed to scan order rows", zap.Error(err))
		return nil, fmt.Errorf("scan orders: %w", err)
	}

	if err := r.attachTickets(ctx, orders); err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *orderRepository) FindByIDForUser(ctx context.Context, id int64, userID uuid.UUID) (*entity.Order, error) {
	query := `
		SELECT id, user_id, created_at
		FROM orders
		WHERE id = $1 AND user_id = $2
	`

	var order entity.Order
	err := r.db.QueryRow(ctx, query, id, userID).Scan(
		&order.ID,
		&order.UserID,
		&order.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find order by ID",
			zap.Error(err),
			zap.Int64("order_id", id),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find order by id %d: %w", id, err)
	}

	if err := r.attachTickets(ctx, []*entity.Order{&order}); err != nil {
		return nil, err
	}

	return &order, nil
}

// attachTickets loads the tickets of all given orders in one query.
func (r *orderRepository) attachTickets(ctx context.Context, orders []*entity.Order) error {
	if len(orders) == 0 {
		return nil
	}

	byID := make(map[int64]*entity.Order, len(orders))
	ids := make([]int64, len(orders))
	for i, o := range orders {
		o.Tickets = []*entity.Ticket{}
		byID[o.ID] = o
		ids[i] = o.ID
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, movie_session_id, order_id, "row", seat
		FROM tickets
		WHERE order_id = ANY($1)
		ORDER BY id
	`, ids)
	if err != nil {
		r.log.Error("Failed to load order tickets", zap.Error(err))
		return fmt.Errorf("load order tickets: %w", err)
	}

	tickets, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[entity.Ticket])
	if err != nil {
		r.log.Error("Failed to scan ticket rows", zap.Error(err))
		return fmt.Errorf("scan tickets: %w", err)
	}

	for _, t := range tickets {
		byID[t.OrderID].Tickets = append(byID[t.OrderID].Tickets, t)
	}

	return nil
}

func insertTickets(ctx context.Context, q querier, order *entity.Order) error {
	query := `
		INSERT INTO tickets (movie_session_id, order_id, "row", seat)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	for _, t := range order.Tickets {
		t.OrderID = order.ID
		if err := q.QueryRow(ctx, query, t.MovieSessionID, order.ID, t.Row, t.Seat).Scan(&t.ID); err != nil {
			return fmt.Errorf("insert ticket session %d row %d seat %d: %w",
				t.MovieSessionID, t.Row, t.Seat, translateError(err))
		}
	}

	return nil
}

// Create inserts the order and all its tickets atomically. A seat that is
// already sold surfaces as ErrDuplicate.
func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO orders (user_id)
			VALUES ($1)
			RETURNING id, created_at
		`
		if err := tx.QueryRow(ctx, query, order.UserID).Scan(&order.ID, &order.CreatedAt); err != nil {
			return fmt.Errorf("insert order: %w", translateError(err))
		}

		return insertTickets(ctx, tx, order)
	})

	if err != nil {
		if !errors.Is(err, ErrDuplicate) {
			r.log.Error("Failed to create order",
				zap.Error(err),
				zap.String("user_id", order.UserID.String()),
				zap.Int("tickets", len(order.Tickets)),
			)
		}
		return fmt.Errorf("create order: %w", err)
	}

	r.log.Info("Order created",
		zap.Int64("order_id", order.ID),
		zap.String("user_id", order.UserID.String()),
	)
	return nil
}

// ReplaceTickets swaps the ticket set of an order owned by order.UserID.
// created_at and the owner are loaded back into order, never written.
func (r *orderRepository) ReplaceTickets(ctx context.Context, order *entity.Order) error {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		lock := `
			SELECT created_at
			FROM orders
			WHERE id = $1 AND user_id = $2
			FOR UPDATE
		`
		err := tx.QueryRow(ctx, lock, order.ID, order.UserID).Scan(&order.CreatedAt)
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("order %d: %w", order.ID, ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("lock order: %w", err)
		}

		if _, err := tx.Exec(ctx, `DELETE FROM tickets WHERE order_id = $1`, order.ID); err != nil {
			return fmt.Errorf("clear order tickets: %w", err)
		}

		return insertTickets(ctx, tx, order)
	})

	if err != nil {
		if !errors.Is(err, ErrNotFound) && !errors.Is(err, ErrDuplicate) {
			r.log.Error("Failed to replace order tickets",
				zap.Error(err),
				zap.Int64("order_id", order.ID),
			)
		}
		return fmt.Errorf("update order %d: %w", order.ID, err)
	}

	return nil
}

func (r *orderRepository) Delete(ctx context.Context, id int64, userID uuid.UUID) error {
	query := `DELETE FROM orders WHERE id = $1 AND user_id = $2`

	result, err := r.db.Exec(ctx, query, id, userID)
	if err != nil {
		r.log.Error("Failed to delete order",
			zap.Error(err),
			zap.Int64("order_id", id),
		)
		return fmt.Errorf("delete order %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("order %d: %w", id, ErrNotFound)
	}

	r.log.Info("Order deleted",
		zap.Int64("order_id", id),
		zap.String("user_id", userID.String()),
	)
	return nil
}
