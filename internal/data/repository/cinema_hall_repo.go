package repository

import (
	"context"
	"errors"
	"fmt"

	"cinema-api/internal/data/entity"
	"cinema-api/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type CinemaHallRepository interface {
	FindAll(ctx context.Context) ([]*entity.CinemaHall, error)
	FindByID(ctx context.Context, id int64) (*entity.CinemaHall, error)
	Create(ctx context.Context, hall *entity.CinemaHall) error
	Update(ctx context.Context, hall *entity.CinemaHall) error
	CountTicketsOutside(ctx context.Context, hallID int64, rows, seatsInRow int) (int, error)
	Delete(ctx context.Context, id int64) error
}

type cinemaHallRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCinemaHallRepository(db database.PgxIface, log *zap.Logger) CinemaHallRepository {
	return &cinemaHallRepository{
		db:  db,
		log: log.With(zap.String("repository", "cinema_hall")),
	}
}

func (r *cinemaHallRepository) FindAll(ctx context.Context) ([]*entity.CinemaHall, error) {
	query := `SELECT id, name, rows, seats_in_row FROM cinema_halls ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find cinema halls", zap.Error(err))
		return nil, fmt.Errorf("find cinema halls: %w", err)
	}

	halls, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[entity.CinemaHall])
	if err != nil {
		r.log.Error("Failed to scan cinema hall rows", zap.Error(err))
		return nil, fmt.Errorf("scan cinema halls: %w", err)
	}

	return halls, nil
}

func (r *cinemaHallRepository) FindByID(ctx context.Context, id int64) (*entity.CinemaHall, error) {
	query := `SELECT id, name, rows, seats_in_row FROM cinema_halls WHERE id = $1`

	var hall entity.CinemaHall
	err := r.db.QueryRow(ctx, query, id).Scan(
		&hall.ID,
		&hall.Name,
		&hall.Rows,
		&hall.SeatsInRow,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find cinema hall by ID",
			zap.Error(err),
			zap.Int64("cinema_hall_id", id),
		)
		return nil, fmt.Errorf("find cinema hall by id %d: %w", id, err)
	}

	return &hall, nil
}

func (r *cinemaHallRepository) Create(ctx context.Context, hall *entity.CinemaHall) error {
	query := `
		INSERT INTO cinema_halls (name, rows, seats_in_row)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, hall.Name, hall.Rows, hall.SeatsInRow).Scan(&hall.ID)
	if err != nil {
		r.log.Error("Failed to create cinema hall",
			zap.Error(err),
			zap.String("name", hall.Name),
		)
		return fmt.Errorf("create cinema hall %q: %w", hall.Name, translateError(err))
	}

	return nil
}

func (r *cinemaHallRepository) Update(ctx context.Context, hall *entity.CinemaHall) error {
	query := `
		UPDATE cinema_halls
		SET name = $2, rows = $3, seats_in_row = $4
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, hall.ID, hall.Name, hall.Rows, hall.SeatsInRow)
	if err != nil {
		r.log.Error("Failed to update cinema hall",
			zap.Error(err),
			zap.Int64("cinema_hall_id", hall.ID),
		)
		return fmt.Errorf("update cinema hall %d: %w", hall.ID, translateError(err))
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("cinema hall %d: %w", hall.ID, ErrNotFound)
	}

	return nil
}

// CountTicketsOutside counts tickets sold in any session of the hall whose
// place would not exist in a rows x seatsInRow layout.
func (r *cinemaHallRepository) CountTicketsOutside(ctx context.Context, hallID int64, rows, seatsInRow int) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM tickets t
		JOIN movie_sessions ms ON ms.id = t.movie_session_id
		WHERE ms.cinema_hall_id = $1
		  AND (t."row" > $2 OR t.seat > $3)
	`

	var count int
	if err := r.db.QueryRow(ctx, query, hallID, rows, seatsInRow).Scan(&count); err != nil {
		r.log.Error("Failed to count tickets outside layout",
			zap.Error(err),
			zap.Int64("cinema_hall_id", hallID),
		)
		return 0, fmt.Errorf("count tickets outside hall %d layout: %w", hallID, err)
	}

	return count, nil
}

func (r *cinemaHallRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM cinema_halls WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete cinema hall",
			zap.Error(err),
			zap.Int64("cinema_hall_id", id),
		)
		return fmt.Errorf("delete cinema hall %d: %w", id, translateError(err))
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("cinema hall %d: %w", id, ErrNotFound)
	}

	r.log.Info("Cinema hall deleted", zap.Int64("cinema_hall_id", id))
	return nil
}
