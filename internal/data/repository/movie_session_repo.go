package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cinema-api/internal/data/entity"
	"cinema-api/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// MovieSessionFilter narrows the session listing. Day, when set, must be
// midnight of the wanted calendar day in the zone the day is meant in.
type MovieSessionFilter struct {
	Day     *time.Time
	MovieID *int64
}

type MovieSessionRepository interface {
	FindAll(ctx context.Context, filter MovieSessionFilter) ([]*entity.MovieSessionListing, error)
	FindByID(ctx context.Context, id int64) (*entity.MovieSession, error)
	FindTakenPlaces(ctx context.Context, sessionID int64) ([]entity.Place, error)
	FindHallsBySessionIDs(ctx context.Context, sessionIDs []int64) (map[int64]*entity.CinemaHall, error)
	Create(ctx context.Context, session *entity.MovieSession) error
	Update(ctx context.Context, session *entity.MovieSession) error
	CountTicketsOutside(ctx context.Context, sessionID int64, rows, seatsInRow int) (int, error)
	Delete(ctx context.Context, id int64) error
}

type movieSessionRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieSessionRepository(db database.PgxIface, log *zap.Logger) MovieSessionRepository {
	return &movieSessionRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie_session")),
	}
}

// buildMovieSessionListQuery selects each session once with its sold ticket
// count taken from a correlated sub-query, ordered by id.
func buildMovieSessionListQuery(filter MovieSessionFilter) (string, []any) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT ms.id, ms.movie_id, ms.cinema_hall_id, ms.show_time,
		       m.title AS movie_title,
		       h.name AS cinema_hall_name,
		       h.rows * h.seats_in_row AS capacity,
		       (SELECT COUNT(*) FROM tickets t WHERE t.movie_session_id = ms.id) AS tickets_sold
		FROM movie_sessions ms
		JOIN movies m ON m.id = ms.movie_id
		JOIN cinema_halls h ON h.id = ms.cinema_hall_id
		WHERE TRUE`)

	args := []any{}
	argCount := 1

	if filter.Day != nil {
		queryBuilder.WriteString(fmt.Sprintf(`
		  AND ms.show_time >= $%d AND ms.show_time < $%d`, argCount, argCount+1))
		args = append(args, *filter.Day, filter.Day.AddDate(0, 0, 1))
		argCount += 2
	}

	if filter.MovieID != nil {
		queryBuilder.WriteString(fmt.Sprintf(`
		  AND ms.movie_id = $%d`, argCount))
		args = append(args, *filter.MovieID)
	}

	queryBuilder.WriteString(`
		ORDER BY ms.id`)

	return queryBuilder.String(), args
}

func (r *movieSessionRepository) FindAll(ctx context.Context, filter MovieSessionFilter) ([]*entity.MovieSessionListing, error) {
	query, args := buildMovieSessionListQuery(filter)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find movie sessions", zap.Error(err))
		return nil, fmt.Errorf("find movie sessions: %w", err)
	}

	sessions, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[entity.MovieSessionListing])
	if err != nil {
		r.log.Error("Failed to scan movie session rows", zap.Error(err))
		return nil, fmt.Errorf("scan movie sessions: %w", err)
	}

	r.log.Debug("Movie sessions found", zap.Int("count", len(sessions)))

	return sessions, nil
}

func (r *movieSessionRepository) FindByID(ctx context.Context, id int64) (*entity.MovieSession, error) {
	query := `
		SELECT id, movie_id, cinema_hall_id, show_time
		FROM movie_sessions
		WHERE id = $1
	`

	var session entity.MovieSession
	err := r.db.QueryRow(ctx, query, id).Scan(
		&session.ID,
		&session.MovieID,
		&session.CinemaHallID,
		&session.ShowTime,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie session by ID",
			zap.Error(err),
			zap.Int64("movie_session_id", id),
		)
		return nil, fmt.Errorf("find movie session by id %d: %w", id, err)
	}

	return &session, nil
}

func (r *movieSessionRepository) FindTakenPlaces(ctx context.Context, sessionID int64) ([]entity.Place, error) {
	query := `
		SELECT "row", seat
		FROM tickets
		WHERE movie_session_id = $1
		ORDER BY "row", seat
	`

	rows, err := r.db.Query(ctx, query, sessionID)
	if err != nil {
		r.log.Error("Failed to find taken places",
			zap.Error(err),
			zap.Int64("movie_session_id", sessionID),
		)
		return nil, fmt.Errorf("find taken places for session %d: %w", sessionID, err)
	}

	places, err := pgx.CollectRows(rows, pgx.RowToStructByName[entity.Place])
	if err != nil {
		return nil, fmt.Errorf("scan taken places: %w", err)
	}

	return places, nil
}

// FindHallsBySessionIDs returns the hall layout of every known session,
// keyed by session id. Unknown ids are simply absent from the map.
func (r *movieSessionRepository) FindHallsBySessionIDs(ctx context.Context, sessionIDs []int64) (map[int64]*entity.CinemaHall, error) {
	halls := make(map[int64]*entity.CinemaHall, len(sessionIDs))
	if len(sessionIDs) == 0 {
		return halls, nil
	}

	query := `
		SELECT ms.id, h.id, h.name, h.rows, h.seats_in_row
		FROM movie_sessions ms
		JOIN cinema_halls h ON h.id = ms.cinema_hall_id
		WHERE ms.id = ANY($1)
	`

	rows, err := r.db.Query(ctx, query, sessionIDs)
	if err != nil {
		r.log.Error("Failed to find halls for sessions",
			zap.Error(err),
			zap.Int64s("movie_session_ids", sessionIDs),
		)
		return nil, fmt.Errorf("find halls for sessions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var sessionID int64
		var hall entity.CinemaHall
		if err := rows.Scan(&sessionID, &hall.ID, &hall.Name, &hall.Rows, &hall.SeatsInRow); err != nil {
			return nil, fmt.Errorf("scan session hall: %w", err)
		}
		halls[sessionID] = &hall
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate session halls: %w", err)
	}

	return halls, nil
}

func (r *movieSessionRepository) Create(ctx context.Context, session *entity.MovieSession) error {
	query := `
		INSERT INTO movie_sessions (movie_id, cinema_hall_id, show_time)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		session.MovieID,
		session.CinemaHallID,
		session.ShowTime,
	).Scan(&session.ID)

	if err != nil {
		r.log.Error("Failed to create movie session",
			zap.Error(err),
			zap.Int64("movie_id", session.MovieID),
			zap.Int64("cinema_hall_id", session.CinemaHallID),
			zap.Time("show_time", session.ShowTime),
		)
		return fmt.Errorf("create movie session for movie %d hall %d: %w",
			session.MovieID, session.CinemaHallID, translateError(err))
	}

	return nil
}

func (r *movieSessionRepository) Update(ctx context.Context, session *entity.MovieSession) error {
	query := `
		UPDATE movie_sessions
		SET movie_id = $2, cinema_hall_id = $3, show_time = $4
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		session.ID,
		session.MovieID,
		session.CinemaHallID,
		session.ShowTime,
	)

	if err != nil {
		r.log.Error("Failed to update movie session",
			zap.Error(err),
			zap.Int64("movie_session_id", session.ID),
		)
		return fmt.Errorf("update movie session %d: %w", session.ID, translateError(err))
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("movie session %d: %w", session.ID, ErrNotFound)
	}

	return nil
}

func (r *movieSessionRepository) CountTicketsOutside(ctx context.Context, sessionID int64, rows, seatsInRow int) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM tickets
		WHERE movie_session_id = $1
		  AND ("row" > $2 OR seat > $3)
	`

	var count int
	if err := r.db.QueryRow(ctx, query, sessionID, rows, seatsInRow).Scan(&count); err != nil {
		r.log.Error("Failed to count tickets outside layout",
			zap.Error(err),
			zap.Int64("movie_session_id", sessionID),
		)
		return 0, fmt.Errorf("count tickets outside layout for session %d: %w", sessionID, err)
	}

	return count, nil
}

func (r *movieSessionRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM movie_sessions WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete movie session",
			zap.Error(err),
			zap.Int64("movie_session_id", id),
		)
		return fmt.Errorf("delete movie session %d: %w", id, translateError(err))
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("movie session %d: %w", id, ErrNotFound)
	}

	r.log.Info("Movie session deleted", zap.Int64("movie_session_id", id))
	return nil
}
