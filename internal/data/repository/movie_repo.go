package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cinema-api/internal/data/entity"
	"cinema-api/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// MovieFilter narrows the movie listing. Empty fields are ignored and the
// present ones are combined with AND.
type MovieFilter struct {
	ActorLastNames []string
	GenreIDs       []int64
	Title          string
}

type MovieRepository interface {
	FindAll(ctx context.Context, filter MovieFilter) ([]*entity.Movie, error)
	FindByID(ctx context.Context, id int64) (*entity.Movie, error)
	Create(ctx context.Context, movie *entity.Movie) error
	Update(ctx context.Context, movie *entity.Movie) error
	Delete(ctx context.Context, id int64) error
}

type movieRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieRepository(db database.PgxIface, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie")),
	}
}

// escapeLike makes LIKE wildcards in user input match literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// buildMovieListQuery uses EXISTS sub-queries for the multi-valued filters so
// a movie matching several actors or genres is still returned once.
func buildMovieListQuery(filter MovieFilter) (string, []any) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT m.id, m.title, m.description, m.duration
		FROM movies m
		WHERE TRUE`)

	args := []any{}
	argCount := 1

	if len(filter.ActorLastNames) > 0 {
		queryBuilder.WriteString(fmt.Sprintf(`
		  AND EXISTS (
			SELECT 1 FROM movie_actors ma
			JOIN actors a ON a.id = ma.actor_id
			WHERE ma.movie_id = m.id AND a.last_name = ANY($%d)
		  )`, argCount))
		args = append(args, filter.ActorLastNames)
		argCount++
	}

	if len(filter.GenreIDs) > 0 {
		queryBuilder.WriteString(fmt.Sprintf(`
		  AND EXISTS (
			SELECT 1 FROM movie_genres mg
			WHERE mg.movie_id = m.id AND mg.genre_id = ANY($%d)
		  )`, argCount))
		args = append(args, filter.GenreIDs)
		argCount++
	}

	if filter.Title != "" {
		queryBuilder.WriteString(fmt.Sprintf(`
		  AND m.title ILIKE '%%' || $%d || '%%' ESCAPE '\'`, argCount))
		args = append(args, escapeLike(filter.Title))
	}

	queryBuilder.WriteString(`
		ORDER BY m.id`)

	return queryBuilder.String(), args
}

func (r *movieRepository) FindAll(ctx context.Context, filter MovieFilter) ([]*entity.Movie, error) {
	query, args := buildMovieListQuery(filter)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find all movies",
			zap.Error(err),
			zap.Strings("actors", filter.ActorLastNames),
			zap.Int64s("genres", filter.GenreIDs),
			zap.String("title", filter.Title),
		)
		return nil, fmt.Errorf("find movies: %w", err)
	}

	movies, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[entity.Movie])
	if err != nil {
		r.log.Error("Failed to scan movie rows", zap.Error(err))
		return nil, fmt.Errorf("scan movies: %w", err)
	}

	if err := r.attachRelations(ctx, movies); err != nil {
		return nil, err
	}

	r.log.Debug("Movies found", zap.Int("count", len(movies)))

	return movies, nil
}

func (r *movieRepository) FindByID(ctx context.Context, id int64) (*entity.Movie, error) {
	query := `SELECT id, title, description, duration FROM movies WHERE id = $1`

	var movie entity.Movie
	err := r.db.QueryRow(ctx, query, id).Scan(
		&movie.ID,
		&movie.Title,
		&movie.Description,
		&movie.Duration,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie by ID",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return nil, fmt.Errorf("find movie by id %d: %w", id, err)
	}

	if err := r.attachRelations(ctx, []*entity.Movie{&movie}); err != nil {
		return nil, err
	}

	return &movie, nil
}

// attachRelations loads genres and actors for all movies with one query per
// relation instead of one per movie.
func (r *movieRepository) attachRelations(ctx context.Context, movies []*entity.Movie) error {
	if len(movies) == 0 {
		return nil
	}

	byID := make(map[int64]*entity.Movie, len(movies))
	ids := make([]int64, len(movies))
	for i, m := range movies {
		m.Genres = []*entity.Genre{}
		m.Actors = []*entity.Actor{}
		byID[m.ID] = m
		ids[i] = m.ID
	}

	genreRows, err := r.db.Query(ctx, `
		SELECT mg.movie_id, g.id, g.name
		FROM movie_genres mg
		JOIN genres g ON g.id = mg.genre_id
		WHERE mg.movie_id = ANY($1)
		ORDER BY g.id
	`, ids)
	if err != nil {
		r.log.Error("Failed to load movie genres", zap.Error(err))
		return fmt.Errorf("load movie genres: %w", err)
	}
	defer genreRows.Close()

	for genreRows.Next() {
		var movieID int64
		var genre entity.Genre
		if err := genreRows.Scan(&movieID, &genre.ID, &genre.Name); err != nil {
			r.log.Error("Failed to scan movie genre row", zap.Error(err))
			return fmt.Errorf("scan movie genre: %w", err)
		}
		byID[movieID].Genres = append(byID[movieID].Genres, &genre)
	}
	if err := genreRows.Err(); err != nil {
		return fmt.Errorf("iterate movie genres: %w", err)
	}

	actorRows, err := r.db.Query(ctx, `
		SELECT ma.movie_id, a.id, a.first_name, a.last_name
		FROM movie_actors ma
		JOIN actors a ON a.id = ma.actor_id
		WHERE ma.movie_id = ANY($1)
		ORDER BY a.id
	`, ids)
	if err != nil {
		r.log.Error("Failed to load movie actors", zap.Error(err))
		return fmt.Errorf("load movie actors: %w", err)
	}
	defer actorRows.Close()

	for actorRows.Next() {
		var movieID int64
		var actor entity.Actor
		if err := actorRows.Scan(&movieID, &actor.ID, &actor.FirstName, &actor.LastName); err != nil {
			r.log.Error("Failed to scan movie actor row", zap.Error(err))
			return fmt.Errorf("scan movie actor: %w", err)
		}
		byID[movieID].Actors = append(byID[movieID].Actors, &actor)
	}
	if err := actorRows.Err(); err != nil {
		return fmt.Errorf("iterate movie actors: %w", err)
	}

	return nil
}

// replaceLinks rewrites the genre and actor link rows of one movie.
func replaceLinks(ctx context.Context, q querier, movie *entity.Movie) error {
	if _, err := q.Exec(ctx, `DELETE FROM movie_genres WHERE movie_id = $1`, movie.ID); err != nil {
		return fmt.Errorf("clear movie genres: %w", err)
	}
	if _, err := q.Exec(ctx, `DELETE FROM movie_actors WHERE movie_id = $1`, movie.ID); err != nil {
		return fmt.Errorf("clear movie actors: %w", err)
	}

	if ids := movie.GenreIDs(); len(ids) > 0 {
		_, err := q.Exec(ctx, `
			INSERT INTO movie_genres (movie_id, genre_id)
			SELECT $1, g FROM unnest($2::bigint[]) AS g
		`, movie.ID, ids)
		if err != nil {
			return fmt.Errorf("link movie genres: %w", translateError(err))
		}
	}

	if ids := movie.ActorIDs(); len(ids) > 0 {
		_, err := q.Exec(ctx, `
			INSERT INTO movie_actors (movie_id, actor_id)
			SELECT $1, a FROM unnest($2::bigint[]) AS a
		`, movie.ID, ids)
		if err != nil {
			return fmt.Errorf("link movie actors: %w", translateError(err))
		}
	}

	return nil
}

// Create inserts the movie and its genre/actor links in one transaction.
func (r *movieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO movies (title, description, duration)
			VALUES ($1, $2, $3)
			RETURNING id
		`
		if err := tx.QueryRow(ctx, query, movie.Title, movie.Description, movie.Duration).Scan(&movie.ID); err != nil {
			return fmt.Errorf("insert movie: %w", translateError(err))
		}

		return replaceLinks(ctx, tx, movie)
	})

	if err != nil {
		r.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title", movie.Title),
		)
		return fmt.Errorf("create movie %q: %w", movie.Title, err)
	}

	return nil
}

// Update overwrites the movie columns and replaces its link sets.
func (r *movieRepository) Update(ctx context.Context, movie *entity.Movie) error {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		query := `
			UPDATE movies
			SET title = $2, description = $3, duration = $4
			WHERE id = $1
		`
		result, err := tx.Exec(ctx, query, movie.ID, movie.Title, movie.Description, movie.Duration)
		if err != nil {
			return fmt.Errorf("update movie row: %w", translateError(err))
		}
		if result.RowsAffected() == 0 {
			return fmt.Errorf("movie %d: %w", movie.ID, ErrNotFound)
		}

		return replaceLinks(ctx, tx, movie)
	})

	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			r.log.Error("Failed to update movie",
				zap.Error(err),
				zap.Int64("movie_id", movie.ID),
			)
		}
		return fmt.Errorf("update movie %d: %w", movie.ID, err)
	}

	return nil
}

func (r *movieRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM movies WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete movie",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return fmt.Errorf("delete movie %d: %w", id, translateError(err))
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("movie %d: %w", id, ErrNotFound)
	}

	r.log.Info("Movie deleted", zap.Int64("movie_id", id))
	return nil
}
