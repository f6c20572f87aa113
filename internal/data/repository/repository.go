package repository

import (
	"context"

	"cinema-api/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User         UserRepository
	Session      SessionRepository
	Genre        GenreRepository
	Actor        ActorRepository
	CinemaHall   CinemaHallRepository
	Movie        MovieRepository
	MovieSession MovieSessionRepository
	Order        OrderRepository

	db database.PgxIface
}

// Ping reports whether the database answers.
func (r *Repository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:         NewUserRepository(db, log),
		Session:      NewSessionRepository(db, log),
		Genre:        NewGenreRepository(db, log),
		Actor:        NewActorRepository(db, log),
		CinemaHall:   NewCinemaHallRepository(db, log),
		Movie:        NewMovieRepository(db, log),
		MovieSession: NewMovieSessionRepository(db, log),
		Order:        NewOrderRepository(db, log),
		db:           db,
	}
}
