package usecase

import (
	"cinema-api/internal/data/repository"
	"cinema-api/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth         AuthService
	Genre        GenreService
	Actor        ActorService
	CinemaHall   CinemaHallService
	Movie        MovieService
	MovieSession MovieSessionService
	Order        OrderService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:         NewAuthService(repo, config, log),
		Genre:        NewGenreService(repo.Genre, log),
		Actor:        NewActorService(repo.Actor, log),
		CinemaHall:   NewCinemaHallService(repo.CinemaHall, log),
		Movie:        NewMovieService(repo, log),
		MovieSession: NewMovieSessionService(repo, config.App.Location(), log),
		Order:        NewOrderService(repo, log),
	}
}
