package usecase

import (
	"context"
	"fmt"

	"cinema-api/internal/data/entity"
	"cinema-api/internal/data/repository"
	"cinema-api/internal/dto/request"
	"cinema-api/internal/dto/response"

	"go.uber.org/zap"
)

type CinemaHallService interface {
	List(ctx context.Context) ([]response.CinemaHallResponse, error)
	Get(ctx context.Context, id int64) (*response.CinemaHallResponse, error)
	Create(ctx context.Context, req *request.CinemaHallRequest) (*response.CinemaHallResponse, error)
	Update(ctx context.Context, id int64, req *request.CinemaHallRequest) (*response.CinemaHallResponse, error)
	Delete(ctx context.Context, id int64) error
}

type cinemaHallService struct {
	repo repository.CinemaHallRepository
	log  *zap.Logger
}

func NewCinemaHallService(repo repository.CinemaHallRepository, log *zap.Logger) CinemaHallService {
	return &cinemaHallService{
		repo: repo,
		log:  log.With(zap.String("service", "cinema_hall")),
	}
}

func (s *cinemaHallService) List(ctx context.Context) ([]response.CinemaHallResponse, error) {
	halls, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return response.CinemaHallsToResponse(halls), nil
}

func (s *cinemaHallService) Get(ctx context.Context, id int64) (*response.CinemaHallResponse, error) {
	hall, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if hall == nil {
		return nil, fmt.Errorf("cinema hall %d: %w", id, ErrNotFound)
	}

	resp := response.CinemaHallToResponse(hall)
	return &resp, nil
}

func (s *cinemaHallService) Create(ctx context.Context, req *request.CinemaHallRequest) (*response.CinemaHallResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	hall := &entity.CinemaHall{Name: req.Name, Rows: req.Rows, SeatsInRow: req.SeatsInRow}
	if err := s.repo.Create(ctx, hall); err != nil {
		return nil, fromRepository(err, "cinema hall")
	}

	s.log.Info("Cinema hall created",
		zap.Int64("cinema_hall_id", hall.ID),
		zap.Int("capacity", hall.Capacity()),
	)

	resp := response.CinemaHallToResponse(hall)
	return &resp, nil
}

func (s *cinemaHallService) Update(ctx context.Context, id int64, req *request.CinemaHallRequest) (*response.CinemaHallResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	outside, err := s.repo.CountTicketsOutside(ctx, id, req.Rows, req.SeatsInRow)
	if err != nil {
		return nil, err
	}
	if outside > 0 {
		return nil, fmt.Errorf("%w: %d sold tickets do not fit %d rows x %d seats",
			ErrValidation, outside, req.Rows, req.SeatsInRow)
	}

	hall := &entity.CinemaHall{ID: id, Name: req.Name, Rows: req.Rows, SeatsInRow: req.SeatsInRow}
	if err := s.repo.Update(ctx, hall); err != nil {
		return nil, fromRepository(err, "cinema hall")
	}

	resp := response.CinemaHallToResponse(hall)
	return &resp, nil
}

func (s *cinemaHallService) Delete(ctx context.Context, id int64) error {
	return fromRepository(s.repo.Delete(ctx, id), "cinema hall")
}
