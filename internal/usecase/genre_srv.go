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

type GenreService interface {
	List(ctx context.Context) ([]response.GenreResponse, error)
	Get(ctx context.Context, id int64) (*response.GenreResponse, error)
	Create(ctx context.Context, req *request.GenreRequest) (*response.GenreResponse, error)
	Update(ctx context.Context, id int64, req *request.GenreRequest) (*response.GenreResponse, error)
	Delete(ctx context.Context, id int64) error
}

type genreService struct {
	repo repository.GenreRepository
	log  *zap.Logger
}

func NewGenreService(repo repository.GenreRepository, log *zap.Logger) GenreService {
	return &genreService{
		repo: repo,
		log:  log.With(zap.String("service", "genre")),
	}
}

func (s *genreService) List(ctx context.Context) ([]response.GenreResponse, error) {
	genres, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return response.GenresToResponse(genres), nil
}

func (s *genreService) Get(ctx context.Context, id int64) (*response.GenreResponse, error) {
	genre, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if genre == nil {
		return nil, fmt.Errorf("genre %d: %w", id, ErrNotFound)
	}

	resp := response.GenreToResponse(genre)
	return &resp, nil
}

func (s *genreService) Create(ctx context.Context, req *request.GenreRequest) (*response.GenreResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	genre := &entity.Genre{Name: req.Name}
	if err := s.repo.Create(ctx, genre); err != nil {
		return nil, fromRepository(err, "genre")
	}

	s.log.Info("Genre created", zap.Int64("genre_id", genre.ID), zap.String("name", genre.Name))

	resp := response.GenreToResponse(genre)
	return &resp, nil
}

func (s *genreService) Update(ctx context.Context, id int64, req *request.GenreRequest) (*response.GenreResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	genre := &entity.Genre{ID: id, Name: req.Name}
	if err := s.repo.Update(ctx, genre); err != nil {
		return nil, fromRepository(err, "genre")
	}

	resp := response.GenreToResponse(genre)
	return &resp, nil
}

func (s *genreService) Delete(ctx context.Context, id int64) error {
	return fromRepository(s.repo.Delete(ctx, id), "genre")
}
