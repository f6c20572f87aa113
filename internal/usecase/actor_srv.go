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

type ActorService interface {
	List(ctx context.Context) ([]response.ActorResponse, error)
	Get(ctx context.Context, id int64) (*response.ActorResponse, error)
	Create(ctx context.Context, req *request.ActorRequest) (*response.ActorResponse, error)
	Update(ctx context.Context, id int64, req *request.ActorRequest) (*response.ActorResponse, error)
	Delete(ctx context.Context, id int64) error
}

type actorService struct {
	repo repository.ActorRepository
	log  *zap.Logger
}

func NewActorService(repo repository.ActorRepository, log *zap.Logger) ActorService {
	return &actorService{
		repo: repo,
		log:  log.With(zap.String("service", "actor")),
	}
}

func (s *actorService) List(ctx context.Context) ([]response.ActorResponse, error) {
	actors, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return response.ActorsToResponse(actors), nil
}

func (s *actorService) Get(ctx context.Context, id int64) (*response.ActorResponse, error) {
	actor, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if actor == nil {
		return nil, fmt.Errorf("actor %d: %w", id, ErrNotFound)
	}

	resp := response.ActorToResponse(actor)
	return &resp, nil
}

func (s *actorService) Create(ctx context.Context, req *request.ActorRequest) (*response.ActorResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	actor := &entity.Actor{FirstName: req.FirstName, LastName: req.LastName}
	if err := s.repo.Create(ctx, actor); err != nil {
		return nil, fromRepository(err, "actor")
	}

	s.log.Info("Actor created", zap.Int64("actor_id", actor.ID), zap.String("full_name", actor.FullName()))

	resp := response.ActorToResponse(actor)
	return &resp, nil
}

func (s *actorService) Update(ctx context.Context, id int64, req *request.ActorRequest) (*response.ActorResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	actor := &entity.Actor{ID: id, FirstName: req.FirstName, LastName: req.LastName}
	if err := s.repo.Update(ctx, actor); err != nil {
		return nil, fromRepository(err, "actor")
	}

	resp := response.ActorToResponse(actor)
	return &resp, nil
}

func (s *actorService) Delete(ctx context.Context, id int64) error {
	return fromRepository(s.repo.Delete(ctx, id), "actor")
}
