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

// MovieService returns values in the shape picked by ShapeFor for each
// operation.
type MovieService interface {
	List(ctx context.Context, filter request.MovieFilter) ([]any, error)
	Get(ctx context.Context, id int64) (any, error)
	Create(ctx context.Context, req *request.MovieRequest) (any, error)
	Update(ctx context.Context, id int64, req *request.MovieRequest) (any, error)
	Delete(ctx context.Context, id int64) error
}

type movieService struct {
	repo *repository.Repository // movies plus genre/actor lookups
	log  *zap.Logger
}

func NewMovieService(repo *repository.Repository, log *zap.Logger) MovieService {
	return &movieService{
		repo: repo,
		log:  log.With(zap.String("service", "movie")),
	}
}

func presentMovie(action Action, movie *entity.Movie) any {
	switch ShapeFor(action) {
	case ShapeList:
		return response.MovieToListResponse(movie)
	case ShapeDetail:
		return response.MovieToDetailResponse(movie)
	default:
		return response.MovieToWriteResponse(movie)
	}
}

func (s *movieService) List(ctx context.Context, filter request.MovieFilter) ([]any, error) {
	movies, err := s.repo.Movie.FindAll(ctx, repository.MovieFilter{
		ActorLastNames: filter.Actors,
		GenreIDs:       filter.GenreIDs,
		Title:          filter.Title,
	})
	if err != nil {
		return nil, err
	}

	out := make([]any, len(movies))
	for i, m := range movies {
		out[i] = presentMovie(ActionList, m)
	}
	return out, nil
}

func (s *movieService) Get(ctx context.Context, id int64) (any, error) {
	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, fmt.Errorf("movie %d: %w", id, ErrNotFound)
	}

	return presentMovie(ActionRetrieve, movie), nil
}

func (s *movieService) Create(ctx context.Context, req *request.MovieRequest) (any, error) {
	movie, err := s.buildMovie(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Movie.Create(ctx, movie); err != nil {
		return nil, fromRepository(err, "movie")
	}

	s.log.Info("Movie created",
		zap.Int64("movie_id", movie.ID),
		zap.String("title", movie.Title),
	)

	return presentMovie(ActionCreate, movie), nil
}

func (s *movieService) Update(ctx context.Context, id int64, req *request.MovieRequest) (any, error) {
	movie, err := s.buildMovie(ctx, req)
	if err != nil {
		return nil, err
	}
	movie.ID = id

	if err := s.repo.Movie.Update(ctx, movie); err != nil {
		return nil, fromRepository(err, "movie")
	}

	return presentMovie(ActionUpdate, movie), nil
}

func (s *movieService) Delete(ctx context.Context, id int64) error {
	return fromRepository(s.repo.Movie.Delete(ctx, id), "movie")
}

// buildMovie validates the payload and checks that every linked genre and
// actor exists.
func (s *movieService) buildMovie(ctx context.Context, req *request.MovieRequest) (*entity.Movie, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	genreIDs := dedupeIDs(req.Genres)
	missing, err := s.repo.Genre.FindMissingIDs(ctx, genreIDs)
	if err != nil {
		return nil, err
	}
	if len(missing) > 0 {
		return nil, missingIDsError("genres", missing)
	}

	actorIDs := dedupeIDs(req.Actors)
	missing, err = s.repo.Actor.FindMissingIDs(ctx, actorIDs)
	if err != nil {
		return nil, err
	}
	if len(missing) > 0 {
		return nil, missingIDsError("actors", missing)
	}

	movie := &entity.Movie{
		Title:       req.Title,
		Description: req.Description,
		Duration:    req.Duration,
		Genres:      make([]*entity.Genre, len(genreIDs)),
		Actors:      make([]*entity.Actor, len(actorIDs)),
	}
	for i, id := range genreIDs {
		movie.Genres[i] = &entity.Genre{ID: id}
	}
	for i, id := range actorIDs {
		movie.Actors[i] = &entity.Actor{ID: id}
	}

	return movie, nil
}
