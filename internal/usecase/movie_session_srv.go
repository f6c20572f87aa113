package usecase

import (
	"context"
	"fmt"
	"time"

	"cinema-api/internal/data/entity"
	"cinema-api/internal/data/repository"
	"cinema-api/internal/dto/request"
	"cinema-api/internal/dto/response"

	"go.uber.org/zap"
)

type MovieSessionService interface {
	List(ctx context.Context, filter request.MovieSessionFilter) ([]any, error)
	Get(ctx context.Context, id int64) (any, error)
	Create(ctx context.Context, req *request.MovieSessionRequest) (any, error)
	Update(ctx context.Context, id int64, req *request.MovieSessionRequest) (any, error)
	Delete(ctx context.Context, id int64) error
}

type movieSessionService struct {
	repo     *repository.Repository
	location *time.Location
	log      *zap.Logger
}

// NewMovieSessionService resolves date filters as calendar days in loc.
func NewMovieSessionService(repo *repository.Repository, loc *time.Location, log *zap.Logger) MovieSessionService {
	if loc == nil {
		loc = time.UTC
	}
	return &movieSessionService{
		repo:     repo,
		location: loc,
		log:      log.With(zap.String("service", "movie_session")),
	}
}

// movieSessionView holds whatever was loaded for one session; each shape
// reads only its own part.
type movieSessionView struct {
	session *entity.MovieSession
	listing *entity.MovieSessionListing
	movie   *entity.Movie
	hall    *entity.CinemaHall
	taken   []entity.Place
}

func presentMovieSession(action Action, v movieSessionView) any {
	switch ShapeFor(action) {
	case ShapeList:
		return response.MovieSessionToListResponse(v.listing)
	case ShapeDetail:
		return response.MovieSessionToDetailResponse(v.session, v.movie, v.hall, v.taken)
	default:
		return response.MovieSessionToWriteResponse(v.session)
	}
}

// dayStart parses YYYY-MM-DD as midnight in the service location.
func (s *movieSessionService) dayStart(date string) (*time.Time, error) {
	if date == "" {
		return nil, nil
	}
	day, err := time.ParseInLocation(time.DateOnly, date, s.location)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrValidation)
	}
	return &day, nil
}

func (s *movieSessionService) List(ctx context.Context, filter request.MovieSessionFilter) ([]any, error) {
	if err := validate(filter); err != nil {
		return nil, err
	}

	day, err := s.dayStart(filter.Date)
	if err != nil {
		return nil, err
	}

	listings, err := s.repo.MovieSession.FindAll(ctx, repository.MovieSessionFilter{
		Day:     day,
		MovieID: filter.MovieID,
	})
	if err != nil {
		return nil, err
	}

	out := make([]any, len(listings))
	for i, l := range listings {
		out[i] = presentMovieSession(ActionList, movieSessionView{listing: l})
	}
	return out, nil
}

func (s *movieSessionService) Get(ctx context.Context, id int64) (any, error) {
	session, err := s.repo.MovieSession.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, fmt.Errorf("movie session %d: %w", id, ErrNotFound)
	}

	movie, err := s.repo.Movie.FindByID(ctx, session.MovieID)
	if err != nil {
		return nil, err
	}
	hall, err := s.repo.CinemaHall.FindByID(ctx, session.CinemaHallID)
	if err != nil {
		return nil, err
	}
	// Both are FK-protected; a miss means the session was deleted meanwhile.
	if movie == nil || hall == nil {
		return nil, fmt.Errorf("movie session %d: %w", id, ErrNotFound)
	}

	taken, err := s.repo.MovieSession.FindTakenPlaces(ctx, id)
	if err != nil {
		return nil, err
	}

	return presentMovieSession(ActionRetrieve, movieSessionView{
		session: session,
		movie:   movie,
		hall:    hall,
		taken:   taken,
	}), nil
}

func (s *movieSessionService) Create(ctx context.Context, req *request.MovieSessionRequest) (any, error) {
	session, _, err := s.buildSession(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := s.repo.MovieSession.Create(ctx, session); err != nil {
		return nil, fromRepository(err, "movie session")
	}

	s.log.Info("Movie session created",
		zap.Int64("movie_session_id", session.ID),
		zap.Int64("movie_id", session.MovieID),
		zap.Time("show_time", session.ShowTime),
	)

	return presentMovieSession(ActionCreate, movieSessionView{session: session}), nil
}

func (s *movieSessionService) Update(ctx context.Context, id int64, req *request.MovieSessionRequest) (any, error) {
	session, hall, err := s.buildSession(ctx, req)
	if err != nil {
		return nil, err
	}
	session.ID = id

	outside, err := s.repo.MovieSession.CountTicketsOutside(ctx, id, hall.Rows, hall.SeatsInRow)
	if err != nil {
		return nil, err
	}
	if outside > 0 {
		return nil, fmt.Errorf("%w: %d sold tickets do not fit cinema hall %d",
			ErrValidation, outside, hall.ID)
	}

	if err := s.repo.MovieSession.Update(ctx, session); err != nil {
		return nil, fromRepository(err, "movie session")
	}

	return presentMovieSession(ActionUpdate, movieSessionView{session: session}), nil
}

func (s *movieSessionService) Delete(ctx context.Context, id int64) error {
	return fromRepository(s.repo.MovieSession.Delete(ctx, id), "movie session")
}

// buildSession also returns the target hall so Update can check its layout.
func (s *movieSessionService) buildSession(ctx context.Context, req *request.MovieSessionRequest) (*entity.MovieSession, *entity.CinemaHall, error) {
	if err := validate(req); err != nil {
		return nil, nil, err
	}

	movie, err := s.repo.Movie.FindByID(ctx, req.Movie)
	if err != nil {
		return nil, nil, err
	}
	if movie == nil {
		return nil, nil, fmt.Errorf("%w: movie %d does not exist", ErrValidation, req.Movie)
	}

	hall, err := s.repo.CinemaHall.FindByID(ctx, req.CinemaHall)
	if err != nil {
		return nil, nil, err
	}
	if hall == nil {
		return nil, nil, fmt.Errorf("%w: cinema hall %d does not exist", ErrValidation, req.CinemaHall)
	}

	return &entity.MovieSession{
		MovieID:      req.Movie,
		CinemaHallID: req.CinemaHall,
		ShowTime:     req.ShowTime,
	}, hall, nil
}
