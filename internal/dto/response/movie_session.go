package response

import (
	"time"

	"cinema-api/internal/data/entity"
)

type MovieSessionListResponse struct {
	ID                 int64     `json:"id"`
	ShowTime           time.Time `json:"show_time"`
	MovieTitle         string    `json:"movie_title"`
	CinemaHallName     string    `json:"cinema_hall_name"`
	CinemaHallCapacity int       `json:"cinema_hall_capacity"`
	TicketsAvailable   int       `json:"tickets_available"`
}

type PlaceResponse struct {
	Row  int `json:"row"`
	Seat int `json:"seat"`
}

type MovieSessionDetailResponse struct {
	ID          int64              `json:"id"`
	ShowTime    time.Time          `json:"show_time"`
	Movie       MovieListResponse  `json:"movie"`
	CinemaHall  CinemaHallResponse `json:"cinema_hall"`
	TakenPlaces []PlaceResponse    `json:"taken_places"`
}

type MovieSessionWriteResponse struct {
	ID         int64     `json:"id"`
	ShowTime   time.Time `json:"show_time"`
	Movie      int64     `json:"movie"`
	CinemaHall int64     `json:"cinema_hall"`
}

func MovieSessionToListResponse(listing *entity.MovieSessionListing) MovieSessionListResponse {
	return MovieSessionListResponse{
		ID:                 listing.ID,
		ShowTime:           listing.ShowTime,
		MovieTitle:         listing.MovieTitle,
		CinemaHallName:     listing.CinemaHallName,
		CinemaHallCapacity: listing.Capacity,
		TicketsAvailable:   listing.TicketsAvailable(),
	}
}

func MovieSessionToDetailResponse(
	session *entity.MovieSession,
	movie *entity.Movie,
	hall *entity.CinemaHall,
	taken []entity.Place,
) MovieSessionDetailResponse {
	places := make([]PlaceResponse, len(taken))
	for i, p := range taken {
		places[i] = PlaceResponse{Row: p.Row, Seat: p.Seat}
	}

	return MovieSessionDetailResponse{
		ID:          session.ID,
		ShowTime:    session.ShowTime,
		Movie:       MovieToListResponse(movie),
		CinemaHall:  CinemaHallToResponse(hall),
		TakenPlaces: places,
	}
}

func MovieSessionToWriteResponse(session *entity.MovieSession) MovieSessionWriteResponse {
	return MovieSessionWriteResponse{
		ID:         session.ID,
		ShowTime:   session.ShowTime,
		Movie:      session.MovieID,
		CinemaHall: session.CinemaHallID,
	}
}
