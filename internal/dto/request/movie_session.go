package request

import "time"

type MovieSessionRequest struct {
	ShowTime   time.Time `json:"show_time" validate:"required"`
	Movie      int64     `json:"movie" validate:"required,gte=1"`
	CinemaHall int64     `json:"cinema_hall" validate:"required,gte=1"`
}

// MovieSessionFilter is parsed from the query string of
// GET /api/movie-sessions. Date is kept as YYYY-MM-DD and resolved in the
// server time zone by the service.
type MovieSessionFilter struct {
	Date    string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	MovieID *int64 `json:"movie"`
}
