package entity

import "time"

type MovieSession struct {
	ID           int64     `db:"id"`
	MovieID      int64     `db:"movie_id"`
	CinemaHallID int64     `db:"cinema_hall_id"`
	ShowTime     time.Time `db:"show_time"`
}

// MovieSessionListing is one row of the session listing query with the
// joined movie/hall columns and the sold ticket count.
type MovieSessionListing struct {
	MovieSession
	MovieTitle     string `db:"movie_title"`
	CinemaHallName string `db:"cinema_hall_name"`
	Capacity       int    `db:"capacity"`
	TicketsSold    int    `db:"tickets_sold"`
}

func (l *MovieSessionListing) TicketsAvailable() int {
	return l.Capacity - l.TicketsSold
}
