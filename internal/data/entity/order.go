package entity

import (
	"time"

	"github.com/google/uuid"
)

type Order struct {
	ID        int64     `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	CreatedAt time.Time `db:"created_at"`
	Tickets   []*Ticket `db:"-"`
}

type Ticket struct {
	ID             int64 `db:"id"`
	MovieSessionID int64 `db:"movie_session_id"`
	OrderID        int64 `db:"order_id"`
	Row            int   `db:"row"`
	Seat           int   `db:"seat"`
}

// Place is a (row, seat) pair inside one session.
type Place struct {
	Row  int `db:"row"`
	Seat int `db:"seat"`
}
