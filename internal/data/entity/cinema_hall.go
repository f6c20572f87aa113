package entity

type CinemaHall struct {
	ID         int64  `db:"id"`
	Name       string `db:"name"`
	Rows       int    `db:"rows"`
	SeatsInRow int    `db:"seats_in_row"`
}

// Capacity is always derived from the hall layout and never stored.
func (h *CinemaHall) Capacity() int {
	return h.Rows * h.SeatsInRow
}
