package entity

type Movie struct {
	ID          int64  `db:"id"`
	Title       string `db:"title"`
	Description string `db:"description"`
	Duration    int    `db:"duration"` // minutes

	// Loaded from the link tables, not columns of movies.
	Genres []*Genre `db:"-"`
	Actors []*Actor `db:"-"`
}

func (m *Movie) GenreIDs() []int64 {
	ids := make([]int64, len(m.Genres))
	for i, g := range m.Genres {
		ids[i] = g.ID
	}
	return ids
}

func (m *Movie) ActorIDs() []int64 {
	ids := make([]int64, len(m.Actors))
	for i, a := range m.Actors {
		ids[i] = a.ID
	}
	return ids
}
