package request

type MovieRequest struct {
	Title       string  `json:"title" validate:"required,min=1,max=255"`
	Description string  `json:"description"`
	Duration    int     `json:"duration" validate:"required,gte=1"`
	Genres      []int64 `json:"genres" validate:"dive,gte=1"`
	Actors      []int64 `json:"actors" validate:"dive,gte=1"`
}

// MovieFilter is parsed from the query string of GET /api/movies.
type MovieFilter struct {
	Actors   []string
	GenreIDs []int64
	Title    string
}
