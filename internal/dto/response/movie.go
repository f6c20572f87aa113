package response

import "cinema-api/internal/data/entity"

// MovieListResponse names genres and actors instead of nesting them.
type MovieListResponse struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Duration    int      `json:"duration"`
	Genres      []string `json:"genres"`
	Actors      []string `json:"actors"`
}

type MovieDetailResponse struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Duration    int             `json:"duration"`
	Genres      []GenreResponse `json:"genres"`
	Actors      []ActorResponse `json:"actors"`
}

// MovieWriteResponse mirrors the create/update payload: relations by id.
type MovieWriteResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Duration    int     `json:"duration"`
	Genres      []int64 `json:"genres"`
	Actors      []int64 `json:"actors"`
}

func MovieToListResponse(movie *entity.Movie) MovieListResponse {
	genres := make([]string, len(movie.Genres))
	for i, g := range movie.Genres {
		genres[i] = g.Name
	}
	actors := make([]string, len(movie.Actors))
	for i, a := range movie.Actors {
		actors[i] = a.FullName()
	}

	return MovieListResponse{
		ID:          movie.ID,
		Title:       movie.Title,
		Description: movie.Description,
		Duration:    movie.Duration,
		Genres:      genres,
		Actors:      actors,
	}
}

func MovieToDetailResponse(movie *entity.Movie) MovieDetailResponse {
	return MovieDetailResponse{
		ID:          movie.ID,
		Title:       movie.Title,
		Description: movie.Description,
		Duration:    movie.Duration,
		Genres:      GenresToResponse(movie.Genres),
		Actors:      ActorsToResponse(movie.Actors),
	}
}

func MovieToWriteResponse(movie *entity.Movie) MovieWriteResponse {
	return MovieWriteResponse{
		ID:          movie.ID,
		Title:       movie.Title,
		Description: movie.Description,
		Duration:    movie.Duration,
		Genres:      movie.GenreIDs(),
		Actors:      movie.ActorIDs(),
	}
}
