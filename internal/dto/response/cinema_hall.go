package response

import "cinema-api/internal/data/entity"

type CinemaHallResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Rows       int    `json:"rows"`
	SeatsInRow int    `json:"seats_in_row"`
	Capacity   int    `json:"capacity"`
}

func CinemaHallToResponse(hall *entity.CinemaHall) CinemaHallResponse {
	return CinemaHallResponse{
		ID:         hall.ID,
		Name:       hall.Name,
		Rows:       hall.Rows,
		SeatsInRow: hall.SeatsInRow,
		Capacity:   hall.Capacity(),
	}
}

func CinemaHallsToResponse(halls []*entity.CinemaHall) []CinemaHallResponse {
	out := make([]CinemaHallResponse, len(halls))
	for i, h := range halls {
		out[i] = CinemaHallToResponse(h)
	}
	return out
}
