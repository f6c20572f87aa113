package response

import (
	"time"

	"cinema-api/internal/data/entity"
)

type TicketResponse struct {
	ID           int64 `json:"id"`
	MovieSession int64 `json:"movie_session"`
	Row          int   `json:"row"`
	Seat         int   `json:"seat"`
}

type OrderResponse struct {
	ID        int64            `json:"id"`
	CreatedAt time.Time        `json:"created_at"`
	Tickets   []TicketResponse `json:"tickets"`
}

func OrderToResponse(order *entity.Order) OrderResponse {
	tickets := make([]TicketResponse, len(order.Tickets))
	for i, t := range order.Tickets {
		tickets[i] = TicketResponse{
			ID:           t.ID,
			MovieSession: t.MovieSessionID,
			Row:          t.Row,
			Seat:         t.Seat,
		}
	}

	return OrderResponse{
		ID:        order.ID,
		CreatedAt: order.CreatedAt,
		Tickets:   tickets,
	}
}
