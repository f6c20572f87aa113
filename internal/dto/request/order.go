package request

// OrderRequest carries no owner field; orders always belong to the caller.
type OrderRequest struct {
	Tickets []TicketRequest `json:"tickets" validate:"required,min=1,dive"`
}

type TicketRequest struct {
	MovieSession int64 `json:"movie_session" validate:"required,gte=1"`
	Row          int   `json:"row" validate:"required,gte=1"`
	Seat         int   `json:"seat" validate:"required,gte=1"`
}
