package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCinemaHallCapacity(t *testing.T) {
	hall := CinemaHall{Rows: 10, SeatsInRow: 12}
	assert.Equal(t, 120, hall.Capacity())
}

func TestTicketsAvailable(t *testing.T) {
	hall := CinemaHall{Rows: 10, SeatsInRow: 12}
	listing := MovieSessionListing{Capacity: hall.Capacity(), TicketsSold: 5}

	assert.Equal(t, 115, listing.TicketsAvailable())
}

func TestActorFullName(t *testing.T) {
	actor := Actor{FirstName: "Keanu", LastName: "Reeves"}
	assert.Equal(t, "Keanu Reeves", actor.FullName())
}

func TestMovieRelationIDs(t *testing.T) {
	movie := Movie{
		Genres: []*Genre{{ID: 3}, {ID: 1}},
		Actors: []*Actor{{ID: 9}},
	}

	assert.Equal(t, []int64{3, 1}, movie.GenreIDs())
	assert.Equal(t, []int64{9}, movie.ActorIDs())
	assert.Empty(t, (&Movie{}).GenreIDs())
}
