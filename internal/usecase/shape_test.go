package usecase

import (
	"errors"
	"testing"

	"cinema-api/internal/data/repository"

	"github.com/stretchr/testify/assert"
)

func TestShapeFor(t *testing.T) {
	tests := []struct {
		action Action
		want   Shape
	}{
		{ActionList, ShapeList},
		{ActionRetrieve, ShapeDetail},
		{ActionCreate, ShapeWrite},
		{ActionUpdate, ShapeWrite},
		{Action("partial_update"), ShapeWrite},
		{Action("destroy"), ShapeWrite},
	}

	for _, tt := range tests {
		t.Run(string(tt.action), func(t *testing.T) {
			assert.Equal(t, tt.want, ShapeFor(tt.action))
		})
	}
}

func TestFromRepository(t *testing.T) {
	assert.NoError(t, fromRepository(nil, "genre"))
	assert.ErrorIs(t, fromRepository(repository.ErrNotFound, "genre"), ErrNotFound)
	assert.ErrorIs(t, fromRepository(repository.ErrDuplicate, "genre"), ErrConflict)
	assert.ErrorIs(t, fromRepository(repository.ErrInvalidReference, "movie"), ErrValidation)

	other := errors.New("timeout")
	assert.Same(t, other, fromRepository(other, "genre"))
}

func TestDedupeIDs(t *testing.T) {
	assert.Equal(t, []int64{3, 1, 2}, dedupeIDs([]int64{3, 1, 3, 2, 1}))
	assert.Empty(t, dedupeIDs(nil))
}
