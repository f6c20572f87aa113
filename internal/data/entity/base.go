package entity

import (
	"time"

	"github.com/google/uuid"
)

// BaseSimple is used by auth records keyed by uuid.
type BaseSimple struct {
	ID        uuid.UUID `db:"id"`
	CreatedAt time.Time `db:"created_at"`
}

type BaseUUID struct {
	ID        uuid.UUID `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
