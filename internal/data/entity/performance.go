package entity

import (
	"time"

	"github.com/google/uuid"
)

// Performance is a single scheduled showing of a play in a hall.
// Play and hall references are nulled when the referenced row is deleted.
type Performance struct {
	Base
	PlayID        *uuid.UUID `db:"play_id"`
	TheatreHallID *uuid.UUID `db:"theatre_hall_id"`
	Showtime      time.Time  `db:"showtime"`
}
