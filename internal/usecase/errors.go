package usecase

import (
	"errors"
	"fmt"

	"theatre-booking/internal/data/repository"
)

var (
	// ErrMissingPerformance means the ticket's performance reference does
	// not resolve; a ticket with no performance is always invalid.
	ErrMissingPerformance = errors.New("ticket must be associated with a performance")

	// ErrMissingHall means the performance's hall reference was nulled;
	// an invalid state rather than a user error.
	ErrMissingHall = errors.New("performance has no associated theatre hall")

	// ErrSeatTaken surfaces the storage-level (performance, row, seat)
	// conflict, including the one lost to a concurrent writer.
	ErrSeatTaken = repository.ErrSeatTaken
)

// SeatBoundsError reports a row/seat outside the hall's physical grid,
// carrying the offending values and the valid ranges for display.
type SeatBoundsError struct {
	Row      int
	Seat     int
	MaxRows  int
	MaxSeats int
}

func (e *SeatBoundsError) Error() string {
	return fmt.Sprintf("row must be between 1 and %d and seat must be between 1 and %d (got row %d, seat %d)",
		e.MaxRows, e.MaxSeats, e.Row, e.Seat)
}
