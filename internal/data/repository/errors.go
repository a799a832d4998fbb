package repository

import "errors"

var (
	// ErrSeatTaken is returned when a ticket insert hits the
	// (performance_id, row, seat) unique constraint.
	ErrSeatTaken = errors.New("seat already taken for this performance")

	// ErrActiveReservationExists is returned when a reservation insert
	// loses the race on the one-active-per-user unique index.
	ErrActiveReservationExists = errors.New("user already has an active reservation")
)
