package entity

import (
	"github.com/google/uuid"
)

// Ticket binds one physical seat to a performance and a reservation.
// (performance_id, row, seat) is unique at the storage layer. The performance
// reference is nulled if the performance is deleted; deleting the reservation
// deletes the ticket.
type Ticket struct {
	BaseSimple
	Row           int        `db:"row"`
	Seat          int        `db:"seat"`
	PerformanceID *uuid.UUID `db:"performance_id"`
	ReservationID uuid.UUID  `db:"reservation_id"`
}
