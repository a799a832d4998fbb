package entity

import (
	"github.com/google/uuid"
)

type ReservationStatus string

const (
	ReservationStatusActive    ReservationStatus = "active"
	ReservationStatusCompleted ReservationStatus = "completed"
)

// Reservation groups tickets purchased in one flow. The creation timestamp
// is set once and never updated. The user reference is nulled if the user
// is deleted; tickets cascade with the reservation.
type Reservation struct {
	BaseSimple
	UserID *uuid.UUID        `db:"user_id"`
	Status ReservationStatus `db:"status"`
}
