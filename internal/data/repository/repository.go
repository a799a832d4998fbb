package repository

import (
	"theatre-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User        UserRepository
	Session     SessionRepository
	Actor       ActorRepository
	Genre       GenreRepository
	Play        PlayRepository
	PlayActor   PlayActorRepository
	PlayGenre   PlayGenreRepository
	TheatreHall TheatreHallRepository
	Performance PerformanceRepository
	Reservation ReservationRepository
	Ticket      TicketRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:        NewUserRepository(db, log),
		Session:     NewSessionRepository(db, log),
		Actor:       NewActorRepository(db, log),
		Genre:       NewGenreRepository(db, log),
		Play:        NewPlayRepository(db, log),
		PlayActor:   NewPlayActorRepository(db, log),
		PlayGenre:   NewPlayGenreRepository(db, log),
		TheatreHall: NewTheatreHallRepository(db, log),
		Performance: NewPerformanceRepository(db, log),
		Reservation: NewReservationRepository(db, log),
		Ticket:      NewTicketRepository(db, log),
	}
}
