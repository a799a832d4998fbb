package usecase_test

import (
	"context"
	"sort"
	"time"

	"theatre-booking/internal/data/entity"
	"theatre-booking/internal/data/repository"

	"github.com/google/uuid"
)

// In-memory fakes mirroring the storage constraints the repositories rely
// on: the seat uniqueness constraint and the one-active-reservation index.

func paginate[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

type fakeHallRepo struct {
	halls map[uuid.UUID]*entity.TheatreHall
}

func newFakeHallRepo() *fakeHallRepo {
	return &fakeHallRepo{halls: make(map[uuid.UUID]*entity.TheatreHall)}
}

func (f *fakeHallRepo) Create(_ context.Context, hall *entity.TheatreHall) error {
	f.halls[hall.ID] = hall
	return nil
}

func (f *fakeHallRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.TheatreHall, error) {
	return f.halls[id], nil
}

func (f *fakeHallRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.TheatreHall, error) {
	var out []*entity.TheatreHall
	for _, h := range f.halls {
		out = append(out, h)
	}
	return out, nil
}

func (f *fakeHallRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(f.halls)), nil
}

func (f *fakeHallRepo) Update(_ context.Context, hall *entity.TheatreHall) error {
	f.halls[hall.ID] = hall
	return nil
}

func (f *fakeHallRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.halls, id)
	return nil
}

type fakePerformanceRepo struct {
	performances map[uuid.UUID]*entity.Performance
}

func newFakePerformanceRepo() *fakePerformanceRepo {
	return &fakePerformanceRepo{performances: make(map[uuid.UUID]*entity.Performance)}
}

func (f *fakePerformanceRepo) Create(_ context.Context, p *entity.Performance) error {
	f.performances[p.ID] = p
	return nil
}

func (f *fakePerformanceRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Performance, error) {
	return f.performances[id], nil
}

func (f *fakePerformanceRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.Performance, error) {
	var out []*entity.Performance
	for _, p := range f.performances {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Showtime.Before(out[j].Showtime) })
	return out, nil
}

func (f *fakePerformanceRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(f.performances)), nil
}

func (f *fakePerformanceRepo) Update(_ context.Context, p *entity.Performance) error {
	f.performances[p.ID] = p
	return nil
}

func (f *fakePerformanceRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.performances, id)
	return nil
}

type fakeTicketRepo struct {
	tickets map[uuid.UUID]*entity.Ticket
}

func newFakeTicketRepo() *fakeTicketRepo {
	return &fakeTicketRepo{tickets: make(map[uuid.UUID]*entity.Ticket)}
}

func (f *fakeTicketRepo) Create(_ context.Context, ticket *entity.Ticket) error {
	for _, existing := range f.tickets {
		if existing.PerformanceID != nil && ticket.PerformanceID != nil &&
			*existing.PerformanceID == *ticket.PerformanceID &&
			existing.Row == ticket.Row && existing.Seat == ticket.Seat {
			return repository.ErrSeatTaken
		}
	}
	f.tickets[ticket.ID] = ticket
	return nil
}

func (f *fakeTicketRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Ticket, error) {
	return f.tickets[id], nil
}

func (f *fakeTicketRepo) FindByReservationID(_ context.Context, reservationID uuid.UUID) ([]*entity.Ticket, error) {
	var out []*entity.Ticket
	for _, t := range f.tickets {
		if t.ReservationID == reservationID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeTicketRepo) CountByPerformanceID(_ context.Context, performanceID uuid.UUID) (int64, error) {
	var n int64
	for _, t := range f.tickets {
		if t.PerformanceID != nil && *t.PerformanceID == performanceID {
			n++
		}
	}
	return n, nil
}

func (f *fakeTicketRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.tickets, id)
	return nil
}

type fakeReservationRepo struct {
	reservations map[uuid.UUID]*entity.Reservation
}

func newFakeReservationRepo() *fakeReservationRepo {
	return &fakeReservationRepo{reservations: make(map[uuid.UUID]*entity.Reservation)}
}

func (f *fakeReservationRepo) Create(_ context.Context, r *entity.Reservation) error {
	if r.Status == entity.ReservationStatusActive && r.UserID != nil {
		for _, existing := range f.reservations {
			if existing.Status == entity.ReservationStatusActive &&
				existing.UserID != nil && *existing.UserID == *r.UserID {
				return repository.ErrActiveReservationExists
			}
		}
	}
	f.reservations[r.ID] = r
	return nil
}

func (f *fakeReservationRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Reservation, error) {
	return f.reservations[id], nil
}

func (f *fakeReservationRepo) FindActiveByUserID(_ context.Context, userID uuid.UUID) (*entity.Reservation, error) {
	for _, r := range f.reservations {
		if r.Status == entity.ReservationStatusActive && r.UserID != nil && *r.UserID == userID {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeReservationRepo) FindByUserID(_ context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Reservation, error) {
	var out []*entity.Reservation
	for _, r := range f.reservations {
		if r.UserID != nil && *r.UserID == userID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return paginate(out, limit, offset), nil
}

func (f *fakeReservationRepo) CountByUserID(_ context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	for _, r := range f.reservations {
		if r.UserID != nil && *r.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (f *fakeReservationRepo) UpdateStatus(_ context.Context, id uuid.UUID, status entity.ReservationStatus) error {
	if r, ok := f.reservations[id]; ok {
		r.Status = status
	}
	return nil
}

func (f *fakeReservationRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.reservations, id)
	return nil
}

type fakePlayRepo struct {
	plays map[uuid.UUID]*entity.Play
}

func newFakePlayRepo() *fakePlayRepo {
	return &fakePlayRepo{plays: make(map[uuid.UUID]*entity.Play)}
}

func (f *fakePlayRepo) Create(_ context.Context, p *entity.Play) error {
	f.plays[p.ID] = p
	return nil
}

func (f *fakePlayRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Play, error) {
	return f.plays[id], nil
}

func (f *fakePlayRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.Play, error) {
	var out []*entity.Play
	for _, p := range f.plays {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return paginate(out, limit, offset), nil
}

func (f *fakePlayRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(f.plays)), nil
}

func (f *fakePlayRepo) Update(_ context.Context, p *entity.Play) error {
	f.plays[p.ID] = p
	return nil
}

func (f *fakePlayRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.plays, id)
	return nil
}

type fakeActorRepo struct {
	actors  map[uuid.UUID]*entity.Actor
	byPlay  map[uuid.UUID][]uuid.UUID
}

func newFakeActorRepo() *fakeActorRepo {
	return &fakeActorRepo{
		actors: make(map[uuid.UUID]*entity.Actor),
		byPlay: make(map[uuid.UUID][]uuid.UUID),
	}
}

func (f *fakeActorRepo) Create(_ context.Context, a *entity.Actor) error {
	f.actors[a.ID] = a
	return nil
}

func (f *fakeActorRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Actor, error) {
	return f.actors[id], nil
}

func (f *fakeActorRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.Actor, error) {
	var out []*entity.Actor
	for _, a := range f.actors {
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeActorRepo) FindByPlayID(_ context.Context, playID uuid.UUID) ([]*entity.Actor, error) {
	var out []*entity.Actor
	for _, id := range f.byPlay[playID] {
		if a, ok := f.actors[id]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeActorRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(f.actors)), nil
}

func (f *fakeActorRepo) Update(_ context.Context, a *entity.Actor) error {
	f.actors[a.ID] = a
	return nil
}

func (f *fakeActorRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.actors, id)
	return nil
}

type fakeGenreRepo struct {
	genres map[uuid.UUID]*entity.Genre
	byPlay map[uuid.UUID][]uuid.UUID
}

func newFakeGenreRepo() *fakeGenreRepo {
	return &fakeGenreRepo{
		genres: make(map[uuid.UUID]*entity.Genre),
		byPlay: make(map[uuid.UUID][]uuid.UUID),
	}
}

func (f *fakeGenreRepo) Create(_ context.Context, g *entity.Genre) error {
	f.genres[g.ID] = g
	return nil
}

func (f *fakeGenreRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Genre, error) {
	return f.genres[id], nil
}

func (f *fakeGenreRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.Genre, error) {
	var out []*entity.Genre
	for _, g := range f.genres {
		out = append(out, g)
	}
	return out, nil
}

func (f *fakeGenreRepo) FindByPlayID(_ context.Context, playID uuid.UUID) ([]*entity.Genre, error) {
	var out []*entity.Genre
	for _, id := range f.byPlay[playID] {
		if g, ok := f.genres[id]; ok {
			out = append(out, g)
		}
	}
	return out, nil
}

func (f *fakeGenreRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(f.genres)), nil
}

func (f *fakeGenreRepo) Update(_ context.Context, g *entity.Genre) error {
	f.genres[g.ID] = g
	return nil
}

func (f *fakeGenreRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.genres, id)
	return nil
}

type fakePlayActorRepo struct {
	actorRepo *fakeActorRepo
}

func (f *fakePlayActorRepo) CreateBatch(_ context.Context, links []*entity.PlayActor) error {
	for _, link := range links {
		f.actorRepo.byPlay[link.PlayID] = append(f.actorRepo.byPlay[link.PlayID], link.ActorID)
	}
	return nil
}

func (f *fakePlayActorRepo) DeleteByPlayID(_ context.Context, playID uuid.UUID) error {
	delete(f.actorRepo.byPlay, playID)
	return nil
}

type fakePlayGenreRepo struct {
	genreRepo *fakeGenreRepo
}

func (f *fakePlayGenreRepo) CreateBatch(_ context.Context, links []*entity.PlayGenre) error {
	for _, link := range links {
		f.genreRepo.byPlay[link.PlayID] = append(f.genreRepo.byPlay[link.PlayID], link.GenreID)
	}
	return nil
}

func (f *fakePlayGenreRepo) DeleteByPlayID(_ context.Context, playID uuid.UUID) error {
	delete(f.genreRepo.byPlay, playID)
	return nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	f.users[user.ID] = user
	return nil
}

type fakeSessionRepo struct {
	sessions map[uuid.UUID]*entity.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[uuid.UUID]*entity.Session)}
}

func (f *fakeSessionRepo) Create(_ context.Context, session *entity.Session) error {
	f.sessions[session.ID] = session
	return nil
}

func (f *fakeSessionRepo) FindValidSession(_ context.Context, token string) (*entity.Session, error) {
	parsed, err := uuid.Parse(token)
	if err != nil {
		return nil, nil
	}
	for _, s := range f.sessions {
		if s.Token == parsed && s.RevokedAt == nil && s.ExpiresAt.After(time.Now()) {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeSessionRepo) Revoke(_ context.Context, token string) error {
	parsed, err := uuid.Parse(token)
	if err != nil {
		return nil
	}
	now := time.Now()
	for _, s := range f.sessions {
		if s.Token == parsed {
			s.RevokedAt = &now
		}
	}
	return nil
}

func (f *fakeSessionRepo) RevokeAllUserSessions(_ context.Context, userID uuid.UUID) error {
	now := time.Now()
	for _, s := range f.sessions {
		if s.UserID == userID {
			s.RevokedAt = &now
		}
	}
	return nil
}

// newFakeRepository builds a Repository backed entirely by in-memory fakes.
func newFakeRepository() *repository.Repository {
	actorRepo := newFakeActorRepo()
	genreRepo := newFakeGenreRepo()

	return &repository.Repository{
		User:        newFakeUserRepo(),
		Session:     newFakeSessionRepo(),
		Actor:       actorRepo,
		Genre:       genreRepo,
		Play:        newFakePlayRepo(),
		PlayActor:   &fakePlayActorRepo{actorRepo: actorRepo},
		PlayGenre:   &fakePlayGenreRepo{genreRepo: genreRepo},
		TheatreHall: newFakeHallRepo(),
		Performance: newFakePerformanceRepo(),
		Reservation: newFakeReservationRepo(),
		Ticket:      newFakeTicketRepo(),
	}
}
