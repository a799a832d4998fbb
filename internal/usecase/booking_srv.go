package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"theatre-booking/internal/data/entity"
	"theatre-booking/internal/data/repository"
	"theatre-booking/internal/dto/request"
	"theatre-booking/internal/dto/response"
	"theatre-booking/pkg/utils"

	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"
	"go.uber.org/zap"
)

type BookingService interface {
	// Ticket purchase (requires auth; user identity passed explicitly)
	CreateTicket(ctx context.Context, userID string, req *request.CreateTicketRequest) (*response.TicketResponse, error)
	GetTicketQR(ctx context.Context, userID string, ticketID string) ([]byte, error)

	// Reservation ledger
	GetUserReservations(ctx context.Context, userID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReservationResponse], error)
	Checkout(ctx context.Context, userID string) (*response.ReservationResponse, error)

	// Admin
	GetReservationByID(ctx context.Context, reservationID string) (*response.ReservationResponse, error)
	DeleteReservation(ctx context.Context, reservationID string) error
}

type bookingService struct {
	repo *repository.Repository // groups ticket, reservation and catalog repos
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

// CreateTicket allocates one seat on a performance for the caller's active
// reservation. Validation failures leave no ticket behind; the double-booking
// race is settled by the storage-level unique constraint, never by in-process
// locking.
func (s *bookingService) CreateTicket(ctx context.Context, userID string, req *request.CreateTicketRequest) (*response.TicketResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create ticket validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// Parse IDs
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	performanceID, err := uuid.Parse(req.PerformanceID)
	if err != nil {
		return nil, fmt.Errorf("invalid performance ID format %s: %w", req.PerformanceID, err)
	}

	// Resolve the performance; a ticket with no performance is always invalid
	performance, err := s.repo.Performance.FindByID(ctx, performanceID)
	if err != nil {
		return nil, fmt.Errorf("resolve performance %s: %w", req.PerformanceID, err)
	}
	if performance == nil {
		return nil, ErrMissingPerformance
	}

	// Resolve the hall; without one the seat grid is undefined
	if performance.TheatreHallID == nil {
		s.log.Error("Performance has no hall reference",
			zap.String("performance_id", performanceID.String()))
		return nil, ErrMissingHall
	}

	hall, err := s.repo.TheatreHall.FindByID(ctx, *performance.TheatreHallID)
	if err != nil {
		return nil, fmt.Errorf("resolve hall for performance %s: %w", req.PerformanceID, err)
	}
	if hall == nil {
		s.log.Error("Performance hall reference does not resolve",
			zap.String("performance_id", performanceID.String()),
			zap.String("hall_id", performance.TheatreHallID.String()))
		return nil, ErrMissingHall
	}

	// Bounds check against the hall's physical grid
	if req.Row < 1 || req.Row > hall.Rows || req.Seat < 1 || req.Seat > hall.SeatsInRow {
		return nil, &SeatBoundsError{
			Row:      req.Row,
			Seat:     req.Seat,
			MaxRows:  hall.Rows,
			MaxSeats: hall.SeatsInRow,
		}
	}

	// Tickets from the same session accumulate under one active reservation
	reservation, err := s.getOrCreateActiveReservation(ctx, userUUID)
	if err != nil {
		return nil, err
	}

	// Persist; the unique constraint on (performance, row, seat) rejects
	// double booking even between concurrent requests
	now := time.Now()
	ticket := &entity.Ticket{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		Row:           req.Row,
		Seat:          req.Seat,
		PerformanceID: &performanceID,
		ReservationID: reservation.ID,
	}

	if err := s.repo.Ticket.Create(ctx, ticket); err != nil {
		if errors.Is(err, repository.ErrSeatTaken) {
			return nil, ErrSeatTaken
		}
		s.log.Error("Failed to create ticket",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.String("performance_id", req.PerformanceID),
		)
		return nil, fmt.Errorf("create ticket: %w", err)
	}

	s.log.Info("Ticket allocated",
		zap.String("ticket_id", ticket.ID.String()),
		zap.String("reservation_id", reservation.ID.String()),
		zap.String("performance_id", performanceID.String()),
		zap.Int("row", req.Row),
		zap.Int("seat", req.Seat),
	)

	// Resolve display references eagerly before building the response
	var play *entity.Play
	if performance.PlayID != nil {
		play, _ = s.repo.Play.FindByID(ctx, *performance.PlayID)
	}

	resp := response.TicketToResponse(ticket, performance, play)
	return &resp, nil
}

// getOrCreateActiveReservation returns the caller's open reservation, creating
// one if none exists. Two concurrent first purchases race on the partial
// unique index; the loser re-reads the winner's row.
func (s *bookingService) getOrCreateActiveReservation(ctx context.Context, userID uuid.UUID) (*entity.Reservation, error) {
	reservation, err := s.repo.Reservation.FindActiveByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find active reservation: %w", err)
	}
	if reservation != nil {
		return reservation, nil
	}

	reservation = &entity.Reservation{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID: &userID,
		Status: entity.ReservationStatusActive,
	}

	err = s.repo.Reservation.Create(ctx, reservation)
	if errors.Is(err, repository.ErrActiveReservationExists) {
		// Lost the race; the concurrent request created it
		existing, findErr := s.repo.Reservation.FindActiveByUserID(ctx, userID)
		if findErr != nil {
			return nil, fmt.Errorf("find active reservation after conflict: %w", findErr)
		}
		if existing == nil {
			return nil, fmt.Errorf("active reservation conflict but no row found for user %s", userID.String())
		}
		return existing, nil
	}
	if err != nil {
		return nil, fmt.Errorf("create reservation: %w", err)
	}

	s.log.Info("Reservation opened",
		zap.String("reservation_id", reservation.ID.String()),
		zap.String("user_id", userID.String()),
	)

	return reservation, nil
}

// GetTicketQR renders a PNG QR code of the ticket ID for gate scanning.
// Only the reservation owner may fetch it.
func (s *bookingService) GetTicketQR(ctx context.Context, userID string, ticketID string) ([]byte, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	id, err := uuid.Parse(ticketID)
	if err != nil {
		return nil, fmt.Errorf("invalid ticket ID format %s: %w", ticketID, err)
	}

	ticket, err := s.repo.Ticket.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find ticket %s: %w", ticketID, err)
	}
	if ticket == nil {
		return nil, fmt.Errorf("ticket %s not found", ticketID)
	}

	reservation, err := s.repo.Reservation.FindByID(ctx, ticket.ReservationID)
	if err != nil {
		return nil, fmt.Errorf("find reservation for ticket %s: %w", ticketID, err)
	}
	if reservation == nil || reservation.UserID == nil || *reservation.UserID != userUUID {
		return nil, fmt.Errorf("unauthorized to access this ticket")
	}

	png, err := qrcode.Encode(ticket.ID.String(), qrcode.Medium, 256)
	if err != nil {
		s.log.Error("Failed to encode ticket QR",
			zap.Error(err),
			zap.String("ticket_id", ticketID),
		)
		return nil, fmt.Errorf("encode ticket QR: %w", err)
	}

	return png, nil
}

func (s *bookingService) GetUserReservations(ctx context.Context, userID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReservationResponse], error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	limit := req.Limit()
	offset := req.Offset()

	reservations, err := s.repo.Reservation.FindByUserID(ctx, userUUID, limit, offset)
	if err != nil {
		s.log.Error("Failed to get user reservations",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.Int("page", req.Page),
			zap.Int("per_page", req.PerPage),
		)
		return nil, fmt.Errorf("get user reservations: %w", err)
	}

	total, err := s.repo.Reservation.CountByUserID(ctx, userUUID)
	if err != nil {
		s.log.Error("Failed to count user reservations", zap.Error(err))
		return nil, fmt.Errorf("count user reservations: %w", err)
	}

	reservationResponses := make([]response.ReservationResponse, len(reservations))
	for i, reservation := range reservations {
		resp, err := s.buildReservationResponse(ctx, reservation)
		if err != nil {
			return nil, err
		}
		reservationResponses[i] = *resp
	}

	s.log.Info("User reservations retrieved",
		zap.String("user_id", userID),
		zap.Int("count", len(reservations)),
		zap.Int64("total", total),
	)

	return response.NewPaginatedResponse(reservationResponses, req.Page, req.PerPage, total), nil
}

// Checkout closes the caller's active reservation so the next ticket purchase
// opens a fresh one.
func (s *bookingService) Checkout(ctx context.Context, userID string) (*response.ReservationResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	reservation, err := s.repo.Reservation.FindActiveByUserID(ctx, userUUID)
	if err != nil {
		return nil, fmt.Errorf("find active reservation: %w", err)
	}
	if reservation == nil {
		return nil, fmt.Errorf("no active reservation found")
	}

	if err := s.repo.Reservation.UpdateStatus(ctx, reservation.ID, entity.ReservationStatusCompleted); err != nil {
		s.log.Error("Failed to complete reservation",
			zap.Error(err),
			zap.String("reservation_id", reservation.ID.String()),
		)
		return nil, fmt.Errorf("complete reservation: %w", err)
	}

	reservation.Status = entity.ReservationStatusCompleted

	s.log.Info("Reservation completed",
		zap.String("reservation_id", reservation.ID.String()),
		zap.String("user_id", userID),
	)

	return s.buildReservationResponse(ctx, reservation)
}

// ==================== ADMIN METHODS ====================

func (s *bookingService) GetReservationByID(ctx context.Context, reservationID string) (*response.ReservationResponse, error) {
	id, err := uuid.Parse(reservationID)
	if err != nil {
		return nil, fmt.Errorf("invalid reservation ID format %s: %w", reservationID, err)
	}

	reservation, err := s.repo.Reservation.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find reservation %s: %w", reservationID, err)
	}
	if reservation == nil {
		return nil, fmt.Errorf("reservation %s not found", reservationID)
	}

	return s.buildReservationResponse(ctx, reservation)
}

// DeleteReservation removes the reservation and, through the cascade, every
// ticket grouped under it.
func (s *bookingService) DeleteReservation(ctx context.Context, reservationID string) error {
	id, err := uuid.Parse(reservationID)
	if err != nil {
		return fmt.Errorf("invalid reservation ID format %s: %w", reservationID, err)
	}

	reservation, err := s.repo.Reservation.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find reservation %s: %w", reservationID, err)
	}
	if reservation == nil {
		return fmt.Errorf("reservation %s not found", reservationID)
	}

	if err := s.repo.Reservation.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete reservation %s: %w", reservationID, err)
	}

	return nil
}

// ==================== HELPER METHODS ====================

// buildReservationResponse resolves the tickets and their performance/play
// references eagerly so serialization never traverses nulled relations.
func (s *bookingService) buildReservationResponse(ctx context.Context, reservation *entity.Reservation) (*response.ReservationResponse, error) {
	tickets, err := s.repo.Ticket.FindByReservationID(ctx, reservation.ID)
	if err != nil {
		return nil, fmt.Errorf("find tickets for reservation %s: %w", reservation.ID.String(), err)
	}

	ticketResponses := make([]response.TicketResponse, len(tickets))
	for i, ticket := range tickets {
		var performance *entity.Performance
		var play *entity.Play

		if ticket.PerformanceID != nil {
			performance, _ = s.repo.Performance.FindByID(ctx, *ticket.PerformanceID)
			if performance != nil && performance.PlayID != nil {
				play, _ = s.repo.Play.FindByID(ctx, *performance.PlayID)
			}
		}

		ticketResponses[i] = response.TicketToResponse(ticket, performance, play)
	}

	resp := response.ReservationToResponse(reservation, ticketResponses)
	return &resp, nil
}
