package repository

import (
	"context"
	"fmt"

	"theatre-booking/internal/data/entity"
	"theatre-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type TicketRepository interface {
	Create(ctx context.Context, ticket *entity.Ticket) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Ticket, error)
	FindByReservationID(ctx context.Context, reservationID uuid.UUID) ([]*entity.Ticket, error)
	CountByPerformanceID(ctx context.Context, performanceID uuid.UUID) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ticketRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTicketRepository(db database.PgxIface, log *zap.Logger) TicketRepository {
	return &ticketRepository{
		db:  db,
		log: log.With(zap.String("repository", "ticket")),
	}
}

// Create inserts the ticket. Double-booking is rejected by the storage-level
// unique constraint so concurrent writers for the same seat cannot both win;
// the loser gets ErrSeatTaken.
func (r *ticketRepository) Create(ctx context.Context, ticket *entity.Ticket) error {
	query := `
		INSERT INTO tickets (id, "row", seat, performance_id, reservation_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		ticket.ID,
		ticket.Row,
		ticket.Seat,
		ticket.PerformanceID,
		ticket.ReservationID,
		ticket.CreatedAt,
	)

	if err != nil {
		if database.IsUniqueViolation(err, "uq_ticket_seat_per_performance") {
			r.log.Warn("Seat already taken",
				zap.Int("row", ticket.Row),
				zap.Int("seat", ticket.Seat),
			)
			return ErrSeatTaken
		}

		r.log.Error("Failed to create ticket",
			zap.Error(err),
			zap.String("reservation_id", ticket.ReservationID.String()),
			zap.Int("row", ticket.Row),
			zap.Int("seat", ticket.Seat),
		)
		return fmt.Errorf("create ticket row %d seat %d: %w", ticket.Row, ticket.Seat, err)
	}

	return nil
}

func (r *ticketRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Ticket, error) {
	query := `
		SELECT id, "row", seat, performance_id, reservation_id, created_at
		FROM tickets
		WHERE id = $1
	`

	var ticket entity.Ticket
	err := r.db.QueryRow(ctx, query, id).Scan(
		&ticket.ID,
		&ticket.Row,
		&ticket.Seat,
		&ticket.PerformanceID,
		&ticket.ReservationID,
		&ticket.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find ticket by ID",
			zap.Error(err),
			zap.String("ticket_id", id.String()),
		)
		return nil, fmt.Errorf("find ticket by ID %s: %w", id.String(), err)
	}

	return &ticket, nil
}

func (r *ticketRepository) FindByReservationID(ctx context.Context, reservationID uuid.UUID) ([]*entity.Ticket, error) {
	query := `
		SELECT id, "row", seat, performance_id, reservation_id, created_at
		FROM tickets
		WHERE reservation_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, reservationID)
	if err != nil {
		r.log.Error("Failed to find tickets by reservation ID",
			zap.Error(err),
			zap.String("reservation_id", reservationID.String()),
		)
		return nil, fmt.Errorf("find tickets by reservation ID %s: %w", reservationID.String(), err)
	}
	defer rows.Close()

	var tickets []*entity.Ticket
	for rows.Next() {
		var ticket entity.Ticket
		err := rows.Scan(
			&ticket.ID,
			&ticket.Row,
			&ticket.Seat,
			&ticket.PerformanceID,
			&ticket.ReservationID,
			&ticket.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan ticket row", zap.Error(err))
			return nil, fmt.Errorf("scan ticket row: %w", err)
		}
		tickets = append(tickets, &ticket)
	}

	return tickets, nil
}

func (r *ticketRepository) CountByPerformanceID(ctx context.Context, performanceID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM tickets WHERE performance_id = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, performanceID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count tickets by performance ID",
			zap.Error(err),
			zap.String("performance_id", performanceID.String()),
		)
		return 0, fmt.Errorf("count tickets by performance ID %s: %w", performanceID.String(), err)
	}

	return count, nil
}

func (r *ticketRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM tickets WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete ticket",
			zap.Error(err),
			zap.String("ticket_id", id.String()),
		)
		return fmt.Errorf("delete ticket %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("ticket %s not found", id.String())
	}

	return nil
}
