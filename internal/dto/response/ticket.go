package response

import (
	"time"

	"theatre-booking/internal/data/entity"
)

// TicketResponse carries the seat assignment plus eagerly resolved display
// fields. PlayTitle falls back to "Unknown" when the performance reference
// was nulled by a cascading delete.
type TicketResponse struct {
	ID            string    `json:"id"`
	Row           int       `json:"row"`
	Seat          int       `json:"seat"`
	PerformanceID *string   `json:"performance_id"`
	PlayTitle     string    `json:"play_title"`
	Showtime      *string   `json:"showtime,omitempty"`
	ReservationID string    `json:"reservation_id"`
	CreatedAt     time.Time `json:"created_at"`
}

type ReservationResponse struct {
	ID        string                   `json:"id"`
	Status    entity.ReservationStatus `json:"status"`
	Tickets   []TicketResponse         `json:"tickets"`
	CreatedAt time.Time                `json:"created_at"`
}

func TicketToResponse(ticket *entity.Ticket, performance *entity.Performance, play *entity.Play) TicketResponse {
	resp := TicketResponse{
		ID:            ticket.ID.String(),
		Row:           ticket.Row,
		Seat:          ticket.Seat,
		PlayTitle:     "Unknown",
		ReservationID: ticket.ReservationID.String(),
		CreatedAt:     ticket.CreatedAt,
	}

	if ticket.PerformanceID != nil {
		idStr := ticket.PerformanceID.String()
		resp.PerformanceID = &idStr
	}

	if performance != nil {
		showtime := performance.Showtime.Format(time.RFC3339)
		resp.Showtime = &showtime
	}

	if play != nil {
		resp.PlayTitle = play.Title
	}

	return resp
}

func ReservationToResponse(reservation *entity.Reservation, tickets []TicketResponse) ReservationResponse {
	if tickets == nil {
		tickets = []TicketResponse{}
	}

	return ReservationResponse{
		ID:        reservation.ID.String(),
		Status:    reservation.Status,
		Tickets:   tickets,
		CreatedAt: reservation.CreatedAt,
	}
}
