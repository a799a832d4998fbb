package wire

import (
	"theatre-booking/internal/adaptor"
	"theatre-booking/internal/data/repository"
	"theatre-booking/pkg/middleware"
	"theatre-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// POST /api/tickets - Book a seat on a performance
		r.Post("/api/tickets", bookingHandler.CreateTicket)

		// GET /api/tickets/{id}/qr - PNG QR code for gate scanning
		r.Get("/api/tickets/{id}/qr", bookingHandler.GetTicketQR)

		// GET /api/reservations - View own reservation history
		r.Get("/api/reservations", bookingHandler.GetUserReservations)

		// POST /api/checkout - Complete the active reservation
		r.Post("/api/checkout", bookingHandler.Checkout)
	})

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/reservations", func(r chi.Router) {
		// Require both authentication AND admin role
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(repo.User, log))

		// GET /api/admin/reservations/{id} - View any reservation
		r.Get("/{id}", bookingHandler.GetReservationByID)

		// DELETE /api/admin/reservations/{id} - Remove a reservation and its tickets
		r.Delete("/{id}", bookingHandler.DeleteReservation)
	})
}
