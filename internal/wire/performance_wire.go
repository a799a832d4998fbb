package wire

import (
	"theatre-booking/internal/adaptor"
	"theatre-booking/internal/data/repository"
	"theatre-booking/pkg/middleware"
	"theatre-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wirePerformance(
	r chi.Router,
	performanceHandler *adaptor.PerformanceHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/performances - List scheduled performances (paginated)
	r.Get("/api/performances", performanceHandler.GetAllPerformances)

	// GET /api/performances/{id} - Performance details with seat availability
	r.Get("/api/performances/{id}", performanceHandler.GetPerformanceByID)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/performances", func(r chi.Router) {
		// Require both authentication AND admin role
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(repo.User, log))

		r.Post("/", performanceHandler.CreatePerformance)
		r.Put("/{id}", performanceHandler.UpdatePerformance)
		r.Delete("/{id}", performanceHandler.DeletePerformance)
	})
}
