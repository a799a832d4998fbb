package wire

import (
	"theatre-booking/internal/adaptor"
	"theatre-booking/internal/data/repository"
	"theatre-booking/pkg/middleware"
	"theatre-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wirePlay(
	r chi.Router,
	playHandler *adaptor.PlayHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/plays - List plays with actors and genres (paginated)
	r.Get("/api/plays", playHandler.GetAllPlays)

	// GET /api/plays/{id} - Play details
	r.Get("/api/plays/{id}", playHandler.GetPlayByID)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/plays", func(r chi.Router) {
		// Require both authentication AND admin role
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(repo.User, log))

		r.Post("/", playHandler.CreatePlay)
		r.Put("/{id}", playHandler.UpdatePlay)
		r.Delete("/{id}", playHandler.DeletePlay)
	})
}
