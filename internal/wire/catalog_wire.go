package wire

import (
	"theatre-booking/internal/adaptor"
	"theatre-booking/internal/data/repository"
	"theatre-booking/pkg/middleware"
	"theatre-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCatalog(
	r chi.Router,
	catalogHandler *adaptor.CatalogHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/actors - List actors (paginated)
	r.Get("/api/actors", catalogHandler.GetAllActors)

	// GET /api/actors/{id} - Actor details
	r.Get("/api/actors/{id}", catalogHandler.GetActorByID)

	// GET /api/genres - List genres (paginated)
	r.Get("/api/genres", catalogHandler.GetAllGenres)

	// GET /api/genres/{id} - Genre details
	r.Get("/api/genres/{id}", catalogHandler.GetGenreByID)

	// GET /api/theatre-halls - List theatre halls (paginated)
	r.Get("/api/theatre-halls", catalogHandler.GetAllTheatreHalls)

	// GET /api/theatre-halls/{id} - Theatre hall details with capacity
	r.Get("/api/theatre-halls/{id}", catalogHandler.GetTheatreHallByID)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/actors", func(r chi.Router) {
		// Require both authentication AND admin role
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(repo.User, log))

		r.Post("/", catalogHandler.CreateActor)
		r.Put("/{id}", catalogHandler.UpdateActor)
		r.Delete("/{id}", catalogHandler.DeleteActor)
	})

	r.Route("/api/admin/genres", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(repo.User, log))

		r.Post("/", catalogHandler.CreateGenre)
		r.Put("/{id}", catalogHandler.UpdateGenre)
		r.Delete("/{id}", catalogHandler.DeleteGenre)
	})

	r.Route("/api/admin/theatre-halls", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(repo.User, log))

		r.Post("/", catalogHandler.CreateTheatreHall)
		r.Put("/{id}", catalogHandler.UpdateTheatreHall)
		r.Delete("/{id}", catalogHandler.DeleteTheatreHall)
	})
}
