package adaptor

import (
	"theatre-booking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth        *AuthHandler
	User        *UserHandler
	Catalog     *CatalogHandler
	Play        *PlayHandler
	Performance *PerformanceHandler
	Booking     *BookingHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:        NewAuthHandler(service.Auth, log),
		User:        NewUserHandler(service.User, log),
		Catalog:     NewCatalogHandler(service.Catalog, log),
		Play:        NewPlayHandler(service.Play, log),
		Performance: NewPerformanceHandler(service.Performance, log),
		Booking:     NewBookingHandler(service.Booking, log),
	}
}
