package usecase

import (
	"theatre-booking/internal/data/repository"
	"theatre-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth        AuthService
	User        UserService
	Catalog     CatalogService
	Play        PlayService
	Performance PerformanceService
	Booking     BookingService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:        NewAuthService(repo, config, log),
		User:        NewUserService(repo.User, log),
		Catalog:     NewCatalogService(repo, log),
		Play:        NewPlayService(repo, log),
		Performance: NewPerformanceService(repo, log),
		Booking:     NewBookingService(repo, log),
	}
}
