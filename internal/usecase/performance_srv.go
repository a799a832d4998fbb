package usecase

import (
	"context"
	"fmt"
	"time"

	"theatre-booking/internal/data/entity"
	"theatre-booking/internal/data/repository"
	"theatre-booking/internal/dto/request"
	"theatre-booking/internal/dto/response"
	"theatre-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PerformanceService interface {
	GetAllPerformances(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.PerformanceResponse], error)
	GetPerformanceByID(ctx context.Context, performanceID string) (*response.PerformanceDetailResponse, error)

	// Admin
	CreatePerformance(ctx context.Context, req *request.PerformanceRequest) (*response.PerformanceDetailResponse, error)
	UpdatePerformance(ctx context.Context, performanceID string, req *request.PerformanceUpdateRequest) (*response.PerformanceDetailResponse, error)
	DeletePerformance(ctx context.Context, performanceID string) error
}

type performanceService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewPerformanceService(repo *repository.Repository, log *zap.Logger) PerformanceService {
	return &performanceService{
		repo: repo,
		log:  log.With(zap.String("service", "performance")),
	}
}

func (s *performanceService) GetAllPerformances(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.PerformanceResponse], error) {
	performances, err := s.repo.Performance.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get performances", zap.Error(err))
		return nil, fmt.Errorf("get performances: %w", err)
	}

	total, err := s.repo.Performance.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count performances", zap.Error(err))
		return nil, fmt.Errorf("count performances: %w", err)
	}

	performanceResponses := make([]response.PerformanceResponse, len(performances))
	for i, performance := range performances {
		play, err := s.resolvePlayResponse(ctx, performance)
		if err != nil {
			return nil, err
		}
		performanceResponses[i] = response.PerformanceToResponse(performance, play)
	}

	return response.NewPaginatedResponse(performanceResponses, req.Page, req.PerPage, total), nil
}

func (s *performanceService) GetPerformanceByID(ctx context.Context, performanceID string) (*response.PerformanceDetailResponse, error) {
	id, err := uuid.Parse(performanceID)
	if err != nil {
		return nil, fmt.Errorf("invalid performance ID format %s: %w", performanceID, err)
	}

	performance, err := s.repo.Performance.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find performance %s: %w", performanceID, err)
	}
	if performance == nil {
		return nil, fmt.Errorf("performance %s not found", performanceID)
	}

	return s.buildDetailResponse(ctx, performance)
}

// ==================== ADMIN METHODS ====================

func (s *performanceService) CreatePerformance(ctx context.Context, req *request.PerformanceRequest) (*response.PerformanceDetailResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create performance validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	playID, err := uuid.Parse(req.PlayID)
	if err != nil {
		return nil, fmt.Errorf("invalid play ID format %s: %w", req.PlayID, err)
	}

	hallID, err := uuid.Parse(req.TheatreHallID)
	if err != nil {
		return nil, fmt.Errorf("invalid theatre hall ID format %s: %w", req.TheatreHallID, err)
	}

	showtime, err := time.Parse(time.RFC3339, req.Showtime)
	if err != nil {
		return nil, fmt.Errorf("invalid showtime format %s, expected RFC3339: %w", req.Showtime, err)
	}

	play, err := s.repo.Play.FindByID(ctx, playID)
	if err != nil {
		return nil, fmt.Errorf("find play %s: %w", req.PlayID, err)
	}
	if play == nil {
		return nil, fmt.Errorf("play %s not found", req.PlayID)
	}

	hall, err := s.repo.TheatreHall.FindByID(ctx, hallID)
	if err != nil {
		return nil, fmt.Errorf("find theatre hall %s: %w", req.TheatreHallID, err)
	}
	if hall == nil {
		return nil, fmt.Errorf("theatre hall %s not found", req.TheatreHallID)
	}

	now := time.Now()
	performance := &entity.Performance{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		PlayID:        &playID,
		TheatreHallID: &hallID,
		Showtime:      showtime,
	}

	if err := s.repo.Performance.Create(ctx, performance); err != nil {
		s.log.Error("Failed to create performance", zap.Error(err))
		return nil, fmt.Errorf("create performance: %w", err)
	}

	s.log.Info("Performance created",
		zap.String("performance_id", performance.ID.String()),
		zap.String("play_id", req.PlayID),
		zap.String("hall_id", req.TheatreHallID),
	)

	return s.buildDetailResponse(ctx, performance)
}

func (s *performanceService) UpdatePerformance(ctx context.Context, performanceID string, req *request.PerformanceUpdateRequest) (*response.PerformanceDetailResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update performance validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(performanceID)
	if err != nil {
		return nil, fmt.Errorf("invalid performance ID format %s: %w", performanceID, err)
	}

	performance, err := s.repo.Performance.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find performance %s: %w", performanceID, err)
	}
	if performance == nil {
		return nil, fmt.Errorf("performance %s not found", performanceID)
	}

	if req.PlayID != nil {
		playID, err := uuid.Parse(*req.PlayID)
		if err != nil {
			return nil, fmt.Errorf("invalid play ID format %s: %w", *req.PlayID, err)
		}
		play, err := s.repo.Play.FindByID(ctx, playID)
		if err != nil {
			return nil, fmt.Errorf("find play %s: %w", *req.PlayID, err)
		}
		if play == nil {
			return nil, fmt.Errorf("play %s not found", *req.PlayID)
		}
		performance.PlayID = &playID
	}

	if req.TheatreHallID != nil {
		hallID, err := uuid.Parse(*req.TheatreHallID)
		if err != nil {
			return nil, fmt.Errorf("invalid theatre hall ID format %s: %w", *req.TheatreHallID, err)
		}
		hall, err := s.repo.TheatreHall.FindByID(ctx, hallID)
		if err != nil {
			return nil, fmt.Errorf("find theatre hall %s: %w", *req.TheatreHallID, err)
		}
		if hall == nil {
			return nil, fmt.Errorf("theatre hall %s not found", *req.TheatreHallID)
		}
		performance.TheatreHallID = &hallID
	}

	if req.Showtime != nil {
		showtime, err := time.Parse(time.RFC3339, *req.Showtime)
		if err != nil {
			return nil, fmt.Errorf("invalid showtime format %s, expected RFC3339: %w", *req.Showtime, err)
		}
		performance.Showtime = showtime
	}

	performance.UpdatedAt = time.Now()

	if err := s.repo.Performance.Update(ctx, performance); err != nil {
		s.log.Error("Failed to update performance", zap.Error(err))
		return nil, fmt.Errorf("update performance: %w", err)
	}

	s.log.Info("Performance updated", zap.String("performance_id", performanceID))

	return s.buildDetailResponse(ctx, performance)
}

func (s *performanceService) DeletePerformance(ctx context.Context, performanceID string) error {
	id, err := uuid.Parse(performanceID)
	if err != nil {
		return fmt.Errorf("invalid performance ID format %s: %w", performanceID, err)
	}

	performance, err := s.repo.Performance.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find performance %s: %w", performanceID, err)
	}
	if performance == nil {
		return fmt.Errorf("performance %s not found", performanceID)
	}

	if err := s.repo.Performance.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete performance %s: %w", performanceID, err)
	}

	s.log.Info("Performance deleted", zap.String("performance_id", performanceID))

	return nil
}

// ==================== HELPER METHODS ====================

// resolvePlayResponse expands the performance's play with its actors and
// genres. Returns nil when the play reference was nulled.
func (s *performanceService) resolvePlayResponse(ctx context.Context, performance *entity.Performance) (*response.PlayResponse, error) {
	if performance.PlayID == nil {
		return nil, nil
	}

	play, err := s.repo.Play.FindByID(ctx, *performance.PlayID)
	if err != nil {
		return nil, fmt.Errorf("find play for performance %s: %w", performance.ID.String(), err)
	}
	if play == nil {
		return nil, nil
	}

	actors, err := s.repo.Actor.FindByPlayID(ctx, play.ID)
	if err != nil {
		return nil, fmt.Errorf("find actors for play %s: %w", play.ID.String(), err)
	}

	genres, err := s.repo.Genre.FindByPlayID(ctx, play.ID)
	if err != nil {
		return nil, fmt.Errorf("find genres for play %s: %w", play.ID.String(), err)
	}

	resp := response.PlayToResponse(play, actors, genres)
	return &resp, nil
}

// buildDetailResponse computes remaining availability as hall capacity minus
// tickets sold. A performance whose hall reference was nulled out has no
// defined capacity and serializes availability as null.
func (s *performanceService) buildDetailResponse(ctx context.Context, performance *entity.Performance) (*response.PerformanceDetailResponse, error) {
	play, err := s.resolvePlayResponse(ctx, performance)
	if err != nil {
		return nil, err
	}

	var hall *entity.TheatreHall
	var available *int

	if performance.TheatreHallID != nil {
		hall, err = s.repo.TheatreHall.FindByID(ctx, *performance.TheatreHallID)
		if err != nil {
			return nil, fmt.Errorf("find hall for performance %s: %w", performance.ID.String(), err)
		}
	}

	if hall != nil {
		sold, err := s.repo.Ticket.CountByPerformanceID(ctx, performance.ID)
		if err != nil {
			return nil, fmt.Errorf("count tickets for performance %s: %w", performance.ID.String(), err)
		}

		remaining := hall.Capacity() - int(sold)
		if remaining < 0 {
			// Constraint drift: more tickets exist than the hall holds,
			// usually after shrinking the hall grid
			s.log.Error("Ticket count exceeds hall capacity",
				zap.String("performance_id", performance.ID.String()),
				zap.Int("capacity", hall.Capacity()),
				zap.Int64("sold", sold),
			)
		}
		available = &remaining
	}

	resp := response.PerformanceToDetailResponse(performance, play, hall, available)
	return &resp, nil
}
