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

// CatalogService covers the flat reference tables: actors, genres and
// theatre halls. Plays get their own service because of the membership
// links.
type CatalogService interface {
	// Actors
	GetAllActors(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ActorResponse], error)
	GetActorByID(ctx context.Context, actorID string) (*response.ActorResponse, error)
	CreateActor(ctx context.Context, req *request.ActorRequest) (*response.ActorResponse, error)
	UpdateActor(ctx context.Context, actorID string, req *request.ActorUpdateRequest) (*response.ActorResponse, error)
	DeleteActor(ctx context.Context, actorID string) error

	// Genres
	GetAllGenres(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.GenreResponse], error)
	GetGenreByID(ctx context.Context, genreID string) (*response.GenreResponse, error)
	CreateGenre(ctx context.Context, req *request.GenreRequest) (*response.GenreResponse, error)
	UpdateGenre(ctx context.Context, genreID string, req *request.GenreUpdateRequest) (*response.GenreResponse, error)
	DeleteGenre(ctx context.Context, genreID string) error

	// Theatre halls
	GetAllTheatreHalls(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.TheatreHallResponse], error)
	GetTheatreHallByID(ctx context.Context, hallID string) (*response.TheatreHallResponse, error)
	CreateTheatreHall(ctx context.Context, req *request.TheatreHallRequest) (*response.TheatreHallResponse, error)
	UpdateTheatreHall(ctx context.Context, hallID string, req *request.TheatreHallUpdateRequest) (*response.TheatreHallResponse, error)
	DeleteTheatreHall(ctx context.Context, hallID string) error
}

type catalogService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCatalogService(repo *repository.Repository, log *zap.Logger) CatalogService {
	return &catalogService{
		repo: repo,
		log:  log.With(zap.String("service", "catalog")),
	}
}

// ==================== ACTORS ====================

func (s *catalogService) GetAllActors(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ActorResponse], error) {
	actors, err := s.repo.Actor.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get actors", zap.Error(err))
		return nil, fmt.Errorf("get actors: %w", err)
	}

	total, err := s.repo.Actor.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count actors: %w", err)
	}

	actorResponses := make([]response.ActorResponse, len(actors))
	for i, actor := range actors {
		actorResponses[i] = response.ActorToResponse(actor)
	}

	return response.NewPaginatedResponse(actorResponses, req.Page, req.PerPage, total), nil
}

func (s *catalogService) GetActorByID(ctx context.Context, actorID string) (*response.ActorResponse, error) {
	id, err := uuid.Parse(actorID)
	if err != nil {
		return nil, fmt.Errorf("invalid actor ID format %s: %w", actorID, err)
	}

	actor, err := s.repo.Actor.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find actor %s: %w", actorID, err)
	}
	if actor == nil {
		return nil, fmt.Errorf("actor %s not found", actorID)
	}

	resp := response.ActorToResponse(actor)
	return &resp, nil
}

func (s *catalogService) CreateActor(ctx context.Context, req *request.ActorRequest) (*response.ActorResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create actor validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	actor := &entity.Actor{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}

	if err := s.repo.Actor.Create(ctx, actor); err != nil {
		s.log.Error("Failed to create actor", zap.Error(err))
		return nil, fmt.Errorf("create actor: %w", err)
	}

	s.log.Info("Actor created", zap.String("actor_id", actor.ID.String()))

	resp := response.ActorToResponse(actor)
	return &resp, nil
}

func (s *catalogService) UpdateActor(ctx context.Context, actorID string, req *request.ActorUpdateRequest) (*response.ActorResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update actor validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(actorID)
	if err != nil {
		return nil, fmt.Errorf("invalid actor ID format %s: %w", actorID, err)
	}

	actor, err := s.repo.Actor.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find actor %s: %w", actorID, err)
	}
	if actor == nil {
		return nil, fmt.Errorf("actor %s not found", actorID)
	}

	if req.FirstName != nil {
		actor.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		actor.LastName = *req.LastName
	}
	actor.UpdatedAt = time.Now()

	if err := s.repo.Actor.Update(ctx, actor); err != nil {
		s.log.Error("Failed to update actor", zap.Error(err))
		return nil, fmt.Errorf("update actor: %w", err)
	}

	resp := response.ActorToResponse(actor)
	return &resp, nil
}

func (s *catalogService) DeleteActor(ctx context.Context, actorID string) error {
	id, err := uuid.Parse(actorID)
	if err != nil {
		return fmt.Errorf("invalid actor ID format %s: %w", actorID, err)
	}

	actor, err := s.repo.Actor.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find actor %s: %w", actorID, err)
	}
	if actor == nil {
		return fmt.Errorf("actor %s not found", actorID)
	}

	if err := s.repo.Actor.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete actor %s: %w", actorID, err)
	}

	s.log.Info("Actor deleted", zap.String("actor_id", actorID))

	return nil
}

// ==================== GENRES ====================

func (s *catalogService) GetAllGenres(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.GenreResponse], error) {
	genres, err := s.repo.Genre.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get genres", zap.Error(err))
		return nil, fmt.Errorf("get genres: %w", err)
	}

	total, err := s.repo.Genre.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count genres: %w", err)
	}

	genreResponses := make([]response.GenreResponse, len(genres))
	for i, genre := range genres {
		genreResponses[i] = response.GenreToResponse(genre)
	}

	return response.NewPaginatedResponse(genreResponses, req.Page, req.PerPage, total), nil
}

func (s *catalogService) GetGenreByID(ctx context.Context, genreID string) (*response.GenreResponse, error) {
	id, err := uuid.Parse(genreID)
	if err != nil {
		return nil, fmt.Errorf("invalid genre ID format %s: %w", genreID, err)
	}

	genre, err := s.repo.Genre.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find genre %s: %w", genreID, err)
	}
	if genre == nil {
		return nil, fmt.Errorf("genre %s not found", genreID)
	}

	resp := response.GenreToResponse(genre)
	return &resp, nil
}

func (s *catalogService) CreateGenre(ctx context.Context, req *request.GenreRequest) (*response.GenreResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create genre validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	genre := &entity.Genre{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name: req.Name,
	}

	if err := s.repo.Genre.Create(ctx, genre); err != nil {
		s.log.Error("Failed to create genre", zap.Error(err))
		return nil, fmt.Errorf("create genre: %w", err)
	}

	s.log.Info("Genre created", zap.String("genre_id", genre.ID.String()))

	resp := response.GenreToResponse(genre)
	return &resp, nil
}

func (s *catalogService) UpdateGenre(ctx context.Context, genreID string, req *request.GenreUpdateRequest) (*response.GenreResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update genre validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(genreID)
	if err != nil {
		return nil, fmt.Errorf("invalid genre ID format %s: %w", genreID, err)
	}

	genre, err := s.repo.Genre.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find genre %s: %w", genreID, err)
	}
	if genre == nil {
		return nil, fmt.Errorf("genre %s not found", genreID)
	}

	if req.Name != nil {
		genre.Name = *req.Name
	}
	genre.UpdatedAt = time.Now()

	if err := s.repo.Genre.Update(ctx, genre); err != nil {
		s.log.Error("Failed to update genre", zap.Error(err))
		return nil, fmt.Errorf("update genre: %w", err)
	}

	resp := response.GenreToResponse(genre)
	return &resp, nil
}

func (s *catalogService) DeleteGenre(ctx context.Context, genreID string) error {
	id, err := uuid.Parse(genreID)
	if err != nil {
		return fmt.Errorf("invalid genre ID format %s: %w", genreID, err)
	}

	genre, err := s.repo.Genre.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find genre %s: %w", genreID, err)
	}
	if genre == nil {
		return fmt.Errorf("genre %s not found", genreID)
	}

	if err := s.repo.Genre.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete genre %s: %w", genreID, err)
	}

	s.log.Info("Genre deleted", zap.String("genre_id", genreID))

	return nil
}

// ==================== THEATRE HALLS ====================

func (s *catalogService) GetAllTheatreHalls(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.TheatreHallResponse], error) {
	halls, err := s.repo.TheatreHall.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get theatre halls", zap.Error(err))
		return nil, fmt.Errorf("get theatre halls: %w", err)
	}

	total, err := s.repo.TheatreHall.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count theatre halls: %w", err)
	}

	hallResponses := make([]response.TheatreHallResponse, len(halls))
	for i, hall := range halls {
		hallResponses[i] = response.TheatreHallToResponse(hall)
	}

	return response.NewPaginatedResponse(hallResponses, req.Page, req.PerPage, total), nil
}

func (s *catalogService) GetTheatreHallByID(ctx context.Context, hallID string) (*response.TheatreHallResponse, error) {
	id, err := uuid.Parse(hallID)
	if err != nil {
		return nil, fmt.Errorf("invalid theatre hall ID format %s: %w", hallID, err)
	}

	hall, err := s.repo.TheatreHall.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find theatre hall %s: %w", hallID, err)
	}
	if hall == nil {
		return nil, fmt.Errorf("theatre hall %s not found", hallID)
	}

	resp := response.TheatreHallToResponse(hall)
	return &resp, nil
}

func (s *catalogService) CreateTheatreHall(ctx context.Context, req *request.TheatreHallRequest) (*response.TheatreHallResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create theatre hall validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	hall := &entity.TheatreHall{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:       req.Name,
		Rows:       req.Rows,
		SeatsInRow: req.SeatsInRow,
	}

	if err := s.repo.TheatreHall.Create(ctx, hall); err != nil {
		s.log.Error("Failed to create theatre hall", zap.Error(err))
		return nil, fmt.Errorf("create theatre hall: %w", err)
	}

	s.log.Info("Theatre hall created",
		zap.String("hall_id", hall.ID.String()),
		zap.Int("capacity", hall.Capacity()),
	)

	resp := response.TheatreHallToResponse(hall)
	return &resp, nil
}

func (s *catalogService) UpdateTheatreHall(ctx context.Context, hallID string, req *request.TheatreHallUpdateRequest) (*response.TheatreHallResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update theatre hall validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(hallID)
	if err != nil {
		return nil, fmt.Errorf("invalid theatre hall ID format %s: %w", hallID, err)
	}

	hall, err := s.repo.TheatreHall.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find theatre hall %s: %w", hallID, err)
	}
	if hall == nil {
		return nil, fmt.Errorf("theatre hall %s not found", hallID)
	}

	if req.Name != nil {
		hall.Name = *req.Name
	}
	if req.Rows != nil {
		hall.Rows = *req.Rows
	}
	if req.SeatsInRow != nil {
		hall.SeatsInRow = *req.SeatsInRow
	}
	hall.UpdatedAt = time.Now()

	if err := s.repo.TheatreHall.Update(ctx, hall); err != nil {
		s.log.Error("Failed to update theatre hall", zap.Error(err))
		return nil, fmt.Errorf("update theatre hall: %w", err)
	}

	resp := response.TheatreHallToResponse(hall)
	return &resp, nil
}

func (s *catalogService) DeleteTheatreHall(ctx context.Context, hallID string) error {
	id, err := uuid.Parse(hallID)
	if err != nil {
		return fmt.Errorf("invalid theatre hall ID format %s: %w", hallID, err)
	}

	hall, err := s.repo.TheatreHall.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find theatre hall %s: %w", hallID, err)
	}
	if hall == nil {
		return fmt.Errorf("theatre hall %s not found", hallID)
	}

	if err := s.repo.TheatreHall.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete theatre hall %s: %w", hallID, err)
	}

	s.log.Info("Theatre hall deleted", zap.String("hall_id", hallID))

	return nil
}
