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

type PlayService interface {
	GetAllPlays(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.PlayResponse], error)
	GetPlayByID(ctx context.Context, playID string) (*response.PlayResponse, error)

	// Admin
	CreatePlay(ctx context.Context, req *request.PlayRequest) (*response.PlayResponse, error)
	UpdatePlay(ctx context.Context, playID string, req *request.PlayUpdateRequest) (*response.PlayResponse, error)
	DeletePlay(ctx context.Context, playID string) error
}

type playService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewPlayService(repo *repository.Repository, log *zap.Logger) PlayService {
	return &playService{
		repo: repo,
		log:  log.With(zap.String("service", "play")),
	}
}

func (s *playService) GetAllPlays(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.PlayResponse], error) {
	plays, err := s.repo.Play.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get plays", zap.Error(err))
		return nil, fmt.Errorf("get plays: %w", err)
	}

	total, err := s.repo.Play.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count plays: %w", err)
	}

	playResponses := make([]response.PlayResponse, len(plays))
	for i, play := range plays {
		resp, err := s.buildPlayResponse(ctx, play)
		if err != nil {
			return nil, err
		}
		playResponses[i] = *resp
	}

	return response.NewPaginatedResponse(playResponses, req.Page, req.PerPage, total), nil
}

func (s *playService) GetPlayByID(ctx context.Context, playID string) (*response.PlayResponse, error) {
	id, err := uuid.Parse(playID)
	if err != nil {
		return nil, fmt.Errorf("invalid play ID format %s: %w", playID, err)
	}

	play, err := s.repo.Play.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find play %s: %w", playID, err)
	}
	if play == nil {
		return nil, fmt.Errorf("play %s not found", playID)
	}

	return s.buildPlayResponse(ctx, play)
}

// ==================== ADMIN METHODS ====================

func (s *playService) CreatePlay(ctx context.Context, req *request.PlayRequest) (*response.PlayResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create play validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	actorIDs, err := s.resolveActorIDs(ctx, req.ActorIDs)
	if err != nil {
		return nil, err
	}

	genreIDs, err := s.resolveGenreIDs(ctx, req.GenreIDs)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	play := &entity.Play{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:       req.Title,
		Description: req.Description,
	}

	if err := s.repo.Play.Create(ctx, play); err != nil {
		s.log.Error("Failed to create play", zap.Error(err))
		return nil, fmt.Errorf("create play: %w", err)
	}

	if err := s.linkActors(ctx, play.ID, actorIDs); err != nil {
		return nil, err
	}
	if err := s.linkGenres(ctx, play.ID, genreIDs); err != nil {
		return nil, err
	}

	s.log.Info("Play created",
		zap.String("play_id", play.ID.String()),
		zap.String("title", play.Title),
		zap.Int("actors", len(actorIDs)),
		zap.Int("genres", len(genreIDs)),
	)

	return s.buildPlayResponse(ctx, play)
}

func (s *playService) UpdatePlay(ctx context.Context, playID string, req *request.PlayUpdateRequest) (*response.PlayResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update play validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(playID)
	if err != nil {
		return nil, fmt.Errorf("invalid play ID format %s: %w", playID, err)
	}

	play, err := s.repo.Play.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find play %s: %w", playID, err)
	}
	if play == nil {
		return nil, fmt.Errorf("play %s not found", playID)
	}

	if req.Title != nil {
		play.Title = *req.Title
	}
	if req.Description != nil {
		play.Description = *req.Description
	}
	play.UpdatedAt = time.Now()

	if err := s.repo.Play.Update(ctx, play); err != nil {
		s.log.Error("Failed to update play", zap.Error(err))
		return nil, fmt.Errorf("update play: %w", err)
	}

	// Memberships are replaced wholesale when the request carries them
	if req.ActorIDs != nil {
		actorIDs, err := s.resolveActorIDs(ctx, req.ActorIDs)
		if err != nil {
			return nil, err
		}
		if err := s.repo.PlayActor.DeleteByPlayID(ctx, play.ID); err != nil {
			return nil, fmt.Errorf("clear play actors: %w", err)
		}
		if err := s.linkActors(ctx, play.ID, actorIDs); err != nil {
			return nil, err
		}
	}

	if req.GenreIDs != nil {
		genreIDs, err := s.resolveGenreIDs(ctx, req.GenreIDs)
		if err != nil {
			return nil, err
		}
		if err := s.repo.PlayGenre.DeleteByPlayID(ctx, play.ID); err != nil {
			return nil, fmt.Errorf("clear play genres: %w", err)
		}
		if err := s.linkGenres(ctx, play.ID, genreIDs); err != nil {
			return nil, err
		}
	}

	s.log.Info("Play updated", zap.String("play_id", playID))

	return s.buildPlayResponse(ctx, play)
}

func (s *playService) DeletePlay(ctx context.Context, playID string) error {
	id, err := uuid.Parse(playID)
	if err != nil {
		return fmt.Errorf("invalid play ID format %s: %w", playID, err)
	}

	play, err := s.repo.Play.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find play %s: %w", playID, err)
	}
	if play == nil {
		return fmt.Errorf("play %s not found", playID)
	}

	// Membership rows cascade; performance references are nulled
	if err := s.repo.Play.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete play %s: %w", playID, err)
	}

	s.log.Info("Play deleted", zap.String("play_id", playID))

	return nil
}

// ==================== HELPER METHODS ====================

func (s *playService) resolveActorIDs(ctx context.Context, ids []string) ([]uuid.UUID, error) {
	actorIDs := make([]uuid.UUID, 0, len(ids))
	for _, raw := range ids {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid actor ID format %s: %w", raw, err)
		}
		actor, err := s.repo.Actor.FindByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("find actor %s: %w", raw, err)
		}
		if actor == nil {
			return nil, fmt.Errorf("actor %s not found", raw)
		}
		actorIDs = append(actorIDs, id)
	}
	return actorIDs, nil
}

func (s *playService) resolveGenreIDs(ctx context.Context, ids []string) ([]uuid.UUID, error) {
	genreIDs := make([]uuid.UUID, 0, len(ids))
	for _, raw := range ids {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid genre ID format %s: %w", raw, err)
		}
		genre, err := s.repo.Genre.FindByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("find genre %s: %w", raw, err)
		}
		if genre == nil {
			return nil, fmt.Errorf("genre %s not found", raw)
		}
		genreIDs = append(genreIDs, id)
	}
	return genreIDs, nil
}

func (s *playService) linkActors(ctx context.Context, playID uuid.UUID, actorIDs []uuid.UUID) error {
	if len(actorIDs) == 0 {
		return nil
	}

	now := time.Now()
	links := make([]*entity.PlayActor, len(actorIDs))
	for i, actorID := range actorIDs {
		links[i] = &entity.PlayActor{
			BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: now},
			PlayID:     playID,
			ActorID:    actorID,
		}
	}

	if err := s.repo.PlayActor.CreateBatch(ctx, links); err != nil {
		return fmt.Errorf("link actors to play %s: %w", playID.String(), err)
	}
	return nil
}

func (s *playService) linkGenres(ctx context.Context, playID uuid.UUID, genreIDs []uuid.UUID) error {
	if len(genreIDs) == 0 {
		return nil
	}

	now := time.Now()
	links := make([]*entity.PlayGenre, len(genreIDs))
	for i, genreID := range genreIDs {
		links[i] = &entity.PlayGenre{
			BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: now},
			PlayID:     playID,
			GenreID:    genreID,
		}
	}

	if err := s.repo.PlayGenre.CreateBatch(ctx, links); err != nil {
		return fmt.Errorf("link genres to play %s: %w", playID.String(), err)
	}
	return nil
}

func (s *playService) buildPlayResponse(ctx context.Context, play *entity.Play) (*response.PlayResponse, error) {
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
