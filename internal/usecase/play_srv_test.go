package usecase_test

import (
	"context"
	"testing"
	"time"

	"theatre-booking/internal/data/entity"
	"theatre-booking/internal/data/repository"
	"theatre-booking/internal/dto/request"
	"theatre-booking/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func seedActor(t *testing.T, repo *repository.Repository, first, last string) *entity.Actor {
	t.Helper()

	now := time.Now()
	actor := &entity.Actor{
		Base:      entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		FirstName: first,
		LastName:  last,
	}
	require.NoError(t, repo.Actor.Create(context.Background(), actor))
	return actor
}

func seedGenre(t *testing.T, repo *repository.Repository, name string) *entity.Genre {
	t.Helper()

	now := time.Now()
	genre := &entity.Genre{
		Base: entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Name: name,
	}
	require.NoError(t, repo.Genre.Create(context.Background(), genre))
	return genre
}

func TestCreatePlay_WithMemberships(t *testing.T) {
	repo := newFakeRepository()
	service := usecase.NewPlayService(repo, zap.NewNop())

	actor := seedActor(t, repo, "Laurence", "Olivier")
	genre := seedGenre(t, repo, "Tragedy")

	play, err := service.CreatePlay(context.Background(), &request.PlayRequest{
		Title:       "Hamlet",
		Description: "The tragedy of the Prince of Denmark",
		ActorIDs:    []string{actor.ID.String()},
		GenreIDs:    []string{genre.ID.String()},
	})

	require.NoError(t, err)
	assert.Equal(t, "Hamlet", play.Title)
	require.Len(t, play.Actors, 1)
	assert.Equal(t, "Laurence Olivier", play.Actors[0].FullName)
	require.Len(t, play.Genres, 1)
	assert.Equal(t, "Tragedy", play.Genres[0].Name)
}

func TestCreatePlay_UnknownActor(t *testing.T) {
	repo := newFakeRepository()
	service := usecase.NewPlayService(repo, zap.NewNop())

	play, err := service.CreatePlay(context.Background(), &request.PlayRequest{
		Title:       "Hamlet",
		Description: "The tragedy of the Prince of Denmark",
		ActorIDs:    []string{uuid.New().String()},
	})

	assert.Nil(t, play)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestUpdatePlay_ReplacesMemberships(t *testing.T) {
	repo := newFakeRepository()
	service := usecase.NewPlayService(repo, zap.NewNop())
	ctx := context.Background()

	first := seedActor(t, repo, "Laurence", "Olivier")
	second := seedActor(t, repo, "Judi", "Dench")

	play, err := service.CreatePlay(ctx, &request.PlayRequest{
		Title:       "Hamlet",
		Description: "The tragedy of the Prince of Denmark",
		ActorIDs:    []string{first.ID.String()},
	})
	require.NoError(t, err)

	updated, err := service.UpdatePlay(ctx, play.ID, &request.PlayUpdateRequest{
		ActorIDs: []string{second.ID.String()},
	})
	require.NoError(t, err)

	require.Len(t, updated.Actors, 1)
	assert.Equal(t, "Judi Dench", updated.Actors[0].FullName)
}

func TestGetAllPlays_Paginated(t *testing.T) {
	repo := newFakeRepository()
	service := usecase.NewPlayService(repo, zap.NewNop())
	ctx := context.Background()

	for _, title := range []string{"Hamlet", "Macbeth", "Othello"} {
		_, err := service.CreatePlay(ctx, &request.PlayRequest{
			Title:       title,
			Description: "A tragedy",
		})
		require.NoError(t, err)
	}

	result, err := service.GetAllPlays(ctx, &request.PaginatedRequest{Page: 1, PerPage: 2})

	require.NoError(t, err)
	assert.Len(t, result.Data, 2)
	assert.Equal(t, int64(3), result.Pagination.Total)
	assert.Equal(t, 2, result.Pagination.TotalPages)
}
