package repository

import (
	"context"
	"fmt"

	"theatre-booking/internal/data/entity"
	"theatre-booking/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PlayActorRepository interface {
	CreateBatch(ctx context.Context, links []*entity.PlayActor) error
	DeleteByPlayID(ctx context.Context, playID uuid.UUID) error
}

type playActorRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPlayActorRepository(db database.PgxIface, log *zap.Logger) PlayActorRepository {
	return &playActorRepository{
		db:  db,
		log: log.With(zap.String("repository", "play_actor")),
	}
}

func (r *playActorRepository) CreateBatch(ctx context.Context, links []*entity.PlayActor) error {
	if len(links) == 0 {
		return nil
	}

	query := `
		INSERT INTO play_actors (id, play_id, actor_id, created_at)
		VALUES ($1, $2, $3, $4)
	`

	for _, link := range links {
		_, err := r.db.Exec(ctx, query,
			link.ID,
			link.PlayID,
			link.ActorID,
			link.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to link actor to play",
				zap.Error(err),
				zap.String("play_id", link.PlayID.String()),
				zap.String("actor_id", link.ActorID.String()),
			)
			return fmt.Errorf("link actor %s to play %s: %w",
				link.ActorID.String(), link.PlayID.String(), err)
		}
	}

	return nil
}

func (r *playActorRepository) DeleteByPlayID(ctx context.Context, playID uuid.UUID) error {
	query := `DELETE FROM play_actors WHERE play_id = $1`

	_, err := r.db.Exec(ctx, query, playID)
	if err != nil {
		r.log.Error("Failed to delete play actors",
			zap.Error(err),
			zap.String("play_id", playID.String()),
		)
		return fmt.Errorf("delete play actors for play %s: %w", playID.String(), err)
	}

	return nil
}
