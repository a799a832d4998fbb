package repository

import (
	"context"
	"fmt"

	"theatre-booking/internal/data/entity"
	"theatre-booking/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PlayGenreRepository interface {
	CreateBatch(ctx context.Context, links []*entity.PlayGenre) error
	DeleteByPlayID(ctx context.Context, playID uuid.UUID) error
}

type playGenreRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPlayGenreRepository(db database.PgxIface, log *zap.Logger) PlayGenreRepository {
	return &playGenreRepository{
		db:  db,
		log: log.With(zap.String("repository", "play_genre")),
	}
}

func (r *playGenreRepository) CreateBatch(ctx context.Context, links []*entity.PlayGenre) error {
	if len(links) == 0 {
		return nil
	}

	query := `
		INSERT INTO play_genres (id, play_id, genre_id, created_at)
		VALUES ($1, $2, $3, $4)
	`

	for _, link := range links {
		_, err := r.db.Exec(ctx, query,
			link.ID,
			link.PlayID,
			link.GenreID,
			link.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to link genre to play",
				zap.Error(err),
				zap.String("play_id", link.PlayID.String()),
				zap.String("genre_id", link.GenreID.String()),
			)
			return fmt.Errorf("link genre %s to play %s: %w",
				link.GenreID.String(), link.PlayID.String(), err)
		}
	}

	return nil
}

func (r *playGenreRepository) DeleteByPlayID(ctx context.Context, playID uuid.UUID) error {
	query := `DELETE FROM play_genres WHERE play_id = $1`

	_, err := r.db.Exec(ctx, query, playID)
	if err != nil {
		r.log.Error("Failed to delete play genres",
			zap.Error(err),
			zap.String("play_id", playID.String()),
		)
		return fmt.Errorf("delete play genres for play %s: %w", playID.String(), err)
	}

	return nil
}
