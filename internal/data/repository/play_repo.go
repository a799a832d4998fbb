package repository

import (
	"context"
	"fmt"

	"theatre-booking/internal/data/entity"
	"theatre-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type PlayRepository interface {
	Create(ctx context.Context, play *entity.Play) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Play, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Play, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, play *entity.Play) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type playRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPlayRepository(db database.PgxIface, log *zap.Logger) PlayRepository {
	return &playRepository{
		db:  db,
		log: log.With(zap.String("repository", "play")),
	}
}

func (r *playRepository) Create(ctx context.Context, play *entity.Play) error {
	query := `
		INSERT INTO plays (id, title, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		play.ID,
		play.Title,
		play.Description,
		play.CreatedAt,
		play.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create play",
			zap.Error(err),
			zap.String("title", play.Title),
		)
		return fmt.Errorf("create play %s: %w", play.Title, err)
	}

	return nil
}

func (r *playRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Play, error) {
	query := `
		SELECT id, title, description, created_at, updated_at
		FROM plays
		WHERE id = $1
	`

	var play entity.Play
	err := r.db.QueryRow(ctx, query, id).Scan(
		&play.ID,
		&play.Title,
		&play.Description,
		&play.CreatedAt,
		&play.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find play by ID",
			zap.Error(err),
			zap.String("play_id", id.String()),
		)
		return nil, fmt.Errorf("find play by ID %s: %w", id.String(), err)
	}

	return &play, nil
}

func (r *playRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Play, error) {
	query := `
		SELECT id, title, description, created_at, updated_at
		FROM plays
		ORDER BY title
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find plays",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find plays: %w", err)
	}
	defer rows.Close()

	var plays []*entity.Play
	for rows.Next() {
		var play entity.Play
		err := rows.Scan(
			&play.ID,
			&play.Title,
			&play.Description,
			&play.CreatedAt,
			&play.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan play row", zap.Error(err))
			return nil, fmt.Errorf("scan play row: %w", err)
		}
		plays = append(plays, &play)
	}

	return plays, nil
}

func (r *playRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM plays`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count plays", zap.Error(err))
		return 0, fmt.Errorf("count plays: %w", err)
	}

	return count, nil
}

func (r *playRepository) Update(ctx context.Context, play *entity.Play) error {
	query := `
		UPDATE plays
		SET title = $2, description = $3, updated_at = $4
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		play.ID,
		play.Title,
		play.Description,
		play.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update play",
			zap.Error(err),
			zap.String("play_id", play.ID.String()),
		)
		return fmt.Errorf("update play %s: %w", play.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("play %s not found", play.ID.String())
	}

	return nil
}

func (r *playRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM plays WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete play",
			zap.Error(err),
			zap.String("play_id", id.String()),
		)
		return fmt.Errorf("delete play %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("play %s not found", id.String())
	}

	r.log.Info("Play deleted", zap.String("play_id", id.String()))
	return nil
}
