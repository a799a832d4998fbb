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

type PerformanceRepository interface {
	Create(ctx context.Context, performance *entity.Performance) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Performance, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Performance, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, performance *entity.Performance) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type performanceRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPerformanceRepository(db database.PgxIface, log *zap.Logger) PerformanceRepository {
	return &performanceRepository{
		db:  db,
		log: log.With(zap.String("repository", "performance")),
	}
}

func (r *performanceRepository) Create(ctx context.Context, performance *entity.Performance) error {
	query := `
		INSERT INTO performances (id, play_id, theatre_hall_id, showtime, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		performance.ID,
		performance.PlayID,
		performance.TheatreHallID,
		performance.Showtime,
		performance.CreatedAt,
		performance.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create performance",
			zap.Error(err),
			zap.String("performance_id", performance.ID.String()),
		)
		return fmt.Errorf("create performance %s: %w", performance.ID.String(), err)
	}

	return nil
}

func (r *performanceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Performance, error) {
	query := `
		SELECT id, play_id, theatre_hall_id, showtime, created_at, updated_at
		FROM performances
		WHERE id = $1
	`

	var performance entity.Performance
	err := r.db.QueryRow(ctx, query, id).Scan(
		&performance.ID,
		&performance.PlayID,
		&performance.TheatreHallID,
		&performance.Showtime,
		&performance.CreatedAt,
		&performance.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find performance by ID",
			zap.Error(err),
			zap.String("performance_id", id.String()),
		)
		return nil, fmt.Errorf("find performance by ID %s: %w", id.String(), err)
	}

	return &performance, nil
}

func (r *performanceRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Performance, error) {
	query := `
		SELECT id, play_id, theatre_hall_id, showtime, created_at, updated_at
		FROM performances
		ORDER BY showtime
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find performances",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find performances: %w", err)
	}
	defer rows.Close()

	var performances []*entity.Performance
	for rows.Next() {
		var performance entity.Performance
		err := rows.Scan(
			&performance.ID,
			&performance.PlayID,
			&performance.TheatreHallID,
			&performance.Showtime,
			&performance.CreatedAt,
			&performance.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan performance row", zap.Error(err))
			return nil, fmt.Errorf("scan performance row: %w", err)
		}
		performances = append(performances, &performance)
	}

	return performances, nil
}

func (r *performanceRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM performances`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count performances", zap.Error(err))
		return 0, fmt.Errorf("count performances: %w", err)
	}

	return count, nil
}

func (r *performanceRepository) Update(ctx context.Context, performance *entity.Performance) error {
	query := `
		UPDATE performances
		SET play_id = $2, theatre_hall_id = $3, showtime = $4, updated_at = $5
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		performance.ID,
		performance.PlayID,
		performance.TheatreHallID,
		performance.Showtime,
		performance.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update performance",
			zap.Error(err),
			zap.String("performance_id", performance.ID.String()),
		)
		return fmt.Errorf("update performance %s: %w", performance.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("performance %s not found", performance.ID.String())
	}

	return nil
}

// Delete removes the performance; tickets referencing it keep their rows with
// performance_id nulled by the schema.
func (r *performanceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM performances WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete performance",
			zap.Error(err),
			zap.String("performance_id", id.String()),
		)
		return fmt.Errorf("delete performance %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("performance %s not found", id.String())
	}

	r.log.Info("Performance deleted", zap.String("performance_id", id.String()))
	return nil
}
