package entity

import "github.com/google/uuid"

type PlayGenre struct {
	BaseSimple
	PlayID  uuid.UUID `db:"play_id"`
	GenreID uuid.UUID `db:"genre_id"`
}
