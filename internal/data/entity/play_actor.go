package entity

import "github.com/google/uuid"

type PlayActor struct {
	BaseSimple
	PlayID  uuid.UUID `db:"play_id"`
	ActorID uuid.UUID `db:"actor_id"`
}
