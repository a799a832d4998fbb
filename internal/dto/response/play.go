package response

import (
	"theatre-booking/internal/data/entity"
)

// PlayResponse expands actors and genres inline so clients never chase
// membership links themselves.
type PlayResponse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Actors      []ActorResponse `json:"actors"`
	Genres      []GenreResponse `json:"genres"`
}

func PlayToResponse(play *entity.Play, actors []*entity.Actor, genres []*entity.Genre) PlayResponse {
	actorResponses := make([]ActorResponse, len(actors))
	for i, actor := range actors {
		actorResponses[i] = ActorToResponse(actor)
	}

	genreResponses := make([]GenreResponse, len(genres))
	for i, genre := range genres {
		genreResponses[i] = GenreToResponse(genre)
	}

	return PlayResponse{
		ID:          play.ID.String(),
		Title:       play.Title,
		Description: play.Description,
		Actors:      actorResponses,
		Genres:      genreResponses,
	}
}
