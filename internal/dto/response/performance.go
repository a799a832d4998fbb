package response

import (
	"time"

	"theatre-booking/internal/data/entity"
)

const SoldOutLabel = "Sold out!"

// PerformanceResponse expands the play inline. Play is nil when the
// referenced play was deleted (the reference is nulled, not cascaded).
type PerformanceResponse struct {
	ID       string        `json:"id"`
	Play     *PlayResponse `json:"play"`
	Showtime time.Time     `json:"showtime"`
}

// PerformanceDetailResponse additionally expands the hall and carries
// availability: an integer normally, the sold-out label at exactly zero.
type PerformanceDetailResponse struct {
	PerformanceResponse
	TheatreHall    *TheatreHallResponse `json:"theatre_hall"`
	AvailableSeats any                  `json:"available_seats"`
}

func PerformanceToResponse(performance *entity.Performance, play *PlayResponse) PerformanceResponse {
	return PerformanceResponse{
		ID:       performance.ID.String(),
		Play:     play,
		Showtime: performance.Showtime,
	}
}

// PerformanceToDetailResponse renders the detail view. availableSeats is nil
// when the hall reference was nulled and availability cannot be computed.
func PerformanceToDetailResponse(
	performance *entity.Performance,
	play *PlayResponse,
	hall *entity.TheatreHall,
	availableSeats *int,
) PerformanceDetailResponse {
	var hallResp *TheatreHallResponse
	if hall != nil {
		resp := TheatreHallToResponse(hall)
		hallResp = &resp
	}

	var availability any
	if availableSeats != nil {
		availability = AvailabilityLabel(*availableSeats)
	}

	return PerformanceDetailResponse{
		PerformanceResponse: PerformanceToResponse(performance, play),
		TheatreHall:         hallResp,
		AvailableSeats:      availability,
	}
}

// AvailabilityLabel maps exactly zero remaining seats to the sold-out
// label. The calculator itself stays numeric; only presentation gets
// the sentinel.
func AvailabilityLabel(remaining int) any {
	if remaining == 0 {
		return SoldOutLabel
	}
	return remaining
}
