package request

type PerformanceRequest struct {
	PlayID        string `json:"play_id" validate:"required,uuid4"`
	TheatreHallID string `json:"theatre_hall_id" validate:"required,uuid4"`
	Showtime      string `json:"showtime" validate:"required"`
}

type PerformanceUpdateRequest struct {
	PlayID        *string `json:"play_id,omitempty" validate:"omitempty,uuid4"`
	TheatreHallID *string `json:"theatre_hall_id,omitempty" validate:"omitempty,uuid4"`
	Showtime      *string `json:"showtime,omitempty"`
}
