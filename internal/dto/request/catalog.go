package request

type ActorRequest struct {
	FirstName string `json:"first_name" validate:"required,min=1,max=255"`
	LastName  string `json:"last_name" validate:"required,min=1,max=255"`
}

type ActorUpdateRequest struct {
	FirstName *string `json:"first_name,omitempty" validate:"omitempty,min=1,max=255"`
	LastName  *string `json:"last_name,omitempty" validate:"omitempty,min=1,max=255"`
}

type GenreRequest struct {
	Name string `json:"name" validate:"required,min=1,max=255"`
}

type GenreUpdateRequest struct {
	Name *string `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
}

type TheatreHallRequest struct {
	Name       string `json:"name" validate:"required,min=1,max=255"`
	Rows       int    `json:"rows" validate:"required,min=1"`
	SeatsInRow int    `json:"seats_in_row" validate:"required,min=1"`
}

type TheatreHallUpdateRequest struct {
	Name       *string `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Rows       *int    `json:"rows,omitempty" validate:"omitempty,min=1"`
	SeatsInRow *int    `json:"seats_in_row,omitempty" validate:"omitempty,min=1"`
}
