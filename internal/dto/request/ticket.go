package request

type CreateTicketRequest struct {
	PerformanceID string `json:"performance_id" validate:"required,uuid4"`
	Row           int    `json:"row" validate:"required,min=1"`
	Seat          int    `json:"seat" validate:"required,min=1"`
}
