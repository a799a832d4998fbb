package entity

type TheatreHall struct {
	Base
	Name       string `db:"name"`
	Rows       int    `db:"rows"`
	SeatsInRow int    `db:"seats_in_row"`
}

// Capacity is the hall's physical seat count
func (h *TheatreHall) Capacity() int {
	return h.Rows * h.SeatsInRow
}
