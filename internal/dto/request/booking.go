package request

type SelectClassRequest struct {
	ClassID       string  `json:"class_id" validate:"required,uuid"`
	BaggageTypeID *string `json:"baggage_type_id,omitempty" validate:"omitempty,uuid"`
}

type SelectSeatRequest struct {
	SeatNumber string `json:"seat_number" validate:"required,min=2,max=4"`
}
