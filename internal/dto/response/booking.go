package response

import (
	"time"
)

// DraftResponse reports where the buyer is in the purchase flow. Step is the
// next step to complete ("class", "seat" or "confirm").
type DraftResponse struct {
	Step          string     `json:"step"`
	FlightID      string     `json:"flight_id,omitempty"`
	ClassID       string     `json:"class_id,omitempty"`
	BaggageTypeID *string    `json:"baggage_type_id,omitempty"`
	SeatNumber    string     `json:"seat_number,omitempty"`
	StartedAt     *time.Time `json:"started_at,omitempty"`
}

type PurchaseResponse struct {
	TicketID      string  `json:"ticket_id"`
	FlightNumber  string  `json:"flight_number"`
	SeatNumber    string  `json:"seat_number"`
	ClassName     string  `json:"class_name"`
	Price         float64 `json:"price"`
	Status        string  `json:"status"`
	BaggageTag    *string `json:"baggage_tag,omitempty"`
	PaymentID     string  `json:"payment_id"`
	TransactionID *string `json:"transaction_id,omitempty"`
}
