package kafka

import (
	"time"
)

// TicketPurchasedEvent is published after a purchase commits. The notifier
// worker consumes it to send the confirmation email.
type TicketPurchasedEvent struct {
	TicketID      string    `json:"ticket_id"`
	Email         string    `json:"email"`
	FlightNumber  string    `json:"flight_number"`
	SeatNumber    string    `json:"seat_number"`
	ClassName     string    `json:"class_name"`
	TotalCost     float64   `json:"total_cost"`
	DepartureTime time.Time `json:"departure_time"`
	PurchasedAt   time.Time `json:"purchased_at"`
}
