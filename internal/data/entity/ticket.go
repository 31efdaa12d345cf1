package entity

import (
	"github.com/google/uuid"
)

type TicketStatus string

const (
	TicketStatusBooked    TicketStatus = "BOOKED"
	TicketStatusPaid      TicketStatus = "PAID"
	TicketStatusCheckedIn TicketStatus = "CHECKED_IN"
	TicketStatusCancelled TicketStatus = "CANCELLED"
)

// ActiveTicketStatuses are the statuses that count toward seat occupancy.
var ActiveTicketStatuses = []TicketStatus{
	TicketStatusBooked,
	TicketStatusPaid,
	TicketStatusCheckedIn,
}

type Ticket struct {
	Base
	FlightID    uuid.UUID    `db:"flight_id"`
	ClassID     uuid.UUID    `db:"class_id"`
	SeatNumber  string       `db:"seat_number"`
	Price       float64      `db:"price"`
	Status      TicketStatus `db:"status"`
	PassengerID uuid.UUID    `db:"passenger_id"`
	PaymentID   uuid.UUID    `db:"payment_id"`
}
