package entity

import (
	"time"

	"github.com/google/uuid"
)

type FlightStatus string

const (
	FlightStatusScheduled FlightStatus = "SCHEDULED"
	FlightStatusDelayed   FlightStatus = "DELAYED"
	FlightStatusCancelled FlightStatus = "CANCELLED"
	FlightStatusCompleted FlightStatus = "COMPLETED"
)

type Flight struct {
	Base
	Number               string       `db:"number"`
	AirplaneID           uuid.UUID    `db:"airplane_id"`
	DepartureAirportCode string       `db:"departure_airport_id"`
	ArrivalAirportCode   string       `db:"arrival_airport_id"`
	DepartureTime        time.Time    `db:"departure_time"`
	ArrivalTime          time.Time    `db:"arrival_time"`
	ActualDepartureTime  *time.Time   `db:"actual_departure_time"`
	ActualArrivalTime    *time.Time   `db:"actual_arrival_time"`
	Status               FlightStatus `db:"status"`
}

// Bookable reports whether tickets can still be sold for the flight.
func (f *Flight) Bookable() bool {
	return f.Status == FlightStatusScheduled || f.Status == FlightStatusDelayed
}
