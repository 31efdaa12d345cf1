package response

import (
	"time"

	"airline-ticketing/internal/data/entity"
)

type AirportResponse struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`
}

func AirportToResponse(airport *entity.Airport) AirportResponse {
	return AirportResponse{
		Code:    airport.Code,
		Name:    airport.Name,
		City:    airport.City,
		Country: airport.Country,
	}
}

type FlightResponse struct {
	ID                  string              `json:"id"`
	Number              string              `json:"number"`
	AirplaneModel       string              `json:"airplane_model,omitempty"`
	Departure           AirportResponse     `json:"departure"`
	Arrival             AirportResponse     `json:"arrival"`
	DepartureTime       time.Time           `json:"departure_time"`
	ArrivalTime         time.Time           `json:"arrival_time"`
	ActualDepartureTime *time.Time          `json:"actual_departure_time,omitempty"`
	ActualArrivalTime   *time.Time          `json:"actual_arrival_time,omitempty"`
	Status              entity.FlightStatus `json:"status"`
}

type ClassResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	BaseFare float64 `json:"base_fare"`
}

type BaggageTypeResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	MaxWeightKg float64 `json:"max_weight_kg"`
	Description *string `json:"description,omitempty"`
	BasePrice   float64 `json:"base_price"`
}

func BaggageTypeToResponse(baggageType *entity.BaggageType) BaggageTypeResponse {
	return BaggageTypeResponse{
		ID:          baggageType.ID.String(),
		Name:        baggageType.Name,
		MaxWeightKg: baggageType.MaxWeightKg,
		Description: baggageType.Description,
		BasePrice:   baggageType.BasePrice,
	}
}

// Seat is one selectable position in the seat map.
type Seat struct {
	Code   string `json:"code"`
	Booked bool   `json:"booked"`
}

// SeatRow splits a cabin row into the two groups rendered on each side of
// the aisle.
type SeatRow struct {
	Row   int    `json:"row"`
	Left  []Seat `json:"left"`
	Right []Seat `json:"right"`
}

type SeatMapResponse struct {
	FlightID string    `json:"flight_id"`
	Rows     []SeatRow `json:"rows"`
}
