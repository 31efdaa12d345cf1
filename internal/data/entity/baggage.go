package entity

import (
	"time"

	"github.com/google/uuid"
)

type BaggageStatus string

const (
	BaggageStatusRegistered BaggageStatus = "REGISTERED"
	BaggageStatusLoaded     BaggageStatus = "LOADED"
	BaggageStatusDelivered  BaggageStatus = "DELIVERED"
	BaggageStatusLost       BaggageStatus = "LOST"
)

type Baggage struct {
	BaseSimple
	TicketID      uuid.UUID     `db:"ticket_id"`
	BaggageTypeID uuid.UUID     `db:"baggage_type_id"`
	WeightKg      float64       `db:"weight_kg"`
	Tag           string        `db:"baggage_tag"`
	Status        BaggageStatus `db:"status"`
	RegisteredAt  time.Time     `db:"registered_at"`
}
