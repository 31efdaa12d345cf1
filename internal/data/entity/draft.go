package entity

import (
	"time"
)

// PurchaseDraft is the in-progress ticket purchase for one account. It lives
// in redis under the account key with a TTL, never in postgres. The flight id
// is pinned at step 1 so later steps can reject mismatched flights.
type PurchaseDraft struct {
	FlightID      string    `json:"flight_id"`
	ClassID       string    `json:"class_id"`
	BaggageTypeID *string   `json:"baggage_type_id,omitempty"`
	SeatNumber    string    `json:"seat_number,omitempty"`
	StartedAt     time.Time `json:"started_at"`
}

// ClassSelected reports whether step 1 has been completed.
func (d *PurchaseDraft) ClassSelected() bool {
	return d != nil && d.ClassID != ""
}

// SeatSelected reports whether step 2 has been completed.
func (d *PurchaseDraft) SeatSelected() bool {
	return d.ClassSelected() && d.SeatNumber != ""
}

// Step names surfaced to clients so they know where to resume.
const (
	PurchaseStepClass   = "class"
	PurchaseStepSeat    = "seat"
	PurchaseStepConfirm = "confirm"
)

// Step returns the next step the draft is waiting on.
func (d *PurchaseDraft) Step() string {
	switch {
	case !d.ClassSelected():
		return PurchaseStepClass
	case !d.SeatSelected():
		return PurchaseStepSeat
	default:
		return PurchaseStepConfirm
	}
}
