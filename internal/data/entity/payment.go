package entity

import (
	"time"

	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
)

type Payment struct {
	Base
	UserID        uuid.UUID     `db:"user_id"`
	PaymentDate   time.Time     `db:"payment_date"`
	TotalCost     float64       `db:"total_cost"`
	Method        string        `db:"payment_method"`
	Status        PaymentStatus `db:"status"`
	TransactionID *string       `db:"transaction_id"`
}
