package entity

import (
	"time"
)

// Passenger is deduplicated by passport number. Name and birthday are
// overwritten from the purchasing user's profile on every purchase.
type Passenger struct {
	Base
	FirstName      string     `db:"first_name"`
	LastName       string     `db:"last_name"`
	Patronymic     *string    `db:"patronymic"`
	PassportNumber string     `db:"passport_number"`
	Birthday       *time.Time `db:"birthday"`
}
