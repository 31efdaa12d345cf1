package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the profile attached to an account. Passport number and names are
// copied onto Passenger records at purchase time.
type User struct {
	Base
	AccountID      uuid.UUID  `db:"account_id"`
	FirstName      string     `db:"first_name"`
	LastName       string     `db:"last_name"`
	Patronymic     *string    `db:"patronymic"`
	Phone          *string    `db:"phone"`
	PassportNumber *string    `db:"passport_number"`
	Birthday       *time.Time `db:"birthday"`
}
