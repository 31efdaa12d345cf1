package entity

type Airplane struct {
	Base
	Model              string `db:"model"`
	RegistrationNumber string `db:"registration_number"`
	Capacity           int    `db:"capacity"`
	EconomyCapacity    int    `db:"economy_capacity"`
	BusinessCapacity   int    `db:"business_capacity"`
	FirstCapacity      int    `db:"first_capacity"`
	Rows               int    `db:"rows"`
	SeatsRow           int    `db:"seats_row"`
}
