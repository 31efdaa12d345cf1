package entity

// Airport is keyed by its IATA code (e.g. "SVO"), not a UUID.
type Airport struct {
	Code    string `db:"id"`
	Name    string `db:"name"`
	City    string `db:"city"`
	Country string `db:"country"`
}
