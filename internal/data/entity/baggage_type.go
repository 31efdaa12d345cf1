package entity

type BaggageType struct {
	BaseSimple
	Name        string  `db:"type_name"`
	MaxWeightKg float64 `db:"max_weight_kg"`
	Description *string `db:"description"`
	BasePrice   float64 `db:"base_price"`
}
