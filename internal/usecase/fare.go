package usecase

import (
	"airline-ticketing/internal/data/entity"
)

// Base fares per service class.
const (
	FareEconomy  = 5000.0
	FareBusiness = 15000.0
	FareFirst    = 30000.0
)

// BaseFare returns the class fare. Unknown class names price as economy so
// the function stays total; the commit path validates class existence before
// it gets here.
func BaseFare(class entity.ClassName) float64 {
	switch class {
	case entity.ClassBusiness:
		return FareBusiness
	case entity.ClassFirst:
		return FareFirst
	default:
		return FareEconomy
	}
}

// CalculateFare is the full ticket price: class fare plus the base price of
// the selected baggage option (zero when no baggage was added).
func CalculateFare(class entity.ClassName, baggagePrice float64) float64 {
	return BaseFare(class) + baggagePrice
}
