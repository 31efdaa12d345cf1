package entity

type ClassName string

const (
	ClassEconomy  ClassName = "ECONOMY"
	ClassBusiness ClassName = "BUSINESS"
	ClassFirst    ClassName = "FIRST"
)

// ServiceClass drives the base fare of a ticket.
type ServiceClass struct {
	BaseSimple
	Name ClassName `db:"class_name"`
}
