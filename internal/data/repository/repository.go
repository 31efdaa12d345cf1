package repository

import (
	"errors"

	"airline-ticketing/pkg/database"
	"airline-ticketing/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ErrSeatTaken is returned by the ticket repository when the partial unique
// index on (flight_id, seat_number) rejects an insert. The index is the
// serialization point for concurrent purchases: first writer wins.
var ErrSeatTaken = errors.New("seat already taken")

type Repository struct {
	Account     AccountRepository
	User        UserRepository
	Session     SessionRepository
	Airport     AirportRepository
	Airplane    AirplaneRepository
	Flight      FlightRepository
	Class       ClassRepository
	BaggageType BaggageTypeRepository
	Passenger   PassengerRepository
	Payment     PaymentRepository
	Ticket      TicketRepository
	Baggage     BaggageRepository
	Draft       DraftRepository
	Audit       AuditRepository
	Admin       AdminRepository
}

func NewRepository(db database.PgxIface, rdb *redis.Client, config *utils.Config, log *zap.Logger) *Repository {
	return &Repository{
		Account:     NewAccountRepository(db, log),
		User:        NewUserRepository(db, log),
		Session:     NewSessionRepository(db, log),
		Airport:     NewAirportRepository(db, log),
		Airplane:    NewAirplaneRepository(db, log),
		Flight:      NewFlightRepository(db, log),
		Class:       NewClassRepository(db, log),
		BaggageType: NewBaggageTypeRepository(db, log),
		Passenger:   NewPassengerRepository(db, log),
		Payment:     NewPaymentRepository(db, log),
		Ticket:      NewTicketRepository(db, log),
		Baggage:     NewBaggageRepository(db, log),
		Draft:       NewDraftRepository(rdb, config.Purchase, log),
		Audit:       NewAuditRepository(db, log),
		Admin:       NewAdminRepository(db, log),
	}
}
