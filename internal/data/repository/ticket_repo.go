package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"airline-ticketing/internal/data/entity"
	"airline-ticketing/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// PurchaseRecord is everything the confirm step persists in one transaction.
// Baggage is nil when the buyer skipped the baggage step.
type PurchaseRecord struct {
	Passenger *entity.Passenger
	Payment   *entity.Payment
	Ticket    *entity.Ticket
	Baggage   *entity.Baggage
}

// TicketHistoryRow is a ticket joined with its flight, class and baggage for
// the purchase history listing.
type TicketHistoryRow struct {
	Ticket           entity.Ticket
	FlightNumber     string
	DepartureAirport string
	ArrivalAirport   string
	DepartureTime    time.Time
	ArrivalTime      time.Time
	ClassName        entity.ClassName
	BaggageTag       *string
	PaymentDate      time.Time
}

type TicketRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Ticket, error)
	ActiveSeatNumbers(ctx context.Context, flightID uuid.UUID) ([]string, error)
	FindHistoryByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*TicketHistoryRow, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
	CreatePurchase(ctx context.Context, record *PurchaseRecord) error
}

type ticketRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTicketRepository(db database.PgxIface, log *zap.Logger) TicketRepository {
	return &ticketRepository{
		db:  db,
		log: log.With(zap.String("repository", "ticket")),
	}
}

func (r *ticketRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Ticket, error) {
	query := `
		SELECT id, flight_id, class_id, seat_number, price, status, passenger_id, payment_id, created_at, updated_at
		FROM tickets
		WHERE id = $1
	`

	var ticket entity.Ticket
	err := r.db.QueryRow(ctx, query, id).Scan(
		&ticket.ID,
		&ticket.FlightID,
		&ticket.ClassID,
		&ticket.SeatNumber,
		&ticket.Price,
		&ticket.Status,
		&ticket.PassengerID,
		&ticket.PaymentID,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find ticket by ID",
			zap.Error(err),
			zap.String("ticket_id", id.String()),
		)
		return nil, fmt.Errorf("find ticket by ID %s: %w", id.String(), err)
	}

	return &ticket, nil
}

func (r *ticketRepository) ActiveSeatNumbers(ctx context.Context, flightID uuid.UUID) ([]string, error) {
	query := `
		SELECT seat_number
		FROM tickets
		WHERE flight_id = $1 AND status = ANY($2)
	`

	rows, err := r.db.Query(ctx, query, flightID, entity.ActiveTicketStatuses)
	if err != nil {
		r.log.Error("Failed to list active seats",
			zap.Error(err),
			zap.String("flight_id", flightID.String()),
		)
		return nil, fmt.Errorf("list active seats for flight %s: %w", flightID.String(), err)
	}
	defer rows.Close()

	var seats []string
	for rows.Next() {
		var seat string
		if err := rows.Scan(&seat); err != nil {
			r.log.Error("Failed to scan seat number", zap.Error(err))
			return nil, fmt.Errorf("scan seat number: %w", err)
		}
		seats = append(seats, seat)
	}

	return seats, nil
}

func (r *ticketRepository) FindHistoryByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*TicketHistoryRow, error) {
	query := `
		SELECT t.id, t.flight_id, t.class_id, t.seat_number, t.price, t.status,
		       t.passenger_id, t.payment_id, t.created_at, t.updated_at,
		       f.number, f.departure_airport_id, f.arrival_airport_id,
		       f.departure_time, f.arrival_time,
		       c.class_name, b.baggage_tag, p.payment_date
		FROM tickets t
		JOIN payments p ON p.id = t.payment_id
		JOIN flights f ON f.id = t.flight_id
		JOIN classes c ON c.id = t.class_id
		LEFT JOIN baggage b ON b.ticket_id = t.id
		WHERE p.user_id = $1
		ORDER BY p.payment_date DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		r.log.Error("Failed to list ticket history",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("list ticket history for user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var history []*TicketHistoryRow
	for rows.Next() {
		var row TicketHistoryRow
		err := rows.Scan(
			&row.Ticket.ID,
			&row.Ticket.FlightID,
			&row.Ticket.ClassID,
			&row.Ticket.SeatNumber,
			&row.Ticket.Price,
			&row.Ticket.Status,
			&row.Ticket.PassengerID,
			&row.Ticket.PaymentID,
			&row.Ticket.CreatedAt,
			&row.Ticket.UpdatedAt,
			&row.FlightNumber,
			&row.DepartureAirport,
			&row.ArrivalAirport,
			&row.DepartureTime,
			&row.ArrivalTime,
			&row.ClassName,
			&row.BaggageTag,
			&row.PaymentDate,
		)
		if err != nil {
			r.log.Error("Failed to scan ticket history row", zap.Error(err))
			return nil, fmt.Errorf("scan ticket history row: %w", err)
		}
		history = append(history, &row)
	}

	return history, nil
}

func (r *ticketRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM tickets t
		JOIN payments p ON p.id = t.payment_id
		WHERE p.user_id = $1
	`

	var count int64
	err := r.db.QueryRow(ctx, query, userID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count tickets by user",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count tickets by user %s: %w", userID.String(), err)
	}

	return count, nil
}

// CreatePurchase persists the passenger, payment, ticket and optional baggage
// in a single transaction. The passenger is upserted by passport number so
// repeat buyers reuse the same row. A unique violation on the ticket's
// (flight_id, seat_number) index surfaces as ErrSeatTaken; everything else
// rolls back as-is.
func (r *ticketRepository) CreatePurchase(ctx context.Context, record *PurchaseRecord) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin purchase transaction", zap.Error(err))
		return fmt.Errorf("begin purchase transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	passengerQuery := `
		INSERT INTO passengers (id, first_name, last_name, patronymic, passport_number, birthday, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (passport_number) DO UPDATE
		SET first_name = EXCLUDED.first_name,
		    last_name = EXCLUDED.last_name,
		    patronymic = EXCLUDED.patronymic,
		    birthday = EXCLUDED.birthday,
		    updated_at = EXCLUDED.updated_at
		RETURNING id
	`

	passenger := record.Passenger
	err = tx.QueryRow(ctx, passengerQuery,
		passenger.ID,
		passenger.FirstName,
		passenger.LastName,
		passenger.Patronymic,
		passenger.PassportNumber,
		passenger.Birthday,
		passenger.CreatedAt,
		passenger.UpdatedAt,
	).Scan(&passenger.ID)
	if err != nil {
		r.log.Error("Failed to upsert passenger",
			zap.Error(err),
			zap.String("passport", passenger.PassportNumber),
		)
		return fmt.Errorf("upsert passenger: %w", err)
	}
	record.Ticket.PassengerID = passenger.ID

	paymentQuery := `
		INSERT INTO payments (id, user_id, payment_date, total_cost, payment_method, status, transaction_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	payment := record.Payment
	_, err = tx.Exec(ctx, paymentQuery,
		payment.ID,
		payment.UserID,
		payment.PaymentDate,
		payment.TotalCost,
		payment.Method,
		payment.Status,
		payment.TransactionID,
		payment.CreatedAt,
		payment.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to insert payment",
			zap.Error(err),
			zap.String("payment_id", payment.ID.String()),
		)
		return fmt.Errorf("insert payment: %w", err)
	}

	ticketQuery := `
		INSERT INTO tickets (id, flight_id, class_id, seat_number, price, status, passenger_id, payment_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	ticket := record.Ticket
	_, err = tx.Exec(ctx, ticketQuery,
		ticket.ID,
		ticket.FlightID,
		ticket.ClassID,
		ticket.SeatNumber,
		ticket.Price,
		ticket.Status,
		ticket.PassengerID,
		ticket.PaymentID,
		ticket.CreatedAt,
		ticket.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			r.log.Warn("Seat already taken",
				zap.String("flight_id", ticket.FlightID.String()),
				zap.String("seat", ticket.SeatNumber),
			)
			return ErrSeatTaken
		}
		r.log.Error("Failed to insert ticket",
			zap.Error(err),
			zap.String("flight_id", ticket.FlightID.String()),
			zap.String("seat", ticket.SeatNumber),
		)
		return fmt.Errorf("insert ticket: %w", err)
	}

	if record.Baggage != nil {
		baggageQuery := `
			INSERT INTO baggage (id, ticket_id, baggage_type_id, weight_kg, baggage_tag, status, registered_at, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`

		baggage := record.Baggage
		_, err = tx.Exec(ctx, baggageQuery,
			baggage.ID,
			baggage.TicketID,
			baggage.BaggageTypeID,
			baggage.WeightKg,
			baggage.Tag,
			baggage.Status,
			baggage.RegisteredAt,
			baggage.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to insert baggage",
				zap.Error(err),
				zap.String("ticket_id", baggage.TicketID.String()),
			)
			return fmt.Errorf("insert baggage: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit purchase transaction", zap.Error(err))
		return fmt.Errorf("commit purchase transaction: %w", err)
	}

	return nil
}
