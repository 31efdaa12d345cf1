package repository

import (
	"context"
	"testing"
	"time"

	"airline-ticketing/internal/data/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func purchaseRecord(withBaggage bool) *PurchaseRecord {
	now := time.Now()
	record := &PurchaseRecord{
		Passenger: &entity.Passenger{
			Base:           entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
			FirstName:      "Ivan",
			LastName:       "Petrov",
			PassportNumber: "4510123456",
		},
		Payment: &entity.Payment{
			Base:        entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
			UserID:      uuid.New(),
			PaymentDate: now,
			TotalCost:   7000,
			Method:      "CARD",
			Status:      entity.PaymentStatusCompleted,
		},
		Ticket: &entity.Ticket{
			Base:       entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
			FlightID:   uuid.New(),
			ClassID:    uuid.New(),
			SeatNumber: "12A",
			Price:      7000,
			Status:     entity.TicketStatusPaid,
		},
	}
	record.Ticket.PaymentID = record.Payment.ID

	if withBaggage {
		record.Baggage = &entity.Baggage{
			BaseSimple:    entity.BaseSimple{ID: uuid.New(), CreatedAt: now},
			TicketID:      record.Ticket.ID,
			BaggageTypeID: uuid.New(),
			WeightKg:      20,
			Tag:           "AB12CD34",
			Status:        entity.BaggageStatusRegistered,
			RegisteredAt:  now,
		}
	}

	return record
}

func TestCreatePurchaseCommitsAllRows(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTicketRepository(mock, zap.NewNop())
	record := purchaseRecord(true)
	existingPassengerID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO passengers").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(existingPassengerID))
	mock.ExpectExec("INSERT INTO payments").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec("INSERT INTO tickets").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec("INSERT INTO baggage").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()
	mock.ExpectRollback()

	require.NoError(t, repo.CreatePurchase(context.Background(), record))

	// The upsert returned an existing passenger, the ticket has to point at it.
	assert.Equal(t, existingPassengerID, record.Passenger.ID)
	assert.Equal(t, existingPassengerID, record.Ticket.PassengerID)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePurchaseSkipsBaggageWhenAbsent(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTicketRepository(mock, zap.NewNop())
	record := purchaseRecord(false)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO passengers").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(record.Passenger.ID))
	mock.ExpectExec("INSERT INTO payments").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec("INSERT INTO tickets").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()
	mock.ExpectRollback()

	require.NoError(t, repo.CreatePurchase(context.Background(), record))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePurchaseSeatTaken(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTicketRepository(mock, zap.NewNop())
	record := purchaseRecord(false)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO passengers").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(record.Passenger.ID))
	mock.ExpectExec("INSERT INTO payments").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec("INSERT INTO tickets").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "uq_tickets_flight_seat_active"})
	mock.ExpectRollback()

	err = repo.CreatePurchase(context.Background(), record)

	assert.ErrorIs(t, err, ErrSeatTaken)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePurchaseRollsBackOnPaymentFailure(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTicketRepository(mock, zap.NewNop())
	record := purchaseRecord(false)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO passengers").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(record.Passenger.ID))
	mock.ExpectExec("INSERT INTO payments").
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err = repo.CreatePurchase(context.Background(), record)

	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrSeatTaken)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestActiveSeatNumbers(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTicketRepository(mock, zap.NewNop())
	flightID := uuid.New()

	mock.ExpectQuery("SELECT seat_number").
		WithArgs(flightID, entity.ActiveTicketStatuses).
		WillReturnRows(pgxmock.NewRows([]string{"seat_number"}).AddRow("12A").AddRow("1C"))

	seats, err := repo.ActiveSeatNumbers(context.Background(), flightID)

	require.NoError(t, err)
	assert.Equal(t, []string{"12A", "1C"}, seats)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindHistoryByUserID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTicketRepository(mock, zap.NewNop())
	userID := uuid.New()
	now := time.Now()
	tag := "AB12CD34"

	columns := []string{
		"id", "flight_id", "class_id", "seat_number", "price", "status",
		"passenger_id", "payment_id", "created_at", "updated_at",
		"number", "departure_airport_id", "arrival_airport_id",
		"departure_time", "arrival_time",
		"class_name", "baggage_tag", "payment_date",
	}
	rows := pgxmock.NewRows(columns).
		AddRow(uuid.New(), uuid.New(), uuid.New(), "12A", 7000.0, entity.TicketStatusPaid,
			uuid.New(), uuid.New(), now, now,
			"GQ-1234", "SVO", "LED", now.Add(48*time.Hour), now.Add(50*time.Hour),
			entity.ClassEconomy, &tag, now).
		AddRow(uuid.New(), uuid.New(), uuid.New(), "3C", 5000.0, entity.TicketStatusPaid,
			uuid.New(), uuid.New(), now, now,
			"GQ-5678", "LED", "SVO", now.Add(72*time.Hour), now.Add(74*time.Hour),
			entity.ClassEconomy, nil, now.Add(-time.Hour))

	mock.ExpectQuery("FROM tickets t").
		WithArgs(userID, 20, 0).
		WillReturnRows(rows)

	history, err := repo.FindHistoryByUserID(context.Background(), userID, 20, 0)

	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "GQ-1234", history[0].FlightNumber)
	require.NotNil(t, history[0].BaggageTag)
	assert.Equal(t, "AB12CD34", *history[0].BaggageTag)
	assert.Nil(t, history[1].BaggageTag)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindTicketByIDNotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTicketRepository(mock, zap.NewNop())
	id := uuid.New()

	mock.ExpectQuery("FROM tickets").
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows([]string{"id"}))

	ticket, err := repo.FindByID(context.Background(), id)

	require.NoError(t, err)
	assert.Nil(t, ticket)
}
