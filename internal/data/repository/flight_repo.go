package repository

import (
	"context"
	"fmt"

	"airline-ticketing/internal/data/entity"
	"airline-ticketing/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type FlightRepository interface {
	Create(ctx context.Context, flight *entity.Flight) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Flight, error)
	FindUpcoming(ctx context.Context, limit, offset int) ([]*entity.Flight, error)
	CountUpcoming(ctx context.Context) (int64, error)
}

type flightRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewFlightRepository(db database.PgxIface, log *zap.Logger) FlightRepository {
	return &flightRepository{
		db:  db,
		log: log.With(zap.String("repository", "flight")),
	}
}

const flightColumns = `id, number, airplane_id, departure_airport_id, arrival_airport_id,
		       departure_time, arrival_time, actual_departure_time, actual_arrival_time,
		       status, created_at, updated_at`

func (r *flightRepository) Create(ctx context.Context, flight *entity.Flight) error {
	query := `
		INSERT INTO flights (id, number, airplane_id, departure_airport_id, arrival_airport_id,
		                     departure_time, arrival_time, actual_departure_time, actual_arrival_time,
		                     status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.Exec(ctx, query,
		flight.ID,
		flight.Number,
		flight.AirplaneID,
		flight.DepartureAirportCode,
		flight.ArrivalAirportCode,
		flight.DepartureTime,
		flight.ArrivalTime,
		flight.ActualDepartureTime,
		flight.ActualArrivalTime,
		flight.Status,
		flight.CreatedAt,
		flight.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create flight",
			zap.Error(err),
			zap.String("number", flight.Number),
		)
		return fmt.Errorf("create flight %s: %w", flight.Number, err)
	}

	return nil
}

func (r *flightRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Flight, error) {
	query := `SELECT ` + flightColumns + ` FROM flights WHERE id = $1`

	var flight entity.Flight
	err := r.db.QueryRow(ctx, query, id).Scan(
		&flight.ID,
		&flight.Number,
		&flight.AirplaneID,
		&flight.DepartureAirportCode,
		&flight.ArrivalAirportCode,
		&flight.DepartureTime,
		&flight.ArrivalTime,
		&flight.ActualDepartureTime,
		&flight.ActualArrivalTime,
		&flight.Status,
		&flight.CreatedAt,
		&flight.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find flight by ID",
			zap.Error(err),
			zap.String("flight_id", id.String()),
		)
		return nil, fmt.Errorf("find flight by ID %s: %w", id.String(), err)
	}

	return &flight, nil
}

func (r *flightRepository) FindUpcoming(ctx context.Context, limit, offset int) ([]*entity.Flight, error) {
	query := `
		SELECT ` + flightColumns + `
		FROM flights
		WHERE departure_time > NOW()
		ORDER BY departure_time
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to list upcoming flights",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("list upcoming flights: %w", err)
	}
	defer rows.Close()

	var flights []*entity.Flight
	for rows.Next() {
		var flight entity.Flight
		err := rows.Scan(
			&flight.ID,
			&flight.Number,
			&flight.AirplaneID,
			&flight.DepartureAirportCode,
			&flight.ArrivalAirportCode,
			&flight.DepartureTime,
			&flight.ArrivalTime,
			&flight.ActualDepartureTime,
			&flight.ActualArrivalTime,
			&flight.Status,
			&flight.CreatedAt,
			&flight.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan flight row", zap.Error(err))
			return nil, fmt.Errorf("scan flight row: %w", err)
		}
		flights = append(flights, &flight)
	}

	return flights, nil
}

func (r *flightRepository) CountUpcoming(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM flights WHERE departure_time > NOW()`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count upcoming flights", zap.Error(err))
		return 0, fmt.Errorf("count upcoming flights: %w", err)
	}

	return count, nil
}
