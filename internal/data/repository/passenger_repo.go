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

type PassengerRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Passenger, error)
	FindByPassport(ctx context.Context, passportNumber string) (*entity.Passenger, error)
}

type passengerRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPassengerRepository(db database.PgxIface, log *zap.Logger) PassengerRepository {
	return &passengerRepository{
		db:  db,
		log: log.With(zap.String("repository", "passenger")),
	}
}

func (r *passengerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Passenger, error) {
	query := `
		SELECT id, first_name, last_name, patronymic, passport_number, birthday, created_at, updated_at
		FROM passengers
		WHERE id = $1
	`

	return r.scanOne(ctx, query, id)
}

func (r *passengerRepository) FindByPassport(ctx context.Context, passportNumber string) (*entity.Passenger, error) {
	query := `
		SELECT id, first_name, last_name, patronymic, passport_number, birthday, created_at, updated_at
		FROM passengers
		WHERE passport_number = $1
	`

	return r.scanOne(ctx, query, passportNumber)
}

func (r *passengerRepository) scanOne(ctx context.Context, query string, arg any) (*entity.Passenger, error) {
	var passenger entity.Passenger
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&passenger.ID,
		&passenger.FirstName,
		&passenger.LastName,
		&passenger.Patronymic,
		&passenger.PassportNumber,
		&passenger.Birthday,
		&passenger.CreatedAt,
		&passenger.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find passenger", zap.Error(err))
		return nil, fmt.Errorf("find passenger: %w", err)
	}

	return &passenger, nil
}
