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

type AirplaneRepository interface {
	Create(ctx context.Context, airplane *entity.Airplane) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Airplane, error)
	FindByRegistration(ctx context.Context, registration string) (*entity.Airplane, error)
}

type airplaneRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAirplaneRepository(db database.PgxIface, log *zap.Logger) AirplaneRepository {
	return &airplaneRepository{
		db:  db,
		log: log.With(zap.String("repository", "airplane")),
	}
}

func (r *airplaneRepository) Create(ctx context.Context, airplane *entity.Airplane) error {
	query := `
		INSERT INTO airplanes (id, model, registration_number, capacity, economy_capacity,
		                       business_capacity, first_capacity, rows, seats_row, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		airplane.ID,
		airplane.Model,
		airplane.RegistrationNumber,
		airplane.Capacity,
		airplane.EconomyCapacity,
		airplane.BusinessCapacity,
		airplane.FirstCapacity,
		airplane.Rows,
		airplane.SeatsRow,
		airplane.CreatedAt,
		airplane.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create airplane",
			zap.Error(err),
			zap.String("registration", airplane.RegistrationNumber),
		)
		return fmt.Errorf("create airplane %s: %w", airplane.RegistrationNumber, err)
	}

	return nil
}

func (r *airplaneRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Airplane, error) {
	query := `
		SELECT id, model, registration_number, capacity, economy_capacity,
		       business_capacity, first_capacity, rows, seats_row, created_at, updated_at
		FROM airplanes
		WHERE id = $1
	`

	return r.scanOne(ctx, query, id)
}

func (r *airplaneRepository) FindByRegistration(ctx context.Context, registration string) (*entity.Airplane, error) {
	query := `
		SELECT id, model, registration_number, capacity, economy_capacity,
		       business_capacity, first_capacity, rows, seats_row, created_at, updated_at
		FROM airplanes
		WHERE registration_number = $1
	`

	return r.scanOne(ctx, query, registration)
}

func (r *airplaneRepository) scanOne(ctx context.Context, query string, arg any) (*entity.Airplane, error) {
	var airplane entity.Airplane
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&airplane.ID,
		&airplane.Model,
		&airplane.RegistrationNumber,
		&airplane.Capacity,
		&airplane.EconomyCapacity,
		&airplane.BusinessCapacity,
		&airplane.FirstCapacity,
		&airplane.Rows,
		&airplane.SeatsRow,
		&airplane.CreatedAt,
		&airplane.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find airplane", zap.Error(err))
		return nil, fmt.Errorf("find airplane: %w", err)
	}

	return &airplane, nil
}
