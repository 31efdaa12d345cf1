package repository

import (
	"context"
	"fmt"

	"airline-ticketing/internal/data/entity"
	"airline-ticketing/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type AirportRepository interface {
	Create(ctx context.Context, airport *entity.Airport) error
	FindByCode(ctx context.Context, code string) (*entity.Airport, error)
	FindAll(ctx context.Context) ([]*entity.Airport, error)
}

type airportRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAirportRepository(db database.PgxIface, log *zap.Logger) AirportRepository {
	return &airportRepository{
		db:  db,
		log: log.With(zap.String("repository", "airport")),
	}
}

func (r *airportRepository) Create(ctx context.Context, airport *entity.Airport) error {
	query := `
		INSERT INTO airports (id, name, city, country)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO NOTHING
	`

	_, err := r.db.Exec(ctx, query,
		airport.Code,
		airport.Name,
		airport.City,
		airport.Country,
	)

	if err != nil {
		r.log.Error("Failed to create airport",
			zap.Error(err),
			zap.String("code", airport.Code),
		)
		return fmt.Errorf("create airport %s: %w", airport.Code, err)
	}

	return nil
}

func (r *airportRepository) FindByCode(ctx context.Context, code string) (*entity.Airport, error) {
	query := `SELECT id, name, city, country FROM airports WHERE id = $1`

	var airport entity.Airport
	err := r.db.QueryRow(ctx, query, code).Scan(
		&airport.Code,
		&airport.Name,
		&airport.City,
		&airport.Country,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find airport",
			zap.Error(err),
			zap.String("code", code),
		)
		return nil, fmt.Errorf("find airport %s: %w", code, err)
	}

	return &airport, nil
}

func (r *airportRepository) FindAll(ctx context.Context) ([]*entity.Airport, error) {
	query := `SELECT id, name, city, country FROM airports ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list airports", zap.Error(err))
		return nil, fmt.Errorf("list airports: %w", err)
	}
	defer rows.Close()

	var airports []*entity.Airport
	for rows.Next() {
		var airport entity.Airport
		err := rows.Scan(
			&airport.Code,
			&airport.Name,
			&airport.City,
			&airport.Country,
		)
		if err != nil {
			r.log.Error("Failed to scan airport row", zap.Error(err))
			return nil, fmt.Errorf("scan airport row: %w", err)
		}
		airports = append(airports, &airport)
	}

	return airports, nil
}
