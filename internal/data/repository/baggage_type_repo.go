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

type BaggageTypeRepository interface {
	Create(ctx context.Context, baggageType *entity.BaggageType) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.BaggageType, error)
	FindAll(ctx context.Context) ([]*entity.BaggageType, error)
}

type baggageTypeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBaggageTypeRepository(db database.PgxIface, log *zap.Logger) BaggageTypeRepository {
	return &baggageTypeRepository{
		db:  db,
		log: log.With(zap.String("repository", "baggage_type")),
	}
}

func (r *baggageTypeRepository) Create(ctx context.Context, baggageType *entity.BaggageType) error {
	query := `
		INSERT INTO baggage_types (id, type_name, max_weight_kg, description, base_price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (type_name) DO NOTHING
	`

	_, err := r.db.Exec(ctx, query,
		baggageType.ID,
		baggageType.Name,
		baggageType.MaxWeightKg,
		baggageType.Description,
		baggageType.BasePrice,
		baggageType.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create baggage type",
			zap.Error(err),
			zap.String("type_name", baggageType.Name),
		)
		return fmt.Errorf("create baggage type %s: %w", baggageType.Name, err)
	}

	return nil
}

func (r *baggageTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BaggageType, error) {
	query := `
		SELECT id, type_name, max_weight_kg, description, base_price, created_at
		FROM baggage_types
		WHERE id = $1
	`

	var baggageType entity.BaggageType
	err := r.db.QueryRow(ctx, query, id).Scan(
		&baggageType.ID,
		&baggageType.Name,
		&baggageType.MaxWeightKg,
		&baggageType.Description,
		&baggageType.BasePrice,
		&baggageType.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find baggage type by ID",
			zap.Error(err),
			zap.String("baggage_type_id", id.String()),
		)
		return nil, fmt.Errorf("find baggage type by ID %s: %w", id.String(), err)
	}

	return &baggageType, nil
}

func (r *baggageTypeRepository) FindAll(ctx context.Context) ([]*entity.BaggageType, error) {
	query := `
		SELECT id, type_name, max_weight_kg, description, base_price, created_at
		FROM baggage_types
		ORDER BY base_price
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list baggage types", zap.Error(err))
		return nil, fmt.Errorf("list baggage types: %w", err)
	}
	defer rows.Close()

	var baggageTypes []*entity.BaggageType
	for rows.Next() {
		var baggageType entity.BaggageType
		err := rows.Scan(
			&baggageType.ID,
			&baggageType.Name,
			&baggageType.MaxWeightKg,
			&baggageType.Description,
			&baggageType.BasePrice,
			&baggageType.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan baggage type row", zap.Error(err))
			return nil, fmt.Errorf("scan baggage type row: %w", err)
		}
		baggageTypes = append(baggageTypes, &baggageType)
	}

	return baggageTypes, nil
}
