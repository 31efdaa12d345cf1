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

type BaggageRepository interface {
	FindByTicketID(ctx context.Context, ticketID uuid.UUID) (*entity.Baggage, error)
	TagExists(ctx context.Context, tag string) (bool, error)
}

type baggageRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBaggageRepository(db database.PgxIface, log *zap.Logger) BaggageRepository {
	return &baggageRepository{
		db:  db,
		log: log.With(zap.String("repository", "baggage")),
	}
}

func (r *baggageRepository) FindByTicketID(ctx context.Context, ticketID uuid.UUID) (*entity.Baggage, error) {
	query := `
		SELECT id, ticket_id, baggage_type_id, weight_kg, baggage_tag, status, registered_at, created_at
		FROM baggage
		WHERE ticket_id = $1
	`

	var baggage entity.Baggage
	err := r.db.QueryRow(ctx, query, ticketID).Scan(
		&baggage.ID,
		&baggage.TicketID,
		&baggage.BaggageTypeID,
		&baggage.WeightKg,
		&baggage.Tag,
		&baggage.Status,
		&baggage.RegisteredAt,
		&baggage.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find baggage by ticket",
			zap.Error(err),
			zap.String("ticket_id", ticketID.String()),
		)
		return nil, fmt.Errorf("find baggage by ticket %s: %w", ticketID.String(), err)
	}

	return &baggage, nil
}

func (r *baggageRepository) TagExists(ctx context.Context, tag string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM baggage WHERE baggage_tag = $1)`

	var exists bool
	err := r.db.QueryRow(ctx, query, tag).Scan(&exists)
	if err != nil {
		r.log.Error("Failed to check baggage tag",
			zap.Error(err),
			zap.String("tag", tag),
		)
		return false, fmt.Errorf("check baggage tag %s: %w", tag, err)
	}

	return exists, nil
}
