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

type ClassRepository interface {
	Create(ctx context.Context, class *entity.ServiceClass) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ServiceClass, error)
	FindByName(ctx context.Context, name entity.ClassName) (*entity.ServiceClass, error)
	FindAll(ctx context.Context) ([]*entity.ServiceClass, error)
}

type classRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewClassRepository(db database.PgxIface, log *zap.Logger) ClassRepository {
	return &classRepository{
		db:  db,
		log: log.With(zap.String("repository", "class")),
	}
}

func (r *classRepository) Create(ctx context.Context, class *entity.ServiceClass) error {
	query := `
		INSERT INTO classes (id, class_name, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (class_name) DO NOTHING
	`

	_, err := r.db.Exec(ctx, query, class.ID, class.Name, class.CreatedAt)
	if err != nil {
		r.log.Error("Failed to create service class",
			zap.Error(err),
			zap.String("class_name", string(class.Name)),
		)
		return fmt.Errorf("create service class %s: %w", class.Name, err)
	}

	return nil
}

func (r *classRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ServiceClass, error) {
	query := `SELECT id, class_name, created_at FROM classes WHERE id = $1`

	var class entity.ServiceClass
	err := r.db.QueryRow(ctx, query, id).Scan(&class.ID, &class.Name, &class.CreatedAt)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find service class by ID",
			zap.Error(err),
			zap.String("class_id", id.String()),
		)
		return nil, fmt.Errorf("find service class by ID %s: %w", id.String(), err)
	}

	return &class, nil
}

func (r *classRepository) FindByName(ctx context.Context, name entity.ClassName) (*entity.ServiceClass, error) {
	query := `SELECT id, class_name, created_at FROM classes WHERE class_name = $1`

	var class entity.ServiceClass
	err := r.db.QueryRow(ctx, query, name).Scan(&class.ID, &class.Name, &class.CreatedAt)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find service class by name",
			zap.Error(err),
			zap.String("class_name", string(name)),
		)
		return nil, fmt.Errorf("find service class by name %s: %w", name, err)
	}

	return &class, nil
}

func (r *classRepository) FindAll(ctx context.Context) ([]*entity.ServiceClass, error) {
	query := `SELECT id, class_name, created_at FROM classes ORDER BY class_name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list service classes", zap.Error(err))
		return nil, fmt.Errorf("list service classes: %w", err)
	}
	defer rows.Close()

	var classes []*entity.ServiceClass
	for rows.Next() {
		var class entity.ServiceClass
		if err := rows.Scan(&class.ID, &class.Name, &class.CreatedAt); err != nil {
			r.log.Error("Failed to scan service class row", zap.Error(err))
			return nil, fmt.Errorf("scan service class row: %w", err)
		}
		classes = append(classes, &class)
	}

	return classes, nil
}
