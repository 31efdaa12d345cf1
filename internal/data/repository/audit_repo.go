package repository

import (
	"context"
	"fmt"

	"airline-ticketing/internal/data/entity"
	"airline-ticketing/pkg/database"

	"go.uber.org/zap"
)

type AuditRepository interface {
	Create(ctx context.Context, log *entity.AuditLog) error
}

type auditRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAuditRepository(db database.PgxIface, log *zap.Logger) AuditRepository {
	return &auditRepository{
		db:  db,
		log: log.With(zap.String("repository", "audit")),
	}
}

func (r *auditRepository) Create(ctx context.Context, auditLog *entity.AuditLog) error {
	query := `
		INSERT INTO audit_logs (id, table_name, record_id, operation, changed_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		auditLog.ID,
		auditLog.TableName,
		auditLog.RecordID,
		auditLog.Operation,
		auditLog.ChangedBy,
		auditLog.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create audit log",
			zap.Error(err),
			zap.String("table", auditLog.TableName),
			zap.String("operation", string(auditLog.Operation)),
		)
		return fmt.Errorf("create audit log for %s: %w", auditLog.TableName, err)
	}

	return nil
}
