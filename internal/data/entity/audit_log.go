package entity

import (
	"github.com/google/uuid"
)

type AuditOperation string

const (
	AuditOperationCreate AuditOperation = "CREATE"
	AuditOperationUpdate AuditOperation = "UPDATE"
	AuditOperationDelete AuditOperation = "DELETE"
)

// AuditLog records admin panel mutations. Rows are append-only.
type AuditLog struct {
	BaseSimple
	TableName string         `db:"table_name"`
	RecordID  string         `db:"record_id"`
	Operation AuditOperation `db:"operation"`
	ChangedBy uuid.UUID      `db:"changed_by"`
}
