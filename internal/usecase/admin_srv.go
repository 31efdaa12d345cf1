package usecase

import (
	"context"
	"fmt"
	"time"

	"airline-ticketing/internal/data/entity"
	"airline-ticketing/internal/data/repository"
	"airline-ticketing/internal/dto/request"
	"airline-ticketing/internal/dto/response"
	"airline-ticketing/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Admin listings show the most recent rows; older data stays reachable
// through the per-record endpoints.
const adminListLimit = 100

type AdminService interface {
	GetTables(ctx context.Context) *response.AdminTablesResponse
	GetRecords(ctx context.Context, tableName string) (*response.AdminRecordsResponse, error)
	GetRecord(ctx context.Context, tableName, recordID string) (*response.AdminRecordResponse, error)
	CreateRecord(ctx context.Context, adminID, tableName string, req *request.AdminRecordRequest) (*response.AdminRecordResponse, error)
	UpdateRecord(ctx context.Context, adminID, tableName, recordID string, req *request.AdminRecordRequest) (*response.AdminRecordResponse, error)
	DeleteRecord(ctx context.Context, adminID, tableName, recordID string) error
	GetOptions(ctx context.Context, tableName string) (*response.AdminOptionsResponse, error)
}

type adminService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAdminService(repo *repository.Repository, log *zap.Logger) AdminService {
	return &adminService{
		repo: repo,
		log:  log.With(zap.String("service", "admin")),
	}
}

func (s *adminService) GetTables(ctx context.Context) *response.AdminTablesResponse {
	return &response.AdminTablesResponse{Tables: repository.AdminTables}
}

func (s *adminService) GetRecords(ctx context.Context, tableName string) (*response.AdminRecordsResponse, error) {
	table := repository.FindTable(tableName)
	if table == nil {
		return nil, NotFoundf("table %s", tableName)
	}

	records, err := s.repo.Admin.List(ctx, table, adminListLimit, 0)
	if err != nil {
		s.log.Error("Failed to list records", zap.Error(err), zap.String("table", tableName))
		return nil, fmt.Errorf("list records: %w", err)
	}

	total, err := s.repo.Admin.Count(ctx, table)
	if err != nil {
		s.log.Error("Failed to count records", zap.Error(err), zap.String("table", tableName))
		return nil, fmt.Errorf("count records: %w", err)
	}

	return &response.AdminRecordsResponse{
		Table:   tableName,
		Records: records,
		Total:   total,
	}, nil
}

func (s *adminService) GetRecord(ctx context.Context, tableName, recordID string) (*response.AdminRecordResponse, error) {
	table := repository.FindTable(tableName)
	if table == nil {
		return nil, NotFoundf("table %s", tableName)
	}

	record, err := s.repo.Admin.Get(ctx, table, recordID)
	if err != nil {
		s.log.Error("Failed to get record",
			zap.Error(err),
			zap.String("table", tableName),
			zap.String("record_id", recordID),
		)
		return nil, fmt.Errorf("get record: %w", err)
	}
	if record == nil {
		return nil, NotFoundf("%s record %s", tableName, recordID)
	}

	return &response.AdminRecordResponse{Table: tableName, Record: record}, nil
}

func (s *adminService) CreateRecord(ctx context.Context, adminID, tableName string, req *request.AdminRecordRequest) (*response.AdminRecordResponse, error) {
	table, err := s.writableTable(tableName)
	if err != nil {
		return nil, err
	}

	values, err := s.normalizeValues(table, req.Values, true)
	if err != nil {
		return nil, err
	}

	var id any
	switch table.IDKind {
	case repository.FieldString:
		if req.ID == "" {
			return nil, Validationf("id is required for table %s", tableName)
		}
		id = req.ID
	default:
		id = utils.GenerateUUID()
	}

	if err := s.repo.Admin.Insert(ctx, table, id, values); err != nil {
		s.log.Error("Failed to insert record", zap.Error(err), zap.String("table", tableName))
		return nil, fmt.Errorf("insert record: %w", err)
	}

	recordID := fmt.Sprintf("%v", id)
	s.audit(ctx, adminID, tableName, recordID, entity.AuditOperationCreate)

	s.log.Info("Admin record created",
		zap.String("table", tableName),
		zap.String("record_id", recordID),
		zap.String("admin_id", adminID),
	)

	record, err := s.repo.Admin.Get(ctx, table, recordID)
	if err != nil {
		return nil, fmt.Errorf("get created record: %w", err)
	}

	return &response.AdminRecordResponse{Table: tableName, Record: record}, nil
}

func (s *adminService) UpdateRecord(ctx context.Context, adminID, tableName, recordID string, req *request.AdminRecordRequest) (*response.AdminRecordResponse, error) {
	table, err := s.writableTable(tableName)
	if err != nil {
		return nil, err
	}

	values, err := s.normalizeValues(table, req.Values, false)
	if err != nil {
		return nil, err
	}

	found, err := s.repo.Admin.Update(ctx, table, recordID, values)
	if err != nil {
		s.log.Error("Failed to update record",
			zap.Error(err),
			zap.String("table", tableName),
			zap.String("record_id", recordID),
		)
		return nil, fmt.Errorf("update record: %w", err)
	}
	if !found {
		return nil, NotFoundf("%s record %s", tableName, recordID)
	}

	s.audit(ctx, adminID, tableName, recordID, entity.AuditOperationUpdate)

	s.log.Info("Admin record updated",
		zap.String("table", tableName),
		zap.String("record_id", recordID),
		zap.String("admin_id", adminID),
	)

	record, err := s.repo.Admin.Get(ctx, table, recordID)
	if err != nil {
		return nil, fmt.Errorf("get updated record: %w", err)
	}

	return &response.AdminRecordResponse{Table: tableName, Record: record}, nil
}

func (s *adminService) DeleteRecord(ctx context.Context, adminID, tableName, recordID string) error {
	table, err := s.writableTable(tableName)
	if err != nil {
		return err
	}

	found, err := s.repo.Admin.Delete(ctx, table, recordID)
	if err != nil {
		s.log.Error("Failed to delete record",
			zap.Error(err),
			zap.String("table", tableName),
			zap.String("record_id", recordID),
		)
		return fmt.Errorf("delete record: %w", err)
	}
	if !found {
		return NotFoundf("%s record %s", tableName, recordID)
	}

	s.audit(ctx, adminID, tableName, recordID, entity.AuditOperationDelete)

	s.log.Info("Admin record deleted",
		zap.String("table", tableName),
		zap.String("record_id", recordID),
		zap.String("admin_id", adminID),
	)

	return nil
}

func (s *adminService) GetOptions(ctx context.Context, tableName string) (*response.AdminOptionsResponse, error) {
	table := repository.FindTable(tableName)
	if table == nil {
		return nil, NotFoundf("table %s", tableName)
	}

	options := make(map[string][]repository.Option)
	for _, field := range table.Fields {
		if field.Ref == "" {
			continue
		}
		refTable := repository.FindTable(field.Ref)
		if refTable == nil {
			continue
		}

		refOptions, err := s.repo.Admin.Options(ctx, refTable)
		if err != nil {
			s.log.Error("Failed to load options",
				zap.Error(err),
				zap.String("table", tableName),
				zap.String("ref", field.Ref),
			)
			return nil, fmt.Errorf("load options for %s: %w", field.Column, err)
		}
		options[field.Column] = refOptions
	}

	return &response.AdminOptionsResponse{Table: tableName, Options: options}, nil
}

// ==================== HELPER METHODS ====================

func (s *adminService) writableTable(tableName string) (*repository.TableDescriptor, error) {
	table := repository.FindTable(tableName)
	if table == nil {
		return nil, NotFoundf("table %s", tableName)
	}
	if table.ReadOnly {
		return nil, Validationf("table %s is read-only", tableName)
	}
	return table, nil
}

// normalizeValues validates the payload against the table descriptor and
// coerces each value to what the driver expects. On create every required
// column must be present; on update only provided columns change.
func (s *adminService) normalizeValues(table *repository.TableDescriptor, raw map[string]any, create bool) (map[string]any, error) {
	values := make(map[string]any, len(raw))

	for column, value := range raw {
		field := table.Field(column)
		if field == nil {
			return nil, Validationf("unknown column %s for table %s", column, table.Name)
		}

		if value == nil {
			if field.Required {
				return nil, Validationf("column %s cannot be null", column)
			}
			values[column] = nil
			continue
		}

		normalized, err := normalizeFieldValue(field, value)
		if err != nil {
			return nil, err
		}
		values[column] = normalized
	}

	if create {
		for _, field := range table.Fields {
			if field.Required {
				if _, ok := values[field.Column]; !ok {
					return nil, Validationf("column %s is required", field.Column)
				}
			}
		}
	}

	return values, nil
}

func normalizeFieldValue(field *repository.FieldDescriptor, value any) (any, error) {
	switch field.Kind {
	case repository.FieldString:
		str, ok := value.(string)
		if !ok {
			return nil, Validationf("column %s must be a string", field.Column)
		}
		return str, nil

	case repository.FieldPassword:
		str, ok := value.(string)
		if !ok || len(str) < 6 {
			return nil, Validationf("column %s must be a password of at least 6 characters", field.Column)
		}
		hash, err := utils.HashPassword(str)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		return hash, nil

	case repository.FieldInt:
		num, ok := value.(float64)
		if !ok || num != float64(int64(num)) {
			return nil, Validationf("column %s must be an integer", field.Column)
		}
		return int64(num), nil

	case repository.FieldFloat:
		num, ok := value.(float64)
		if !ok {
			return nil, Validationf("column %s must be a number", field.Column)
		}
		return num, nil

	case repository.FieldBool:
		b, ok := value.(bool)
		if !ok {
			return nil, Validationf("column %s must be a boolean", field.Column)
		}
		return b, nil

	case repository.FieldTime:
		str, ok := value.(string)
		if !ok {
			return nil, Validationf("column %s must be a timestamp string", field.Column)
		}
		for _, layout := range []string{time.RFC3339, "2006-01-02"} {
			if t, err := time.Parse(layout, str); err == nil {
				return t, nil
			}
		}
		return nil, Validationf("column %s has an invalid timestamp %s", field.Column, str)

	case repository.FieldUUID:
		str, ok := value.(string)
		if !ok {
			return nil, Validationf("column %s must be a UUID string", field.Column)
		}
		id, err := uuid.Parse(str)
		if err != nil {
			return nil, Validationf("column %s has an invalid UUID %s", field.Column, str)
		}
		return id, nil

	default:
		return nil, Validationf("column %s has an unsupported kind", field.Column)
	}
}

func (s *adminService) audit(ctx context.Context, adminID, tableName, recordID string, operation entity.AuditOperation) {
	changedBy, err := uuid.Parse(adminID)
	if err != nil {
		s.log.Warn("Invalid admin ID for audit log", zap.String("admin_id", adminID))
		return
	}

	auditLog := &entity.AuditLog{
		BaseSimple: entity.BaseSimple{
			ID:        utils.GenerateUUID(),
			CreatedAt: time.Now(),
		},
		TableName: tableName,
		RecordID:  recordID,
		Operation: operation,
		ChangedBy: changedBy,
	}

	if err := s.repo.Audit.Create(ctx, auditLog); err != nil {
		s.log.Warn("Failed to write audit log",
			zap.Error(err),
			zap.String("table", tableName),
			zap.String("record_id", recordID),
		)
		// The mutation itself already succeeded.
	}
}
