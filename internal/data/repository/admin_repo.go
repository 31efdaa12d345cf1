package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"airline-ticketing/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AdminRepository runs descriptor-driven CRUD for the admin panel. Queries
// are built from TableDescriptor entries, never from request input, so the
// identifiers interpolated into SQL are always ours.
type AdminRepository interface {
	List(ctx context.Context, table *TableDescriptor, limit, offset int) ([]map[string]any, error)
	Count(ctx context.Context, table *TableDescriptor) (int64, error)
	Get(ctx context.Context, table *TableDescriptor, id string) (map[string]any, error)
	Insert(ctx context.Context, table *TableDescriptor, id any, values map[string]any) error
	Update(ctx context.Context, table *TableDescriptor, id string, values map[string]any) (bool, error)
	Delete(ctx context.Context, table *TableDescriptor, id string) (bool, error)
	Options(ctx context.Context, table *TableDescriptor) ([]Option, error)
}

// Option is one selectable row for a foreign-key dropdown.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type adminRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAdminRepository(db database.PgxIface, log *zap.Logger) AdminRepository {
	return &adminRepository{
		db:  db,
		log: log.With(zap.String("repository", "admin")),
	}
}

// selectColumns returns the columns shown for a table. Password columns are
// stored hashed and never read back out through the panel.
func selectColumns(table *TableDescriptor) []string {
	columns := []string{"id"}
	for _, field := range table.Fields {
		if field.Kind == FieldPassword {
			continue
		}
		columns = append(columns, field.Column)
	}
	columns = append(columns, "created_at")
	if table.HasUpdatedAt {
		columns = append(columns, "updated_at")
	}
	return columns
}

// normalizeValue converts pgx scan output into JSON-friendly values.
func normalizeValue(v any) any {
	switch val := v.(type) {
	case [16]byte:
		return uuid.UUID(val).String()
	case time.Time:
		return val.Format(time.RFC3339)
	default:
		return v
	}
}

func (r *adminRepository) List(ctx context.Context, table *TableDescriptor, limit, offset int) ([]map[string]any, error) {
	columns := selectColumns(table)
	query := fmt.Sprintf(
		`SELECT %s FROM %s ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		strings.Join(columns, ", "), table.Name,
	)

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to list table rows",
			zap.Error(err),
			zap.String("table", table.Name),
		)
		return nil, fmt.Errorf("list %s rows: %w", table.Name, err)
	}
	defer rows.Close()

	var records []map[string]any
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			r.log.Error("Failed to read table row",
				zap.Error(err),
				zap.String("table", table.Name),
			)
			return nil, fmt.Errorf("read %s row: %w", table.Name, err)
		}

		record := make(map[string]any, len(columns))
		for i, column := range columns {
			record[column] = normalizeValue(values[i])
		}
		records = append(records, record)
	}

	return records, nil
}

func (r *adminRepository) Count(ctx context.Context, table *TableDescriptor) (int64, error) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, table.Name)

	var count int64
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		r.log.Error("Failed to count table rows",
			zap.Error(err),
			zap.String("table", table.Name),
		)
		return 0, fmt.Errorf("count %s rows: %w", table.Name, err)
	}

	return count, nil
}

func (r *adminRepository) Get(ctx context.Context, table *TableDescriptor, id string) (map[string]any, error) {
	columns := selectColumns(table)
	query := fmt.Sprintf(
		`SELECT %s FROM %s WHERE id = $1`,
		strings.Join(columns, ", "), table.Name,
	)

	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to get table row",
			zap.Error(err),
			zap.String("table", table.Name),
			zap.String("record_id", id),
		)
		return nil, fmt.Errorf("get %s row %s: %w", table.Name, id, err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, nil
	}

	values, err := rows.Values()
	if err != nil {
		r.log.Error("Failed to read table row",
			zap.Error(err),
			zap.String("table", table.Name),
		)
		return nil, fmt.Errorf("read %s row: %w", table.Name, err)
	}

	record := make(map[string]any, len(columns))
	for i, column := range columns {
		record[column] = normalizeValue(values[i])
	}

	return record, nil
}

func (r *adminRepository) Insert(ctx context.Context, table *TableDescriptor, id any, values map[string]any) error {
	columns := []string{"id"}
	args := []any{id}
	for _, field := range table.Fields {
		value, ok := values[field.Column]
		if !ok {
			continue
		}
		columns = append(columns, field.Column)
		args = append(args, value)
	}

	placeholders := make([]string, len(columns))
	for i := range columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	columns = append(columns, "created_at")
	placeholders = append(placeholders, "NOW()")
	if table.HasUpdatedAt {
		columns = append(columns, "updated_at")
		placeholders = append(placeholders, "NOW()")
	}

	query := fmt.Sprintf(
		`INSERT INTO %s (%s) VALUES (%s)`,
		table.Name, strings.Join(columns, ", "), strings.Join(placeholders, ", "),
	)

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		r.log.Error("Failed to insert table row",
			zap.Error(err),
			zap.String("table", table.Name),
		)
		return fmt.Errorf("insert %s row: %w", table.Name, err)
	}

	return nil
}

func (r *adminRepository) Update(ctx context.Context, table *TableDescriptor, id string, values map[string]any) (bool, error) {
	var assignments []string
	var args []any
	for _, field := range table.Fields {
		value, ok := values[field.Column]
		if !ok {
			continue
		}
		args = append(args, value)
		assignments = append(assignments, fmt.Sprintf("%s = $%d", field.Column, len(args)))
	}
	if len(assignments) == 0 {
		return true, nil
	}
	if table.HasUpdatedAt {
		assignments = append(assignments, "updated_at = NOW()")
	}

	args = append(args, id)
	query := fmt.Sprintf(
		`UPDATE %s SET %s WHERE id = $%d`,
		table.Name, strings.Join(assignments, ", "), len(args),
	)

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to update table row",
			zap.Error(err),
			zap.String("table", table.Name),
			zap.String("record_id", id),
		)
		return false, fmt.Errorf("update %s row %s: %w", table.Name, id, err)
	}

	return tag.RowsAffected() > 0, nil
}

func (r *adminRepository) Options(ctx context.Context, table *TableDescriptor) ([]Option, error) {
	query := fmt.Sprintf(
		`SELECT id, COALESCE(%s::text, '') FROM %s ORDER BY 2 LIMIT 200`,
		table.Label, table.Name,
	)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list table options",
			zap.Error(err),
			zap.String("table", table.Name),
		)
		return nil, fmt.Errorf("list %s options: %w", table.Name, err)
	}
	defer rows.Close()

	var options []Option
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("read %s option: %w", table.Name, err)
		}
		options = append(options, Option{
			Value: fmt.Sprintf("%v", normalizeValue(values[0])),
			Label: fmt.Sprintf("%v", values[1]),
		})
	}

	return options, nil
}

func (r *adminRepository) Delete(ctx context.Context, table *TableDescriptor, id string) (bool, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, table.Name)

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete table row",
			zap.Error(err),
			zap.String("table", table.Name),
			zap.String("record_id", id),
		)
		return false, fmt.Errorf("delete %s row %s: %w", table.Name, id, err)
	}

	return tag.RowsAffected() > 0, nil
}
