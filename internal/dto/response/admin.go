package response

import (
	"airline-ticketing/internal/data/repository"
)

type AdminTablesResponse struct {
	Tables []repository.TableDescriptor `json:"tables"`
}

type AdminRecordsResponse struct {
	Table   string           `json:"table"`
	Records []map[string]any `json:"records"`
	Total   int64            `json:"total"`
}

type AdminRecordResponse struct {
	Table  string         `json:"table"`
	Record map[string]any `json:"record"`
}

// AdminOptionsResponse maps each foreign-key column to its selectable rows.
type AdminOptionsResponse struct {
	Table   string                         `json:"table"`
	Options map[string][]repository.Option `json:"options"`
}
