package request

// AdminRecordRequest carries one row for descriptor-driven create/update.
// Values are validated against the table descriptor, not struct tags, so the
// payload stays schemaless here.
type AdminRecordRequest struct {
	// ID is only honored on create for tables with natural string keys
	// (airports). Generated tables ignore it.
	ID     string         `json:"id,omitempty"`
	Values map[string]any `json:"values" validate:"required"`
}
