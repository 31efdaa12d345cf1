package repository

// FieldKind tells the admin layer how to validate and normalize a column
// value before it reaches SQL.
type FieldKind string

const (
	FieldString   FieldKind = "string"
	FieldInt      FieldKind = "int"
	FieldFloat    FieldKind = "float"
	FieldBool     FieldKind = "bool"
	FieldTime     FieldKind = "time"
	FieldUUID     FieldKind = "uuid"
	FieldPassword FieldKind = "password"
)

// FieldDescriptor describes one editable column of an admin-managed table.
type FieldDescriptor struct {
	Column   string    `json:"column"`
	Kind     FieldKind `json:"kind"`
	Required bool      `json:"required"`
	// Ref names the referenced table for foreign-key columns, empty otherwise.
	Ref string `json:"ref,omitempty"`
}

// TableDescriptor describes one table exposed through the admin panel. The
// admin repository builds its SQL from these instead of per-table queries, so
// adding a table to the panel is one entry here.
type TableDescriptor struct {
	Name     string            `json:"name"`
	IDKind   FieldKind         `json:"id_kind"`
	Fields   []FieldDescriptor `json:"fields"`
	ReadOnly bool              `json:"read_only"`
	// Label is the column shown for rows of this table in FK dropdowns.
	Label string `json:"label"`
	// HasUpdatedAt is false for append-only tables that carry created_at only.
	HasUpdatedAt bool `json:"-"`
}

// Field returns the descriptor for a column, or nil if the table has no such
// editable column.
func (t *TableDescriptor) Field(column string) *FieldDescriptor {
	for i := range t.Fields {
		if t.Fields[i].Column == column {
			return &t.Fields[i]
		}
	}
	return nil
}

// AdminTables is the registry of tables reachable from the admin panel, in
// display order. Sessions and purchase drafts are deliberately absent.
var AdminTables = []TableDescriptor{
	{
		Name:         "accounts",
		Label:        "email",
		IDKind:       FieldUUID,
		HasUpdatedAt: true,
		Fields: []FieldDescriptor{
			{Column: "email", Kind: FieldString, Required: true},
			{Column: "password", Kind: FieldPassword, Required: true},
			{Column: "role", Kind: FieldString, Required: true},
		},
	},
	{
		Name:         "users",
		Label:        "last_name",
		IDKind:       FieldUUID,
		HasUpdatedAt: true,
		Fields: []FieldDescriptor{
			{Column: "account_id", Kind: FieldUUID, Required: true, Ref: "accounts"},
			{Column: "first_name", Kind: FieldString, Required: true},
			{Column: "last_name", Kind: FieldString, Required: true},
			{Column: "patronymic", Kind: FieldString},
			{Column: "phone", Kind: FieldString},
			{Column: "passport_number", Kind: FieldString},
			{Column: "birthday", Kind: FieldTime},
		},
	},
	{
		Name:   "airports",
		Label:  "name",
		IDKind: FieldString,
		Fields: []FieldDescriptor{
			{Column: "name", Kind: FieldString, Required: true},
			{Column: "city", Kind: FieldString, Required: true},
			{Column: "country", Kind: FieldString, Required: true},
		},
	},
	{
		Name:         "airplanes",
		Label:        "registration_number",
		IDKind:       FieldUUID,
		HasUpdatedAt: true,
		Fields: []FieldDescriptor{
			{Column: "model", Kind: FieldString, Required: true},
			{Column: "registration_number", Kind: FieldString, Required: true},
			{Column: "capacity", Kind: FieldInt, Required: true},
			{Column: "economy_capacity", Kind: FieldInt, Required: true},
			{Column: "business_capacity", Kind: FieldInt, Required: true},
			{Column: "first_capacity", Kind: FieldInt, Required: true},
			{Column: "rows", Kind: FieldInt, Required: true},
			{Column: "seats_row", Kind: FieldInt, Required: true},
		},
	},
	{
		Name:         "flights",
		Label:        "number",
		IDKind:       FieldUUID,
		HasUpdatedAt: true,
		Fields: []FieldDescriptor{
			{Column: "number", Kind: FieldString, Required: true},
			{Column: "airplane_id", Kind: FieldUUID, Required: true, Ref: "airplanes"},
			{Column: "departure_airport_id", Kind: FieldString, Required: true, Ref: "airports"},
			{Column: "arrival_airport_id", Kind: FieldString, Required: true, Ref: "airports"},
			{Column: "departure_time", Kind: FieldTime, Required: true},
			{Column: "arrival_time", Kind: FieldTime, Required: true},
			{Column: "actual_departure_time", Kind: FieldTime},
			{Column: "actual_arrival_time", Kind: FieldTime},
			{Column: "status", Kind: FieldString, Required: true},
		},
	},
	{
		Name:   "classes",
		Label:  "class_name",
		IDKind: FieldUUID,
		Fields: []FieldDescriptor{
			{Column: "class_name", Kind: FieldString, Required: true},
		},
	},
	{
		Name:   "baggage_types",
		Label:  "type_name",
		IDKind: FieldUUID,
		Fields: []FieldDescriptor{
			{Column: "type_name", Kind: FieldString, Required: true},
			{Column: "max_weight_kg", Kind: FieldFloat, Required: true},
			{Column: "description", Kind: FieldString},
			{Column: "base_price", Kind: FieldFloat, Required: true},
		},
	},
	{
		Name:         "passengers",
		Label:        "passport_number",
		IDKind:       FieldUUID,
		HasUpdatedAt: true,
		Fields: []FieldDescriptor{
			{Column: "first_name", Kind: FieldString, Required: true},
			{Column: "last_name", Kind: FieldString, Required: true},
			{Column: "patronymic", Kind: FieldString},
			{Column: "passport_number", Kind: FieldString, Required: true},
			{Column: "birthday", Kind: FieldTime},
		},
	},
	{
		Name:         "payments",
		Label:        "transaction_id",
		IDKind:       FieldUUID,
		HasUpdatedAt: true,
		Fields: []FieldDescriptor{
			{Column: "user_id", Kind: FieldUUID, Required: true, Ref: "users"},
			{Column: "payment_date", Kind: FieldTime, Required: true},
			{Column: "total_cost", Kind: FieldFloat, Required: true},
			{Column: "payment_method", Kind: FieldString, Required: true},
			{Column: "status", Kind: FieldString, Required: true},
			{Column: "transaction_id", Kind: FieldString},
		},
	},
	{
		Name:         "tickets",
		Label:        "seat_number",
		IDKind:       FieldUUID,
		HasUpdatedAt: true,
		Fields: []FieldDescriptor{
			{Column: "flight_id", Kind: FieldUUID, Required: true, Ref: "flights"},
			{Column: "class_id", Kind: FieldUUID, Required: true, Ref: "classes"},
			{Column: "seat_number", Kind: FieldString, Required: true},
			{Column: "price", Kind: FieldFloat, Required: true},
			{Column: "status", Kind: FieldString, Required: true},
			{Column: "passenger_id", Kind: FieldUUID, Required: true, Ref: "passengers"},
			{Column: "payment_id", Kind: FieldUUID, Required: true, Ref: "payments"},
		},
	},
	{
		Name:   "baggage",
		Label:  "baggage_tag",
		IDKind: FieldUUID,
		Fields: []FieldDescriptor{
			{Column: "ticket_id", Kind: FieldUUID, Required: true, Ref: "tickets"},
			{Column: "baggage_type_id", Kind: FieldUUID, Required: true, Ref: "baggage_types"},
			{Column: "weight_kg", Kind: FieldFloat, Required: true},
			{Column: "baggage_tag", Kind: FieldString, Required: true},
			{Column: "status", Kind: FieldString, Required: true},
			{Column: "registered_at", Kind: FieldTime, Required: true},
		},
	},
	{
		Name:     "audit_logs",
		Label:    "table_name",
		IDKind:   FieldUUID,
		ReadOnly: true,
		Fields: []FieldDescriptor{
			{Column: "table_name", Kind: FieldString, Required: true},
			{Column: "record_id", Kind: FieldString, Required: true},
			{Column: "operation", Kind: FieldString, Required: true},
			{Column: "changed_by", Kind: FieldUUID, Required: true, Ref: "accounts"},
		},
	},
}

// FindTable looks up an admin table descriptor by name.
func FindTable(name string) *TableDescriptor {
	for i := range AdminTables {
		if AdminTables[i].Name == name {
			return &AdminTables[i]
		}
	}
	return nil
}
