package model

// Validation is the verdict of checking a column name against BigQuery's
// naming rules. Reason is empty when Valid is true.
type Validation struct {
	Valid  bool
	Reason string
}

// MappedColumn is a column that passed validation, with its BigQuery type.
type MappedColumn struct {
	Name     string
	BQType   string
	Required bool // true when the source column is not nullable
	Source   Type // source type the BigQuery type was mapped from
}

// Mode returns the BigQuery column mode, "REQUIRED" or "NULLABLE".
func (c MappedColumn) Mode() string {
	if c.Required {
		return "REQUIRED"
	}
	return "NULLABLE"
}

// SkippedColumn is a column left out of the generated schema.
type SkippedColumn struct {
	Name       string
	Reason     string
	SourceType string // Arrow-style label of the source type
}

// ColumnTuple is a (name, bigquery type) pair.
type ColumnTuple struct {
	Name string
	Type string
}

// Report captures the outcome of one schema generation run. Both slices
// preserve the input column order.
type Report struct {
	Valid   []MappedColumn
	Skipped []SkippedColumn
}

// Total returns the number of input columns the report accounts for.
func (r *Report) Total() int {
	return len(r.Valid) + len(r.Skipped)
}
