package bqschema

import (
	"strings"

	"github.com/gyeh/pq2bq/internal/model"
)

// DefaultTableName is used when no table name is given.
const DefaultTableName = "your_table"

// NoValidColumnsDDL is returned instead of a CREATE TABLE statement when
// every column was skipped.
const NoValidColumnsDDL = "-- No valid columns found"

// Generate validates and maps columns in order and renders the CREATE TABLE
// statement for the ones that survive. Skipped columns are recorded in the
// report with their reason; generation itself never fails. A nil sink
// discards progress lines.
func Generate(columns []model.Column, tableName string, sink Sink) (string, *model.Report) {
	report := &model.Report{
		Valid:   make([]model.MappedColumn, 0, len(columns)),
		Skipped: []model.SkippedColumn{},
	}

	for _, col := range columns {
		if v := ValidateName(col.Name); !v.Valid {
			report.Skipped = append(report.Skipped, model.SkippedColumn{
				Name:       col.Name,
				Reason:     v.Reason,
				SourceType: col.Type.String(),
			})
			emit(sink, "SKIPPING column '%s': %s", col.Name, v.Reason)
			continue
		}

		mc := model.MappedColumn{
			Name:     col.Name,
			BQType:   MapType(col.Type),
			Required: !col.Nullable,
			Source:   col.Type,
		}
		report.Valid = append(report.Valid, mc)
		emit(sink, "OK %s -> %s (%s)", mc.Name, mc.BQType, mc.Mode())
	}

	return RenderDDL(tableName, report.Valid), report
}

// RenderDDL renders a BigQuery CREATE TABLE statement for columns.
// Identifiers are backtick-quoted verbatim.
func RenderDDL(tableName string, columns []model.MappedColumn) string {
	if len(columns) == 0 {
		return NoValidColumnsDDL
	}
	if strings.TrimSpace(tableName) == "" {
		tableName = DefaultTableName
	}

	defs := make([]string, len(columns))
	for i, c := range columns {
		def := "  `" + c.Name + "` " + c.BQType
		if c.Required {
			def += " NOT NULL"
		}
		defs[i] = def
	}

	var b strings.Builder
	b.WriteString("CREATE TABLE `" + tableName + "` (\n")
	b.WriteString(strings.Join(defs, ",\n"))
	b.WriteString("\n);")
	return b.String()
}

// ColumnTuples returns the (name, type) pairs of the report's valid columns.
func ColumnTuples(report *model.Report) []model.ColumnTuple {
	tuples := make([]model.ColumnTuple, len(report.Valid))
	for i, c := range report.Valid {
		tuples[i] = model.ColumnTuple{Name: c.Name, Type: c.BQType}
	}
	return tuples
}
