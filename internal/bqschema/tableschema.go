package bqschema

import (
	"fmt"

	"cloud.google.com/go/bigquery"

	"github.com/gyeh/pq2bq/internal/model"
)

// TableSchema converts the report's valid columns into a BigQuery table
// schema suitable for the tables API. ARRAY<T> columns become REPEATED
// fields of type T, and RECORD columns carry their struct members as
// sub-fields since BigQuery rejects a RECORD without any.
func TableSchema(report *model.Report) bigquery.Schema {
	schema := make(bigquery.Schema, 0, len(report.Valid))
	for _, c := range report.Valid {
		schema = append(schema, fieldSchema(c.Name, c.Source, c.Required))
	}
	return schema
}

// TableSchemaJSON renders TableSchema in the JSON form accepted by
// `bq mk --schema` and the tables.insert REST call.
func TableSchemaJSON(report *model.Report) ([]byte, error) {
	data, err := TableSchema(report).ToJSONFields()
	if err != nil {
		return nil, fmt.Errorf("marshal table schema: %w", err)
	}
	return data, nil
}

func fieldSchema(name string, t model.Type, required bool) *bigquery.FieldSchema {
	fs := &bigquery.FieldSchema{Name: name, Required: required}

	if t.Kind == model.KindList {
		fs.Repeated = true
		fs.Required = false
		if t.Elem == nil || t.Elem.Kind == model.KindList {
			// BigQuery has no arrays of arrays.
			fs.Type = bigquery.StringFieldType
			return fs
		}
		t = *t.Elem
	}

	fs.Type = bigquery.FieldType(MapType(t))
	if t.Kind == model.KindStruct {
		for _, f := range t.Fields {
			fs.Schema = append(fs.Schema, fieldSchema(f.Name, f.Type, false))
		}
	}
	return fs
}
