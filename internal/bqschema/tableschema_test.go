package bqschema

import (
	"testing"

	"cloud.google.com/go/bigquery"

	"github.com/gyeh/pq2bq/internal/model"
)

func TestTableSchema(t *testing.T) {
	cols := []model.Column{
		{Name: "id", Type: model.Int(64), Nullable: false},
		{Name: "tags", Type: model.List(model.String()), Nullable: true},
		{Name: "matrix", Type: model.List(model.List(model.Float(64))), Nullable: true},
		{Name: "address", Type: model.Struct(
			model.Field{Name: "street", Type: model.String()},
			model.Field{Name: "zip", Type: model.Int(32)},
		), Nullable: true},
		{Name: "_TABLE_x", Type: model.String(), Nullable: true},
	}
	_, report := Generate(cols, "t", nil)
	schema := TableSchema(report)

	if len(schema) != 4 {
		t.Fatalf("expected 4 fields, got %d", len(schema))
	}

	id := schema[0]
	if id.Name != "id" || id.Type != bigquery.IntegerFieldType || !id.Required || id.Repeated {
		t.Errorf("id field = %+v", id)
	}

	tags := schema[1]
	if tags.Type != bigquery.StringFieldType || !tags.Repeated || tags.Required {
		t.Errorf("tags field = %+v", tags)
	}

	matrix := schema[2]
	if matrix.Type != bigquery.StringFieldType || !matrix.Repeated {
		t.Errorf("matrix field = %+v", matrix)
	}

	addr := schema[3]
	if addr.Type != bigquery.RecordFieldType || len(addr.Schema) != 2 {
		t.Fatalf("address field = %+v", addr)
	}
	if addr.Schema[0].Name != "street" || addr.Schema[0].Type != bigquery.StringFieldType {
		t.Errorf("address.street = %+v", addr.Schema[0])
	}
	if addr.Schema[1].Name != "zip" || addr.Schema[1].Type != bigquery.IntegerFieldType {
		t.Errorf("address.zip = %+v", addr.Schema[1])
	}
}

func TestTableSchemaJSON_RoundTrip(t *testing.T) {
	_, report := Generate(exampleColumns(), "t", nil)
	data, err := TableSchemaJSON(report)
	if err != nil {
		t.Fatalf("TableSchemaJSON: %v", err)
	}

	schema, err := bigquery.SchemaFromJSON(data)
	if err != nil {
		t.Fatalf("SchemaFromJSON: %v\n%s", err, data)
	}
	if len(schema) != len(report.Valid) {
		t.Fatalf("expected %d fields, got %d", len(report.Valid), len(schema))
	}
	for i, c := range report.Valid {
		f := schema[i]
		if f.Name != c.Name || string(f.Type) != c.BQType || f.Required != c.Required {
			t.Errorf("field %d = %+v, want %+v", i, f, c)
		}
	}
}
