package bqschema

import (
	"testing"

	"github.com/gyeh/pq2bq/internal/model"
)

func TestMapType(t *testing.T) {
	tests := []struct {
		typ  model.Type
		want string
	}{
		{model.Timestamp("us"), "TIMESTAMP"},
		{model.Time("ms"), "TIME"},
		{model.Date(), "DATE"},
		{model.Int(8), "INTEGER"},
		{model.Int(32), "INTEGER"},
		{model.Int(64), "INTEGER"},
		{model.Uint(64), "INTEGER"},
		{model.Float(32), "FLOAT"},
		{model.Float(64), "FLOAT"},
		{model.Bool(), "BOOLEAN"},
		{model.String(), "STRING"},
		{model.Binary(), "BYTES"},
		{model.List(model.Int(32)), "ARRAY<INTEGER>"},
		{model.List(model.List(model.String())), "ARRAY<ARRAY<STRING>>"},
		{model.List(model.Struct(model.Field{Name: "x", Type: model.Int(32)})), "ARRAY<RECORD>"},
		{model.Struct(model.Field{Name: "a", Type: model.Int(32)}, model.Field{Name: "b", Type: model.String()}), "RECORD"},
		{model.Struct(), "RECORD"},
		{model.Unknown("decimal(10,2)"), "STRING"},
		{model.Unknown(""), "STRING"},
		{model.Type{Kind: model.Kind(99)}, "STRING"},
		{model.Type{Kind: model.KindList}, "ARRAY<STRING>"},
	}
	for _, tt := range tests {
		if got := MapType(tt.typ); got != tt.want {
			t.Errorf("MapType(%s) = %q, want %q", tt.typ, got, tt.want)
		}
	}
}
