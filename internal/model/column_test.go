package model

import "testing"

func TestTypeString(t *testing.T) {
	tests := []struct {
		typ  Type
		want string
	}{
		{Int(32), "int32"},
		{Uint(8), "uint8"},
		{Float(32), "float"},
		{Float(64), "double"},
		{String(), "string"},
		{Binary(), "binary"},
		{Bool(), "bool"},
		{Date(), "date32"},
		{Timestamp("ms"), "timestamp[ms]"},
		{Timestamp(""), "timestamp[us]"},
		{Time("ms"), "time32[ms]"},
		{Time("ns"), "time64[ns]"},
		{List(Int(64)), "list<element: int64>"},
		{List(List(String())), "list<element: list<element: string>>"},
		{Struct(Field{Name: "a", Type: Int(32)}, Field{Name: "b", Type: String()}), "struct<a: int32, b: string>"},
		{Unknown("decimal(10,2)"), "decimal(10,2)"},
		{Unknown(""), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestMappedColumnMode(t *testing.T) {
	if got := (MappedColumn{Required: true}).Mode(); got != "REQUIRED" {
		t.Errorf("required mode = %q", got)
	}
	if got := (MappedColumn{}).Mode(); got != "NULLABLE" {
		t.Errorf("nullable mode = %q", got)
	}
}

func TestReportTotal(t *testing.T) {
	r := &Report{
		Valid:   []MappedColumn{{Name: "a"}, {Name: "b"}},
		Skipped: []SkippedColumn{{Name: "_TABLE_x"}},
	}
	if r.Total() != 3 {
		t.Errorf("Total() = %d, want 3", r.Total())
	}
}
