package bqschema

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	goparquet "github.com/parquet-go/parquet-go"

	"github.com/gyeh/pq2bq/internal/model"
	"github.com/gyeh/pq2bq/internal/parquetread"
)

type exampleRow struct {
	ID        int32     `parquet:"id"`
	Name      *string   `parquet:"name,optional"`
	TableMeta *string   `parquet:"_TABLE_META,optional"`
	CreatedAt time.Time `parquet:"created_at,optional,timestamp(microsecond)"`
	IsActive  bool      `parquet:"is_active"`
}

type skippedOnlyRow struct {
	Partition int64   `parquet:"_PARTITIONTIME"`
	Bad       *string `parquet:"bad-name,optional"`
}

func writeParquet[T any](t *testing.T, rows []T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.parquet")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()
	w := goparquet.NewGenericWriter[T](f)
	if _, err := w.Write(rows); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return path
}

func TestFromParquet(t *testing.T) {
	path := writeParquet(t, []exampleRow{{ID: 1, IsActive: true}})

	var lines []string
	ddl, tuples, err := FromParquet(path, "your_table", collect(&lines))
	if err != nil {
		t.Fatalf("FromParquet: %v", err)
	}
	if ddl != exampleDDL {
		t.Errorf("DDL mismatch (-want +got):\n%s", cmp.Diff(exampleDDL, ddl))
	}

	wantTuples := []model.ColumnTuple{
		{Name: "id", Type: "INTEGER"},
		{Name: "name", Type: "STRING"},
		{Name: "created_at", Type: "TIMESTAMP"},
		{Name: "is_active", Type: "BOOLEAN"},
	}
	if diff := cmp.Diff(wantTuples, tuples); diff != "" {
		t.Errorf("tuples mismatch (-want +got):\n%s", diff)
	}
	if len(lines) != 6 {
		t.Errorf("expected 6 emitted lines (header + 5 columns), got %d: %v", len(lines), lines)
	}
}

func TestFromParquetReport_Skipped(t *testing.T) {
	path := writeParquet(t, []exampleRow{{ID: 1}})
	_, report, err := FromParquetReport(path, "", nil)
	if err != nil {
		t.Fatalf("FromParquetReport: %v", err)
	}
	want := []model.SkippedColumn{{
		Name:       "_TABLE_META",
		Reason:     "Column name starts with restricted prefix '_TABLE_'",
		SourceType: "string",
	}}
	if diff := cmp.Diff(want, report.Skipped); diff != "" {
		t.Errorf("skipped mismatch (-want +got):\n%s", diff)
	}
}

func TestFromParquet_NoValidColumns(t *testing.T) {
	path := writeParquet(t, []skippedOnlyRow{{Partition: 1}})
	ddl, tuples, err := FromParquet(path, "t", nil)
	if err != nil {
		t.Fatalf("FromParquet: %v", err)
	}
	if ddl != NoValidColumnsDDL {
		t.Errorf("ddl = %q, want placeholder", ddl)
	}
	if len(tuples) != 0 {
		t.Errorf("expected no tuples, got %v", tuples)
	}
}

func TestFromParquet_ReadError(t *testing.T) {
	ddl, tuples, err := FromParquet(filepath.Join(t.TempDir(), "missing.parquet"), "t", nil)
	var re *parquetread.ReadError
	if !errors.As(err, &re) {
		t.Fatalf("expected *parquetread.ReadError, got %T: %v", err, err)
	}
	if ddl != "" || tuples != nil {
		t.Errorf("expected no partial output, got ddl=%q tuples=%v", ddl, tuples)
	}
}
