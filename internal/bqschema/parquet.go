package bqschema

import (
	"github.com/gyeh/pq2bq/internal/model"
	"github.com/gyeh/pq2bq/internal/parquetread"
)

// FromParquet reads the schema of the Parquet file at path and returns the
// CREATE TABLE statement and column tuples for it. Errors reading the file
// are returned as *parquetread.ReadError; column-level problems never are.
func FromParquet(path, tableName string, sink Sink) (string, []model.ColumnTuple, error) {
	ddl, report, err := FromParquetReport(path, tableName, sink)
	if err != nil {
		return "", nil, err
	}
	return ddl, ColumnTuples(report), nil
}

// FromParquetReport is FromParquet but returns the full report instead of
// the column tuples.
func FromParquetReport(path, tableName string, sink Sink) (string, *model.Report, error) {
	columns, err := parquetread.ReadSchema(path)
	if err != nil {
		return "", nil, err
	}
	emit(sink, "Processing %d columns from %s", len(columns), path)
	ddl, report := Generate(columns, tableName, sink)
	return ddl, report, nil
}
