package parquetread

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/gyeh/pq2bq/internal/model"
)

// ReadError reports a failure to open or parse a Parquet file. It is a hard
// error: no columns are returned alongside it.
type ReadError struct {
	Path string
	Op   string // "open", "stat" or "parse"
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("%s parquet file %s: %s", e.Op, e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// ReadSchema opens the Parquet file at path and returns its top-level
// columns in file order. Only the footer is read; no row data is decoded.
func ReadSchema(path string) ([]model.Column, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ReadError{Path: path, Op: "open", Err: err}
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, &ReadError{Path: path, Op: "stat", Err: err}
	}

	pf, err := parquet.OpenFile(f, stat.Size())
	if err != nil {
		return nil, &ReadError{Path: path, Op: "parse", Err: err}
	}

	return Columns(pf.Schema()), nil
}

// Columns converts the top-level fields of schema into columns.
func Columns(schema *parquet.Schema) []model.Column {
	fields := schema.Fields()
	columns := make([]model.Column, len(fields))
	for i, field := range fields {
		columns[i] = columnOf(field)
	}
	return columns
}

// FileHash computes the hex-encoded SHA-256 of the file at path.
func FileHash(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open file for hash: %w", err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hash file: %w", err)
	}
	return fmt.Sprintf("%x", h.Sum(nil)), nil
}
