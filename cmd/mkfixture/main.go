// mkfixture writes small sample Parquet files for trying pq2bq by hand: one
// whose columns all map cleanly and one full of names BigQuery rejects.
// Usage: go run ./cmd/mkfixture --out testdata --rows 20
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	goparquet "github.com/parquet-go/parquet-go"
)

// Address is written as a nested group (RECORD).
type Address struct {
	Street string `parquet:"street"`
	City   string `parquet:"city"`
	Zip    *int32 `parquet:"zip,optional"`
}

// CleanRow has only BigQuery-safe column names.
type CleanRow struct {
	ID        int64     `parquet:"id"`
	Name      *string   `parquet:"name,optional"`
	Score     *float64  `parquet:"score,optional"`
	IsActive  bool      `parquet:"is_active"`
	CreatedAt time.Time `parquet:"created_at,optional,timestamp(microsecond)"`
	BirthDate int32     `parquet:"birth_date,optional,date"` // days since the Unix epoch
	Tags      []string  `parquet:"tags,list"`
	Payload   []byte    `parquet:"payload,optional"`
	Address   Address   `parquet:"address"`
}

// ProblematicRow mixes valid columns with every kind of rejected name.
type ProblematicRow struct {
	ID             int64   `parquet:"id"`
	TableMeta      *string `parquet:"_TABLE_META,optional"`
	PartitionTime  *string `parquet:"_partitiontime,optional"`
	FileName       *string `parquet:"_FILE_NAME,optional"`
	RowTimestamp   *int64  `parquet:"_ROW_TIMESTAMP_X,optional"`
	Root           *string `parquet:"__ROOT__id,optional"`
	ColIdentifier  *string `parquet:"_COLIDENTIFIER_1,optional"`
	LeadingDigit   *int32  `parquet:"2nd_value,optional"`
	Hyphenated     *string `parquet:"first-name,optional"`
	Spaced         *string `parquet:"last name,optional"`
	UnderscoreLead *string `parquet:"_private,optional"`
	Amount         float64 `parquet:"amount"`
}

func main() {
	outDir := flag.String("out", "testdata", "output directory")
	rows := flag.Int("rows", 20, "rows per file")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "create output dir: %v\n", err)
		os.Exit(1)
	}

	clean := make([]CleanRow, *rows)
	problematic := make([]ProblematicRow, *rows)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := range clean {
		name := fmt.Sprintf("user_%03d", i)
		score := float64(i) * 1.5
		zip := int32(10000 + i)
		clean[i] = CleanRow{
			ID:        int64(i + 1),
			Name:      &name,
			Score:     &score,
			IsActive:  i%2 == 0,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
			BirthDate: int32(base.AddDate(-30, 0, i).Unix() / 86400),
			Tags:      []string{"a", fmt.Sprintf("t%d", i%3)},
			Payload:   []byte{byte(i)},
			Address:   Address{Street: fmt.Sprintf("%d Main St", i), City: "Springfield", Zip: &zip},
		}

		meta := fmt.Sprintf("meta-%d", i)
		problematic[i] = ProblematicRow{
			ID:        int64(i + 1),
			TableMeta: &meta,
			Amount:    float64(i) * 10,
		}
	}

	cleanPath := filepath.Join(*outDir, "sample_data_clean.parquet")
	if err := writeFile(cleanPath, clean); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	problematicPath := filepath.Join(*outDir, "sample_data_problematic.parquet")
	if err := writeFile(problematicPath, problematic); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %d rows to %s\n", len(clean), cleanPath)
	fmt.Printf("Wrote %d rows to %s\n", len(problematic), problematicPath)
}

func writeFile[T any](path string, rows []T) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer f.Close()

	writer := goparquet.NewGenericWriter[T](f)
	if _, err := writer.Write(rows); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("close writer %s: %w", path, err)
	}
	return nil
}
