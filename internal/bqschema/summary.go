package bqschema

import (
	"fmt"
	"io"
	"strings"

	"github.com/gyeh/pq2bq/internal/model"
)

var banner = strings.Repeat("=", 60)

// WriteSummary prints the valid and skipped counts and the details of every
// skipped column.
func WriteSummary(w io.Writer, report *model.Report) error {
	var b strings.Builder
	fmt.Fprintln(&b, banner)
	fmt.Fprintln(&b, "SCHEMA GENERATION SUMMARY")
	fmt.Fprintln(&b, banner)
	fmt.Fprintf(&b, "Valid columns: %d\n", len(report.Valid))
	fmt.Fprintf(&b, "Skipped columns: %d\n", len(report.Skipped))

	if len(report.Skipped) > 0 {
		fmt.Fprintln(&b)
		fmt.Fprintln(&b, "Skipped columns details:")
		for _, s := range report.Skipped {
			fmt.Fprintf(&b, "  - %s: %s (type: %s)\n", s.Name, s.Reason, s.SourceType)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteTuples prints the column tuples as a numbered list.
func WriteTuples(w io.Writer, tuples []model.ColumnTuple) error {
	var b strings.Builder
	for i, t := range tuples {
		fmt.Fprintf(&b, "%2d. ('%s', '%s')\n", i+1, t.Name, t.Type)
	}
	_, err := io.WriteString(w, b.String())
	return err
}
