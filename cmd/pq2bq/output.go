package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/gyeh/pq2bq/internal/bqschema"
	"github.com/gyeh/pq2bq/internal/config"
	"github.com/gyeh/pq2bq/internal/model"
)

var rule = strings.Repeat("-", 60)

// writeOutput prints the DDL, the column tuples and the generation summary
// to w. In JSON mode only the table schema goes to w so it stays parseable;
// the summary goes to summaryW.
func writeOutput(w, summaryW io.Writer, ddl string, report *model.Report) error {
	if cfg.OutputFormat == config.FormatJSON {
		data, err := bqschema.TableSchemaJSON(report)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s\n", data); err != nil {
			return err
		}
		return bqschema.WriteSummary(summaryW, report)
	}

	if _, err := fmt.Fprintf(w, "CREATE TABLE DDL:\n%s\n%s\n\n", rule, ddl); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "COLUMN TUPLES (name, datatype):\n%s\n", rule); err != nil {
		return err
	}
	if err := bqschema.WriteTuples(w, bqschema.ColumnTuples(report)); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	return bqschema.WriteSummary(w, report)
}
