package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/pq2bq/internal/bqschema"
	"github.com/gyeh/pq2bq/internal/config"
	"github.com/gyeh/pq2bq/internal/exitcode"
	"github.com/gyeh/pq2bq/internal/parquetread"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a BigQuery CREATE TABLE statement from a Parquet file",
	RunE:  runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.StringVar(&cfg.FilePath, "file", "", "Path to Parquet file (required)")
	f.StringVar(&cfg.TableName, "table", bqschema.DefaultTableName, "Table name used in the CREATE TABLE statement")
	f.StringVar(&cfg.OutputFormat, "format", config.FormatDDL, "Output format: ddl or json (BigQuery table schema)")
	f.BoolVar(&cfg.Strict, "strict", false, "Exit non-zero when any column is skipped")
	_ = generateCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	log := newLogger()

	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	log.Info().Str("file", cfg.FilePath).Str("table", cfg.TableName).Msg("reading parquet schema")
	ddl, report, err := bqschema.FromParquetReport(cfg.FilePath, cfg.TableName, bqschema.LogSink(log))
	if err != nil {
		var re *parquetread.ReadError
		if errors.As(err, &re) {
			log.Error().Err(re.Err).Str("op", re.Op).Str("file", re.Path).Msg("schema read failed")
		} else {
			log.Error().Err(err).Msg("schema generation failed")
		}
		os.Exit(exitcode.ReadError)
	}

	out := cmd.OutOrStdout()
	if err := writeOutput(out, cmd.ErrOrStderr(), ddl, report); err != nil {
		log.Error().Err(err).Msg("write output failed")
		os.Exit(exitcode.OutputError)
	}

	switch {
	case len(report.Valid) == 0:
		log.Error().Int("skipped", len(report.Skipped)).Msg("no valid columns found; all columns were skipped")
		os.Exit(exitcode.NoValidColumns)
	case cfg.Strict && len(report.Skipped) > 0:
		log.Error().Int("skipped", len(report.Skipped)).Msg("columns skipped in strict mode")
		os.Exit(exitcode.SkippedColumns)
	}

	log.Info().
		Int("valid", len(report.Valid)).
		Int("skipped", len(report.Skipped)).
		Msg("schema generation complete")
	return nil
}
