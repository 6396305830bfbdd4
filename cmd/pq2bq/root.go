package main

import (
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/gyeh/pq2bq/internal/config"
	"github.com/gyeh/pq2bq/internal/exitcode"
	"github.com/gyeh/pq2bq/internal/logging"
)

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "pq2bq",
	Short: "Parquet schema → BigQuery DDL generator",
	Long: "Reads the schema of a Parquet file and generates a BigQuery CREATE TABLE statement, " +
		"skipping columns whose names BigQuery would reject.",
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfg.ConfigPath, "config", os.Getenv("PQ2BQ_CONFIG"), "Path to YAML config file (or set PQ2BQ_CONFIG)")
	pf.StringVar(&cfg.LogFormat, "log-format", "text", "Log format: text or json")
}

// loadConfig merges the YAML config file, if any, under explicitly set flags.
func loadConfig(cmd *cobra.Command, args []string) error {
	if cfg.ConfigPath == "" {
		return nil
	}
	changed := make(map[string]bool)
	for _, name := range []string{"table", "format", "log-format", "strict"} {
		if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
			changed[name] = true
		}
	}
	if err := cfg.LoadFromFile(cfg.ConfigPath, changed); err != nil {
		log := newLogger()
		log.Error().Err(err).Str("config", cfg.ConfigPath).Msg("config load failed")
		os.Exit(exitcode.UsageError)
	}
	return nil
}

// newLogger returns the stderr logger for this run, tagged with a run id.
func newLogger() zerolog.Logger {
	return logging.Setup(cfg.LogFormat, os.Stderr).With().
		Str("run_id", uuid.NewString()).
		Logger()
}
