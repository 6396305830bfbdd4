package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gyeh/pq2bq/internal/bqschema"
	"github.com/gyeh/pq2bq/internal/exitcode"
	"github.com/gyeh/pq2bq/internal/parquetread"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Show source column types and naming verdicts (no DDL)",
	RunE:  runInspect,
}

func init() {
	inspectCmd.Flags().StringVar(&cfg.FilePath, "file", "", "Path to Parquet file (required)")
	_ = inspectCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	log := newLogger()

	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	sha, err := parquetread.FileHash(cfg.FilePath)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash file")
		os.Exit(exitcode.ReadError)
	}

	stat, err := os.Stat(cfg.FilePath)
	if err != nil {
		log.Error().Err(err).Msg("failed to stat file")
		os.Exit(exitcode.ReadError)
	}

	columns, err := parquetread.ReadSchema(cfg.FilePath)
	if err != nil {
		log.Error().Err(err).Msg("failed to read parquet schema")
		os.Exit(exitcode.ReadError)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "=== pq2bq inspect ===")
	fmt.Fprintf(out, "File:     %s\n", cfg.FilePath)
	fmt.Fprintf(out, "SHA-256:  %s\n", sha)
	fmt.Fprintf(out, "Size:     %d bytes\n", stat.Size())
	fmt.Fprintf(out, "Columns:  %d\n\n", len(columns))

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tNAME\tSOURCE TYPE\tNULLABLE\tBIGQUERY\tVERDICT")
	for i, col := range columns {
		verdict := "ok"
		if v := bqschema.ValidateName(col.Name); !v.Valid {
			verdict = "skip: " + v.Reason
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%t\t%s\t%s\n",
			i+1, col.Name, col.Type, col.Nullable, bqschema.MapType(col.Type), verdict)
	}
	if err := tw.Flush(); err != nil {
		log.Error().Err(err).Msg("write output failed")
		os.Exit(exitcode.OutputError)
	}
	return nil
}
