package cmd

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/driftline-labs/churnforge/internal/config"
	"github.com/driftline-labs/churnforge/internal/export"
	"github.com/driftline-labs/churnforge/internal/model"
	"github.com/driftline-labs/churnforge/internal/store"
)

var (
	exportDB  string
	exportDir string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Re-export the CSV mirror from an existing database",
	Long: `Read a previously generated database and rewrite its CSV mirror:
members, accounts, loans, and events in full, transactions truncated to the
first 100,000 rows as transactions_sample.csv.

Examples:
  churnforge export
  churnforge export --db credit_union_data.db --csv-dir csv_exports`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		flags := cmd.Flags()
		if flags.Changed("db") {
			cfg.SetTarget(exportDB)
		}
		if flags.Changed("csv-dir") {
			cfg.CSVPath = exportDir
		}

		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
		if err := cfg.EnsureDirectories(); err != nil {
			return fmt.Errorf("failed to create directories: %w", err)
		}

		dbURL, err := cfg.DatabaseURL()
		if err != nil {
			return err
		}
		st, err := store.New(cfg.Database.Provider, dbURL, cfg.Generation.Batch)
		if err != nil {
			return err
		}

		ctx := context.Background()
		if err := st.Open(ctx); err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer st.Close()

		for _, spec := range model.Tables {
			limit := 0
			if spec.Name == model.TableTransactions.Name {
				limit = export.TransactionSampleLimit
			}

			data, err := st.FetchTable(ctx, spec, limit)
			if err != nil {
				return fmt.Errorf("failed to read table %s: %w", spec.Name, err)
			}

			path, err := export.WriteTableData(cfg.CSVPath, spec, data)
			if err != nil {
				return err
			}
			color.Green("✓ %s (%d rows)", path, len(data.Rows))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(&exportDB, "db", "", "source database (sqlite path, or postgres:// / mysql:// URL)")
	exportCmd.Flags().StringVar(&exportDir, "csv-dir", config.DefaultCSVPath, "directory for the CSV mirror")
}
