package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/driftline-labs/churnforge/internal/config"
	"github.com/driftline-labs/churnforge/internal/report"
	"github.com/driftline-labs/churnforge/internal/store"
)

var statsDB string

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print summary statistics for an existing database",
	Long: `Query a previously generated database and print the summary block:
row counts per table, churn rate, database size, and the persona
distribution histogram.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if cmd.Flags().Changed("db") {
			cfg.SetTarget(statsDB)
		}

		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
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

		counts, err := st.TableCounts(ctx)
		if err != nil {
			return fmt.Errorf("failed to count rows: %w", err)
		}
		total, churned, err := st.ChurnStats(ctx)
		if err != nil {
			return fmt.Errorf("failed to compute churn rate: %w", err)
		}
		personas, err := st.PersonaCounts(ctx)
		if err != nil {
			return fmt.Errorf("failed to count personas: %w", err)
		}

		stats := report.FromCounts(counts, total, churned, personas)
		if size, ok := st.SizeBytes(); ok {
			stats = stats.WithSize(size)
		}
		stats.Summary()

		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().StringVar(&statsDB, "db", "", "database to inspect (sqlite path, or postgres:// / mysql:// URL)")
}
