package cmd

import (
	"fmt"
	"math"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/driftline-labs/churnforge/internal/persona"
	"github.com/driftline-labs/churnforge/internal/report"
)

var (
	personasFile string
	personasOut  string
)

var personasCmd = &cobra.Command{
	Use:   "personas",
	Short: "Show the active persona table",
	Long: `Print the built-in seven-persona behavior table, or a custom table loaded
with --personas. Use --out to dump the active table as YAML, edit it, and
feed it back to 'churnforge generate --personas'.

Examples:
  churnforge personas
  churnforge personas --out personas.yaml
  churnforge personas --personas custom.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		table := persona.Builtin()
		if personasFile != "" {
			var err error
			table, err = persona.Load(personasFile)
			if err != nil {
				return fmt.Errorf("failed to load persona table: %w", err)
			}
		}

		printPersonaTable(table)

		if personasOut != "" {
			if err := table.Dump(personasOut); err != nil {
				return err
			}
			color.Green("\n✓ Persona table written to %s", personasOut)
		}

		return nil
	},
}

func printPersonaTable(t *persona.Table) {
	color.Cyan("Persona table (%d personas)\n", len(t.All()))

	fmt.Printf("%-16s  %6s  %6s  %-19s  %6s  %9s  %9s\n",
		"PERSONA", "SHARE", "TX/MO", "BALANCE RANGE", "CHURN", "ADOPTION", "VARIANCE")
	fmt.Printf("%s  %s  %s  %s  %s  %s  %s\n",
		strings.Repeat("─", 16), strings.Repeat("─", 6), strings.Repeat("─", 6),
		strings.Repeat("─", 19), strings.Repeat("─", 6), strings.Repeat("─", 9),
		strings.Repeat("─", 9))

	total := 0.0
	for _, c := range t.All() {
		balance := fmt.Sprintf("$%s-$%s",
			report.Comma(int64(c.BalanceMin)), report.Comma(int64(c.BalanceMax)))
		fmt.Printf("%-16s  %5.0f%%  %6d  %-19s  %5.0f%%  %8.0f%%  %9.1f\n",
			c.Name, c.Proportion*100, c.AvgTransactionsPerMonth, balance,
			c.ChurnProbability*100, c.ProductAdoptionRate*100, c.TransactionVariance)
		total += c.Proportion
	}

	if math.Abs(total-1) > 1e-9 {
		fmt.Println()
		color.Yellow("⚠ Persona shares sum to %.0f%% (member count scales accordingly)", total*100)
	}
}

func init() {
	rootCmd.AddCommand(personasCmd)

	personasCmd.Flags().StringVar(&personasFile, "personas", "", "YAML file with a custom persona table")
	personasCmd.Flags().StringVar(&personasOut, "out", "", "write the active table to this YAML file")
}
