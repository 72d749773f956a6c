package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/driftline-labs/churnforge/internal/config"
)

var (
	initSQLite     bool
	initPostgresql bool
	initMySQL      bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a churnforge project in the current directory",
	Long: `Scaffold churnforge.config.json with the default generation settings, the
CSV export directory, and a starter .env for database credentials.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		provider := ""
		flagCount := 0

		if initSQLite {
			provider = "sqlite"
			flagCount++
		}
		if initPostgresql {
			provider = "postgresql"
			flagCount++
		}
		if initMySQL {
			provider = "mysql"
			flagCount++
		}

		if flagCount > 1 {
			return fmt.Errorf("please specify only one database type (--sqlite, --postgresql, or --mysql)")
		}

		if err := config.InitializeProject(provider); err != nil {
			return err
		}

		color.Green("✓ Initialized churnforge project")
		fmt.Println()
		fmt.Println("Project files:")
		fmt.Printf("   %s\n", config.FileName)
		fmt.Println("   .env")
		fmt.Printf("   %s/\n", config.DefaultCSVPath)

		fmt.Println()
		color.Cyan("Next steps:")
		color.White("  1. Adjust generation settings in %s", config.FileName)
		color.White("  2. Run 'churnforge generate' to build the dataset")
		color.White("  3. Run 'churnforge stats' to inspect it")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVar(&initSQLite, "sqlite", false, "Initialize project for SQLite (default)")
	initCmd.Flags().BoolVar(&initPostgresql, "postgresql", false, "Initialize project for PostgreSQL")
	initCmd.Flags().BoolVar(&initMySQL, "mysql", false, "Initialize project for MySQL")
}
