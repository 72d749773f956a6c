package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	Version = "1.2.0"
)

func showBanner() {
	cyanBold := color.New(color.FgCyan, color.Bold)

	banner := []string{
		"╔════════════════════════════════════════════════════════╗",
		"║            C H U R N F O R G E                         ║",
		"║                                                        ║",
		"║   Deterministic synthetic credit union dataset         ║",
		"║   generator for member churn modeling                  ║",
		"╚════════════════════════════════════════════════════════╝",
	}

	for _, line := range banner {
		cyanBold.Println(line)
	}

	fmt.Print("                  ")
	color.New(color.FgCyan, color.Bold).Print("Version: ")
	color.New(color.FgYellow, color.Bold).Printf("%s\n", Version)
}

var rootCmd = &cobra.Command{
	Use:   "churnforge",
	Short: "Synthetic credit union data generator for churn modeling",
	Long: `
ChurnForge builds a deterministic, persona-driven credit union dataset for
member churn analysis: members, accounts, transactions, loans, and member
contact events, loaded into a relational database with a CSV mirror.

Seven behavioral personas drive account ownership, transaction cadence, loan
appetite, and churn probability. The same seed and parameters always rebuild
byte-identical data, so downstream models train against a stable fixture.

Database Support:
- SQLite (default, single file)
- PostgreSQL
- MySQL`,

	Run: func(cmd *cobra.Command, args []string) {
		showVersion, _ := cmd.Flags().GetBool("version")
		if showVersion {
			fmt.Printf("churnforge version %s\n", Version)
			os.Exit(0)
		}

		showBanner()
		fmt.Println()
		cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./churnforge.config.json)")
	rootCmd.Flags().BoolP("version", "v", false, "Show CLI version")
}

func initConfig() {
	// .env is optional; .env.local wins when both define a key.
	godotenv.Load(".env.local")
	godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("json")
		viper.SetConfigName("churnforge.config")
	}

	viper.AutomaticEnv()

	// A missing config file is fine, defaults cover everything.
	viper.ReadInConfig()
}
