package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "accriskctl",
	Short: "Account risk tracking",
	Long: `Manage detected account risks, check automations and the review API.

Most commands need DATABASE_URL. URLs starting with "sqlite:" use an embedded
SQLite database.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func main() {
	Execute()
}
