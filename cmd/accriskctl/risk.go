package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// riskCmd represents the risk command
var riskCmd = &cobra.Command{
	Use:   "risk",
	Short: "Manage detected account risks",
	Long:  `List, confirm, purge, seed and report on detected account risks.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'risk' requires a subcommand (list, confirm, delete, seed, choices, report)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(riskCmd)
}
