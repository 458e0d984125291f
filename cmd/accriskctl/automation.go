package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/accrisk/pkg/automation"
	"github.com/doodlesbykumbi/accrisk/pkg/config"
)

// automationCmd represents the automation command
var automationCmd = &cobra.Command{
	Use:   "automation",
	Short: "Manage account check automations",
	Long:  `Create, inspect, register and run account check automations.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'automation' requires a subcommand (create, show, register, execute)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(automationCmd)
}

func newScheduler(cfg *config.Config) *automation.Scheduler {
	return automation.NewScheduler(automation.NewCommandTask(cfg.CheckTaskName, cfg.CheckTaskCommand, 0))
}
