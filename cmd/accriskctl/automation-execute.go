package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/accrisk/pkg/automation"
)

// automationExecuteCmd represents the automation execute command
var automationExecuteCmd = &cobra.Command{
	Use:   "execute <id>",
	Short: "Run the account check for an automation now",
	Long: `Run the account check task for an automation immediately. The trigger
defaults to "manual"; a scheduler firing the periodic job passes
--trigger timing. The task program is set by check_task_command
(ACCRISK_CHECK_TASK_COMMAND); it receives the automation id and the trigger
as its last two arguments.

Example:
  ACCRISK_CHECK_TASK_COMMAND=/usr/local/bin/check-accounts accriskctl automation execute <id>`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		name, _ := cmd.Flags().GetString("trigger")
		trigger, err := automation.TriggerString(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid trigger (want one of %s): %v\n", strings.Join(automation.TriggerStrings(), ", "), err)
			os.Exit(1)
		}
		if err := executeAutomation(args[0], trigger); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to execute automation: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	automationCmd.AddCommand(automationExecuteCmd)

	automationExecuteCmd.Flags().String("trigger", automation.TriggerManual.String(), "trigger passed to the check task")
}

func executeAutomation(id string, trigger automation.Trigger) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	automationsStore, err := openAutomationsStore(cfg)
	if err != nil {
		return err
	}

	a, err := automationsStore.GetCheckAutomation(id)
	if err != nil {
		return err
	}
	if err := newScheduler(cfg).Execute(a, trigger); err != nil {
		return err
	}

	fmt.Printf("Executed %s for automation %s\n", cfg.CheckTaskName, a.ID)
	return nil
}
