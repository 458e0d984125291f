package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/accrisk/pkg/audit"
	"github.com/doodlesbykumbi/accrisk/pkg/model"
)

// automationCreateCmd represents the automation create command
var automationCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create an account check automation",
	Long: `Create an account check automation. The automation type is always
check_account.

Example:
  accriskctl automation create nightly --periodic --interval 24
  accriskctl automation create weekly --periodic --crontab "0 3 * * 1" --asset <asset-id>`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		a := model.NewAccountCheckAutomation("", args[0])
		a.IsPeriodic, _ = cmd.Flags().GetBool("periodic")
		a.Interval, _ = cmd.Flags().GetInt("interval")
		a.Crontab, _ = cmd.Flags().GetString("crontab")
		a.Accounts, _ = cmd.Flags().GetStringSlice("account")
		a.AssetIDs, _ = cmd.Flags().GetStringSlice("asset")
		a.Comment, _ = cmd.Flags().GetString("comment")
		inactive, _ := cmd.Flags().GetBool("inactive")
		a.IsActive = !inactive

		if err := createAutomation(a); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create automation: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	automationCmd.AddCommand(automationCreateCmd)
	automationCreateCmd.Flags().Bool("periodic", false, "Run on a schedule")
	automationCreateCmd.Flags().Int("interval", 24, "Hours between periodic runs")
	automationCreateCmd.Flags().String("crontab", "", "Cron expression, overrides --interval")
	automationCreateCmd.Flags().StringSlice("account", nil, "Account username to check (repeatable)")
	automationCreateCmd.Flags().StringSlice("asset", nil, "Asset id to check (repeatable)")
	automationCreateCmd.Flags().String("comment", "", "Free-form comment")
	automationCreateCmd.Flags().Bool("inactive", false, "Create the automation disabled")
}

func createAutomation(a *model.AccountCheckAutomation) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	automationsStore, err := openAutomationsStore(cfg)
	if err != nil {
		return err
	}

	a.OrgID = cfg.OrgID
	a.CreatedBy = operator()
	a.UpdatedBy = operator()

	err = newScheduler(cfg).Save(automationsStore, a)
	event := audit.AutomationSaveEvent{UserID: operator(), AutomationID: a.ID, Name: a.Name, Success: err == nil}
	if err != nil {
		event.ErrorMessage = err.Error()
	}
	audit.Log(event)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(a.ToAttrJSON(), "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
