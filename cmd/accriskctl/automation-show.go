package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// automationShowCmd represents the automation show command
var automationShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show check automations and their job registration",
	Long: `Show one check automation, or all of them, together with the periodic
job registration derived from each.

Example:
  accriskctl automation show
  accriskctl automation show 0190a0c0-0000-7000-8000-000000000001`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id := ""
		if len(args) == 1 {
			id = args[0]
		}
		if err := showAutomations(id); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to show automation: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	automationCmd.AddCommand(automationShowCmd)
}

type automationView struct {
	Attributes map[string]interface{} `json:"attributes"`
	Task       interface{}            `json:"task"`
}

func showAutomations(id string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	automationsStore, err := openAutomationsStore(cfg)
	if err != nil {
		return err
	}
	scheduler := newScheduler(cfg)

	list, err := automationsStore.ListCheckAutomations()
	if err != nil {
		return err
	}
	if id != "" {
		a, err := automationsStore.GetCheckAutomation(id)
		if err != nil {
			return err
		}
		list = list[:0]
		list = append(list, *a)
	}

	views := make([]automationView, 0, len(list))
	for i := range list {
		view := automationView{Attributes: scheduler.ToAttrJSON(&list[i])}
		if task, err := scheduler.RegisterTask(&list[i]); err != nil {
			view.Task = err.Error()
		} else {
			view.Task = task
		}
		views = append(views, view)
	}

	out, err := json.MarshalIndent(views, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
