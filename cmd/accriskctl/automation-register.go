package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/accrisk/pkg/automation"
)

// automationRegisterCmd represents the automation register command
var automationRegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Emit periodic job registrations for active automations",
	Long: `Emit one JSON line per active, periodic check automation describing the
job the external scheduler should register:

  {"name":"check_accounts_task_period_<id[:8]>","task":"...","args":["<id>","timing"],"kwargs":{}}

Example:
  accriskctl automation register > jobs.jsonl`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := registerAutomations(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to register automations: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	automationCmd.AddCommand(automationRegisterCmd)
}

// jsonLinesRegistrar hands registrations to an external scheduler as JSON lines
type jsonLinesRegistrar struct {
	enc *json.Encoder
}

var _ automation.Registrar = (*jsonLinesRegistrar)(nil)

func newJSONLinesRegistrar(w io.Writer) *jsonLinesRegistrar {
	return &jsonLinesRegistrar{enc: json.NewEncoder(w)}
}

func (r *jsonLinesRegistrar) Register(task automation.PeriodicTask) error {
	return r.enc.Encode(task)
}

func registerAutomations(w io.Writer) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	automationsStore, err := openAutomationsStore(cfg)
	if err != nil {
		return err
	}

	list, err := automationsStore.ListCheckAutomations()
	if err != nil {
		return err
	}

	registered, err := newScheduler(cfg).RegisterAll(list, newJSONLinesRegistrar(w))
	fmt.Fprintf(os.Stderr, "Registered %d of %d automations\n", len(registered), len(list))
	return err
}
