package automation

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// ErrNoCommand is returned by a CommandTask with an empty command line
var ErrNoCommand = errors.New("check task command is not configured")

// CommandTask runs an external program for each check. The automation id and
// trigger are appended to Command as the last two arguments.
type CommandTask struct {
	TaskName string
	Command  []string
	Timeout  time.Duration
}

// NewCommandTask splits commandLine on whitespace
func NewCommandTask(name, commandLine string, timeout time.Duration) CommandTask {
	return CommandTask{TaskName: name, Command: strings.Fields(commandLine), Timeout: timeout}
}

func (t CommandTask) Name() string {
	return t.TaskName
}

func (t CommandTask) Invoke(automationID string, trigger Trigger) error {
	if len(t.Command) == 0 {
		return ErrNoCommand
	}

	ctx := context.Background()
	if t.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.Timeout)
		defer cancel()
	}

	args := append(append([]string{}, t.Command[1:]...), automationID, trigger.String())
	cmd := exec.CommandContext(ctx, t.Command[0], args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%w: %s", err, msg)
		}
		return err
	}
	return nil
}
