// Package update pulls the latest repository state and runs the
// configured tool-update commands (mise by default).
package update

import (
	"os"
	"os/exec"
	"strings"

	"github.com/arthur-debert/homelink/pkg/commands/pull"
	"github.com/arthur-debert/homelink/pkg/config"
	"github.com/arthur-debert/homelink/pkg/errors"
	"github.com/arthur-debert/homelink/pkg/logging"
	"github.com/arthur-debert/homelink/pkg/paths"
)

// Options defines the options for the Update command.
type Options struct {
	RepoRoot string
	DryRun   bool
}

// Update pulls remote changes and then runs each configured update
// command in order. Command lines come from `[update] commands` in
// config.toml.
func Update(opts Options) error {
	logger := logging.GetLogger("commands.update")

	p, err := paths.New(opts.RepoRoot)
	if err != nil {
		return err
	}

	cfg, err := config.LoadMachine(p.MachineConfigPath())
	if err != nil {
		return err
	}

	if err := pull.Pull(pull.Options{RepoRoot: p.RepoRoot(), DryRun: opts.DryRun}); err != nil {
		return err
	}

	for _, line := range cfg.Update.Commands {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		logger.Info().Str("command", line).Msg("Running update command")
		if opts.DryRun {
			continue
		}

		cmd := exec.Command(fields[0], fields[1:]...)
		cmd.Dir = p.RepoRoot()
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		if err := cmd.Run(); err != nil {
			return errors.Wrapf(err, errors.ErrCommandRun, "update command %q failed", line)
		}
	}

	logger.Info().Int("commands", len(cfg.Update.Commands)).Msg("Update finished")
	return nil
}
