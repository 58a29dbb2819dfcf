// Package config loads the per-machine configuration (config.toml):
// the active label set and tool-update settings. The document is
// layered over built-in defaults; a missing or unreadable file is
// never fatal and simply yields the defaults, so a fresh machine can
// run install before any configuration exists.
package config

import (
	"os"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/homelink/pkg/errors"
	"github.com/arthur-debert/homelink/pkg/logging"
)

// Machine is the per-machine configuration.
type Machine struct {
	// Labels is the machine's active label set. Entries in home.toml
	// are filtered against it.
	Labels []string `koanf:"labels"`

	// Update configures the `homelink update` command.
	Update UpdateSettings `koanf:"update"`
}

// UpdateSettings configures the tool-update step of `homelink update`.
type UpdateSettings struct {
	// Commands are run in order after pulling; each is a command line
	// split on whitespace.
	Commands []string `koanf:"commands"`
}

// defaults returns the built-in configuration layer.
func defaults() map[string]interface{} {
	return map[string]interface{}{
		"labels": []string{},
		"update.commands": []string{
			"mise trust --yes --all",
			"mise install",
		},
	}
}

// LoadMachine loads config.toml from the given path, layered over
// defaults. A missing file yields the defaults. A malformed file is
// logged and likewise yields the defaults: the label document must
// never abort a run.
func LoadMachine(path string) (*Machine, error) {
	logger := logging.GetLogger("config")

	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load configuration defaults")
	}

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			logger.Warn().Err(err).Str("path", path).
				Msg("Machine config unreadable, proceeding with empty label set")
			k = koanf.New(".")
			if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
				return nil, errors.Wrap(err, errors.ErrInternal, "failed to load configuration defaults")
			}
		}
	} else {
		logger.Debug().Str("path", path).Msg("No machine config found, using defaults")
	}

	var cfg Machine
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode machine config")
	}

	logger.Debug().Strs("labels", cfg.Labels).Msg("Machine config loaded")
	return &cfg, nil
}
