package config_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/homelink/pkg/config"
	"github.com/arthur-debert/homelink/pkg/testutil"
)

func TestLoadMachine_MissingFileIsNotFatal(t *testing.T) {
	env := testutil.NewEnv(t)

	cfg, err := config.LoadMachine(filepath.Join(env.Root, "config.toml"))
	require.NoError(t, err)

	assert.Empty(t, cfg.Labels)
	assert.NotEmpty(t, cfg.Update.Commands, "defaults apply")
}

func TestLoadMachine_Labels(t *testing.T) {
	env := testutil.NewEnv(t)
	env.WriteMachineConfig(`
labels = ["work", "mac"]
`)

	cfg, err := config.LoadMachine(filepath.Join(env.Root, "config.toml"))
	require.NoError(t, err)

	assert.Equal(t, []string{"work", "mac"}, cfg.Labels)
}

func TestLoadMachine_MalformedFileIsNotFatal(t *testing.T) {
	env := testutil.NewEnv(t)
	env.WriteMachineConfig(`labels = [unterminated`)

	cfg, err := config.LoadMachine(filepath.Join(env.Root, "config.toml"))
	require.NoError(t, err)

	assert.Empty(t, cfg.Labels, "unreadable config degrades to defaults")
}

func TestLoadMachine_UpdateCommands(t *testing.T) {
	env := testutil.NewEnv(t)
	env.WriteMachineConfig(`
labels = []

[update]
commands = ["mise install", "brew upgrade"]
`)

	cfg, err := config.LoadMachine(filepath.Join(env.Root, "config.toml"))
	require.NoError(t, err)

	assert.Equal(t, []string{"mise install", "brew upgrade"}, cfg.Update.Commands)
}
