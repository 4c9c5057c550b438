package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/okay-you-very-pro/oyvp/internal/config"
	"github.com/okay-you-very-pro/oyvp/internal/logging"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupEnv(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(tmp, "state"))
	t.Setenv("HOME", tmp)
	return tmp
}

func TestSetupStartsFileLogging(t *testing.T) {
	tmp := setupEnv(t)
	t.Cleanup(func() { _ = logging.ShutdownGlobal() })

	c := &cobra.Command{Use: "inspect"}
	require.NoError(t, setup(c, nil))

	path := logging.CurrentLogFile()
	require.NotEmpty(t, path)
	assert.Equal(t, filepath.Join(tmp, "state", config.AppName, "logs"), filepath.Dir(path))

	require.NoError(t, teardown(c, nil))
	assert.Empty(t, logging.CurrentLogFile())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "command started")
	assert.Contains(t, string(data), "command finished")
}

func TestSetupHonoursDisabledLogging(t *testing.T) {
	setupEnv(t)
	t.Setenv("OYVP_LOGGING_ENABLED", "false")
	t.Cleanup(func() { _ = logging.ShutdownGlobal() })

	require.NoError(t, setup(&cobra.Command{Use: "inspect"}, nil))
	assert.Empty(t, logging.CurrentLogFile())
}

func TestCommandName(t *testing.T) {
	parent := &cobra.Command{Use: "oyvp"}
	child := &cobra.Command{Use: "players"}
	parent.AddCommand(child)

	assert.Equal(t, "oyvp players", commandName(child))
	assert.NotEmpty(t, commandName(nil))
}

func TestRootCommandMetadata(t *testing.T) {
	assert.Equal(t, "oyvp", RootCmd.Use)
	assert.NotEmpty(t, RootCmd.Version)
	assert.True(t, RootCmd.SilenceUsage)
}
