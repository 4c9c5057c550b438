package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/okay-you-very-pro/oyvp/cmd"
	"github.com/okay-you-very-pro/oyvp/internal/colors"
	"github.com/okay-you-very-pro/oyvp/internal/errors"
	"github.com/okay-you-very-pro/oyvp/internal/settings"
	"github.com/spf13/cobra"
)

type settingsClient interface {
	SettingsStore() *settings.Store
}

const (
	settingsCommandLong = `Manage the persisted viewer settings (window size and game folder).

USAGE:
    oyvp settings <subcommand>

SUBCOMMANDS:
    show     Display current settings
    reset    Reset settings to defaults
    path     Print the settings file location

EXAMPLES:
    # Show current settings
    oyvp settings show

    # Reset settings without confirmation
    oyvp settings reset --force`
	resetCommandLong = `Reset settings to defaults by deleting the settings file.

USAGE:
    oyvp settings reset [OPTIONS]

OPTIONS:
    --force    Reset without confirmation
    -h, --help Show this help`
	showCommandLong = `Display current settings in JSON format, together with the
file they were read from and how they were obtained (loaded, defaulted,
or defaulted because the file could not be used).

USAGE:
    oyvp settings show`
)

// settingsView is the JSON document printed by settings show.
type settingsView struct {
	Path      string            `json:"path"`
	Outcome   string            `json:"outcome"`
	Settings  settings.Settings `json:"settings"`
	ReplayDir string            `json:"replay_dir,omitempty"`
}

// NewSettingsCmd creates the settings command with explicit dependencies.
func NewSettingsCmd(client settingsClient) *cobra.Command {
	if client == nil {
		panic("NewSettingsCmd: client dependency cannot be nil")
	}

	settingsCmd := &cobra.Command{
		Use:   "settings",
		Short: "Manage viewer settings",
		Long:  settingsCommandLong,
	}

	settingsCmd.AddCommand(newShowCmd(client))
	settingsCmd.AddCommand(newResetCmd(client))
	settingsCmd.AddCommand(newPathCmd(client))

	return settingsCmd
}

func newShowCmd(client settingsClient) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display current settings",
		Long:  showCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShowCmd(client, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
}

func newResetCmd(client settingsClient) *cobra.Command {
	var resetForce bool
	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset settings to defaults",
		Long:  resetCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResetCmd(client, resetForce, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	resetCmd.Flags().BoolVar(&resetForce, "force", false, "Reset without confirmation")
	return resetCmd
}

func newPathCmd(client settingsClient) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the settings file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), client.SettingsStore().Path())
			return err
		},
	}
}

// runShowCmd prints the settings as JSON. An unusable file is reported on
// stderr but still shows the defaults in effect.
func runShowCmd(client settingsClient, out, errOut io.Writer) error {
	store := client.SettingsStore()
	current, result := store.Load()
	errors.ReportLoad(errors.NewCLIHandler(out, errOut), result)

	view := settingsView{
		Path:     store.Path(),
		Outcome:  result.Outcome.String(),
		Settings: current,
	}
	if dir, ok := settings.ReplayDir(current); ok {
		view.ReplayDir = dir
	}

	data, err := json.MarshalIndent(view, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}

// runResetCmd deletes the settings file after confirmation.
func runResetCmd(client settingsClient, force bool, in io.Reader, out io.Writer) error {
	// Skip confirmation if --force flag is set or running in CI
	if !force && os.Getenv("CI") == "" {
		if !confirmReset(in, out) {
			colors.Info("Operation cancelled")
			return nil
		}
	}

	if err := client.SettingsStore().Reset(); err != nil {
		return fmt.Errorf("failed to reset settings: %w", err)
	}

	colors.Success("Settings reset to defaults")
	return nil
}

// confirmReset asks the user for confirmation before resetting settings.
func confirmReset(in io.Reader, out io.Writer) bool {
	reader := bufio.NewReader(in)
	fmt.Fprint(out, "Are you sure you want to reset all settings to defaults? (y/N): ")
	answer, err := reader.ReadString('\n')
	if err != nil && answer == "" {
		// If we can't read, assume no
		return false
	}
	answer = strings.TrimSpace(strings.ToLower(answer))
	return answer == "y" || answer == "yes"
}

func init() {
	cmd.RootCmd.AddCommand(NewSettingsCmd(coreClient))
}
