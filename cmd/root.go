// Package cmd holds the root command shared by the oyvp binary's subcommands.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/okay-you-very-pro/oyvp/internal/colors"
	"github.com/okay-you-very-pro/oyvp/internal/config"
	"github.com/okay-you-very-pro/oyvp/internal/logging"
	"github.com/okay-you-very-pro/oyvp/internal/version"
	"github.com/spf13/cobra"
)

// RootCmd is the base command. Without a subcommand it opens the viewer.
var RootCmd = &cobra.Command{
	Use:   "oyvp",
	Short: "Player statistics viewer for both teams of a match.",
	Long: `okay-you-very-pro shows the players of both teams side by side with their
account and ship statistics. Window size and the selected game folder are
remembered between runs.`,
	SilenceUsage:       true,
	SilenceErrors:      true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

// Execute runs the root command and reports any error on stderr.
func Execute() error {
	err := RootCmd.Execute()
	if err != nil {
		colors.Error(err.Error())
		_ = logging.ShutdownGlobal()
	}
	return err
}

func init() {
	RootCmd.Version = version.String()
	RootCmd.CompletionOptions.HiddenDefaultCmd = true
}

// setup loads configuration and starts file logging before any command runs.
func setup(cmd *cobra.Command, args []string) error {
	config.Load()
	colors.SetDebug(config.GetBool("debug", false))
	colors.SetQuiet(config.GetBool("quiet", false))

	if err := logging.InitGlobal(commandName(cmd)); err != nil {
		// Logging is best effort; the viewer still runs without a log file.
		colors.Warning(fmt.Sprintf("file logging disabled: %v", err))
		return nil
	}
	logging.Info("command started", "args", args)
	return nil
}

func teardown(cmd *cobra.Command, args []string) error {
	logging.Info("command finished")
	return logging.ShutdownGlobal()
}

func commandName(cmd *cobra.Command) string {
	if cmd == nil {
		return filepath.Base(os.Args[0])
	}
	return cmd.CommandPath()
}
