package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/okay-you-very-pro/oyvp/cmd"
	"github.com/okay-you-very-pro/oyvp/internal/settings"
	"github.com/okay-you-very-pro/oyvp/internal/storage"
	"github.com/okay-you-very-pro/oyvp/internal/tui/state"
	"github.com/okay-you-very-pro/oyvp/internal/viewstate"
	"github.com/spf13/cobra"
)

type tuiClient interface {
	SettingsStore() *settings.Store
	OpenRoster(ctx context.Context) (storage.Roster, error)
}

// runProgram runs a bubbletea program. Tests replace it.
var runProgram = func(ctx context.Context, model tea.Model) error {
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

// runTUI loads the settings once, opens the roster and hands both to the viewer.
func runTUI(ctx context.Context, client tuiClient) error {
	if ctx == nil {
		ctx = context.Background()
	}

	binder := viewstate.New(client.SettingsStore())

	roster, err := client.OpenRoster(ctx)
	if err != nil {
		return fmt.Errorf("failed to open roster: %w", err)
	}
	defer roster.Close()

	model := state.NewModel(ctx, binder, roster)
	if err := runProgram(ctx, model); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}

func init() {
	cmd.RootCmd.Args = cobra.NoArgs
	cmd.RootCmd.RunE = func(c *cobra.Command, args []string) error {
		return runTUI(c.Context(), coreClient)
	}
}
