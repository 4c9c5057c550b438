package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/okay-you-very-pro/oyvp/cmd"
	"github.com/okay-you-very-pro/oyvp/internal/logging"
	"github.com/okay-you-very-pro/oyvp/internal/roster"
	"github.com/okay-you-very-pro/oyvp/internal/settings"
	"github.com/okay-you-very-pro/oyvp/internal/storage"
	"github.com/okay-you-very-pro/oyvp/internal/tui/state"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClient serves a temp-dir settings store and the static roster.
type fakeClient struct {
	store     *settings.Store
	rosterErr error
	opened    int
}

func newFakeClient(t *testing.T) *fakeClient {
	t.Helper()
	path := filepath.Join(t.TempDir(), "okay-you-very-pro", settings.SettingsFilename)
	return &fakeClient{store: settings.NewStore(path, settings.WithLogger(logging.Noop()))}
}

func (f *fakeClient) SettingsStore() *settings.Store { return f.store }

func (f *fakeClient) OpenRoster(ctx context.Context) (storage.Roster, error) {
	f.opened++
	if f.rosterErr != nil {
		return nil, f.rosterErr
	}
	return roster.NewStatic(), nil
}

func (f *fakeClient) Version() string { return "1.2.3+abc" }

func execute(t *testing.T, c *cobra.Command, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	c.SetOut(&out)
	c.SetErr(&out)
	c.SetIn(strings.NewReader(stdin))
	c.SetArgs(args)
	err := c.Execute()
	return out.String(), err
}

func TestSettingsShowDefaults(t *testing.T) {
	client := newFakeClient(t)

	out, err := execute(t, NewSettingsCmd(client), "", "show")
	require.NoError(t, err)

	var view settingsView
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.Equal(t, "defaulted", view.Outcome)
	assert.Equal(t, client.store.Path(), view.Path)
	assert.Equal(t, settings.DefaultSettings(), view.Settings)
	assert.Empty(t, view.ReplayDir)
}

func TestSettingsShowWarnsAboutUnreadableFile(t *testing.T) {
	client := newFakeClient(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(client.store.Path()), 0o755))
	require.NoError(t, os.WriteFile(client.store.Path(), []byte("window_width = ["), 0o644))

	c := NewSettingsCmd(client)
	var out, errOut bytes.Buffer
	c.SetOut(&out)
	c.SetErr(&errOut)
	c.SetArgs([]string{"show"})
	require.NoError(t, c.Execute())

	var view settingsView
	require.NoError(t, json.Unmarshal(out.Bytes(), &view), "stdout stays valid JSON")
	assert.Equal(t, "defaulted-on-error", view.Outcome)
	assert.Equal(t, settings.DefaultSettings(), view.Settings)
	assert.Contains(t, errOut.String(), "Warning:")
	assert.Contains(t, errOut.String(), client.store.Path())
}

func TestSettingsShowSavedRecord(t *testing.T) {
	client := newFakeClient(t)
	game := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(game, settings.ReplaysDirName), 0o755))
	record := settings.DefaultSettings().WithSize(640, 480).WithFolder(game)
	require.True(t, client.store.Save(record).OK())

	out, err := execute(t, NewSettingsCmd(client), "", "show")
	require.NoError(t, err)

	var view settingsView
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.Equal(t, "loaded", view.Outcome)
	assert.Equal(t, record, view.Settings)
	assert.Equal(t, filepath.Join(game, settings.ReplaysDirName), view.ReplayDir)
}

func TestSettingsPath(t *testing.T) {
	client := newFakeClient(t)
	out, err := execute(t, NewSettingsCmd(client), "", "path")
	require.NoError(t, err)
	assert.Equal(t, client.store.Path()+"\n", out)
}

func TestSettingsResetForce(t *testing.T) {
	client := newFakeClient(t)
	require.True(t, client.store.Save(settings.DefaultSettings().WithSize(1, 1)).OK())

	_, err := execute(t, NewSettingsCmd(client), "", "reset", "--force")
	require.NoError(t, err)

	_, statErr := os.Stat(client.store.Path())
	assert.True(t, os.IsNotExist(statErr))
}

func TestSettingsResetConfirmation(t *testing.T) {
	t.Setenv("CI", "")
	tests := []struct {
		name    string
		answer  string
		removed bool
	}{
		{name: "declined", answer: "n\n", removed: false},
		{name: "empty answer", answer: "", removed: false},
		{name: "accepted", answer: "y\n", removed: true},
		{name: "accepted long form", answer: "YES\n", removed: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newFakeClient(t)
			require.True(t, client.store.Save(settings.DefaultSettings()).OK())

			out, err := execute(t, NewSettingsCmd(client), tt.answer, "reset")
			require.NoError(t, err)
			assert.Contains(t, out, "Are you sure")

			_, statErr := os.Stat(client.store.Path())
			assert.Equal(t, tt.removed, os.IsNotExist(statErr))
		})
	}
}

func TestPlayersPrintsBothTeams(t *testing.T) {
	client := newFakeClient(t)
	out, err := execute(t, NewPlayersCmd(client), "")
	require.NoError(t, err)

	assert.Contains(t, out, "ALLIES (12)")
	assert.Contains(t, out, "ENEMIES (12)")
	assert.Contains(t, out, "Alpha")
	assert.Contains(t, out, "Xray")
	assert.Contains(t, out, "50.0%")
	assert.Equal(t, 1, client.opened)
}

func TestPlayersSingleTeam(t *testing.T) {
	client := newFakeClient(t)
	out, err := execute(t, NewPlayersCmd(client), "", "--team", "enemies")
	require.NoError(t, err)

	assert.Contains(t, out, "Golf")
	assert.NotContains(t, out, "Alpha")
	assert.NotContains(t, out, "ALLIES")
}

func TestPlayersJSON(t *testing.T) {
	client := newFakeClient(t)
	out, err := execute(t, NewPlayersCmd(client), "", "--team", "allies", "--format", "json")
	require.NoError(t, err)

	var teams []struct {
		Side    string `json:"side"`
		Players []struct {
			Name string `json:"name"`
		} `json:"players"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &teams))
	require.Len(t, teams, 1)
	assert.Equal(t, "allies", teams[0].Side)
	assert.Equal(t, "Alpha", teams[0].Players[0].Name)
}

func TestPlayersErrors(t *testing.T) {
	client := newFakeClient(t)
	_, err := execute(t, NewPlayersCmd(client), "", "--team", "spectators")
	assert.ErrorContains(t, err, "invalid team")
	_, err = execute(t, NewPlayersCmd(client), "", "--format", "yaml")
	assert.ErrorContains(t, err, "invalid format")
	assert.Equal(t, 0, client.opened)

	client.rosterErr = errors.New("db locked")
	_, err = execute(t, NewPlayersCmd(client), "")
	assert.ErrorContains(t, err, "db locked")
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, NewVersionCmd(newFakeClient(t)), "")
	require.NoError(t, err)
	assert.Equal(t, "oyvp version 1.2.3+abc\n", out)
}

func TestConstructorsRejectNilClient(t *testing.T) {
	assert.Panics(t, func() { NewSettingsCmd(nil) })
	assert.Panics(t, func() { NewPlayersCmd(nil) })
	assert.Panics(t, func() { NewVersionCmd(nil) })
}

func TestRunTUIHandsBinderToModel(t *testing.T) {
	client := newFakeClient(t)
	require.True(t, client.store.Save(settings.DefaultSettings().WithSize(333, 222)).OK())

	orig := runProgram
	t.Cleanup(func() { runProgram = orig })
	var got tea.Model
	runProgram = func(ctx context.Context, model tea.Model) error {
		got = model
		return nil
	}

	require.NoError(t, runTUI(context.Background(), client))
	m, ok := got.(*state.Model)
	require.True(t, ok, "expected *state.Model, got %T", got)
	assert.NotNil(t, m.Init())
	assert.Equal(t, 1, client.opened)
}

func TestRunTUIErrors(t *testing.T) {
	orig := runProgram
	t.Cleanup(func() { runProgram = orig })

	client := newFakeClient(t)
	client.rosterErr = errors.New("no roster")
	runProgram = func(context.Context, tea.Model) error { return nil }
	assert.ErrorContains(t, runTUI(context.Background(), client), "no roster")

	client = newFakeClient(t)
	runProgram = func(context.Context, tea.Model) error { return errors.New("no tty") }
	assert.ErrorContains(t, runTUI(context.Background(), client), "no tty")
}

func TestRootRegistersSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range cmd.RootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"settings", "players", "version"} {
		assert.True(t, names[want], "missing %s", want)
	}
	assert.NotNil(t, cmd.RootCmd.RunE)
}
