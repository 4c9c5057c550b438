package state

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/okay-you-very-pro/oyvp/internal/domain"
)

// handleKey handles keys while browsing the matchup.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
		return m, nil
	case key.Matches(msg, m.keys.Switch):
		m.switchTeam()
		return m, nil
	case key.Matches(msg, m.keys.Select):
		return m, m.showSelected()
	case key.Matches(msg, m.keys.Folder):
		return m, m.openPrompt()
	}

	// Anything else (page up/down, mouse wheel keys) scrolls the viewport.
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// handlePromptKey handles keys while the folder prompt is open.
func (m *Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.promptKeys.Cancel):
		m.closePrompt()
		return m, nil
	case key.Matches(msg, m.promptKeys.Submit):
		path := m.prompt.Value()
		m.closePrompt()
		return m, m.pickFolder(path)
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

func (m *Model) openPrompt() tea.Cmd {
	m.prompting = true
	folder, _ := m.binder.Folder()
	m.prompt.SetValue(folder)
	m.prompt.CursorEnd()
	return m.prompt.Focus()
}

func (m *Model) closePrompt() {
	m.prompting = false
	m.prompt.Blur()
	m.prompt.Reset()
}

func (m *Model) moveCursor(delta int) {
	players := m.team(m.selected.Side).Players
	if len(players) == 0 {
		return
	}
	next := m.selected.Index + delta
	if next < 0 {
		next = 0
	}
	if next >= len(players) {
		next = len(players) - 1
	}
	m.selected.Index = next
	m.refresh()
}

func (m *Model) switchTeam() {
	other := domain.TeamEnemies
	if m.selected.Side == domain.TeamEnemies {
		other = domain.TeamAllies
	}
	players := m.team(other).Players
	if len(players) == 0 {
		return
	}
	m.selected.Side = other
	if m.selected.Index >= len(players) {
		m.selected.Index = len(players) - 1
	}
	m.refresh()
}

func (m *Model) showSelected() tea.Cmd {
	p, ok := m.selectedPlayer()
	if !ok {
		return nil
	}
	m.errorHandler.Info(p.Summary())
	return m.clearStatusLater()
}
