package state

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/okay-you-very-pro/oyvp/internal/domain"
)

// matchupLoadedMsg carries the result of a roster read.
type matchupLoadedMsg struct {
	matchup domain.Matchup
	err     error
}

// clearStatusMsg clears the status line if no newer message replaced it.
type clearStatusMsg struct {
	seq int
}

// LoadMatchupCmd reads both teams from repo.
func LoadMatchupCmd(ctx context.Context, repo domain.RosterRepository) tea.Cmd {
	return func() tea.Msg {
		m, err := repo.Matchup(ctx)
		return matchupLoadedMsg{matchup: m, err: err}
	}
}

func clearStatusAfter(d time.Duration, seq int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}
