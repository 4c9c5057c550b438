// Package render draws the matchup as lipgloss cards. Everything here is a
// pure function of its inputs.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/okay-you-very-pro/oyvp/internal/domain"
	"github.com/okay-you-very-pro/oyvp/internal/tui/theme"
)

const (
	// Title is shown in the header.
	Title = "Okay You Very Pro"

	columnGap = 2
	// minTwoColumnWidth is the narrowest terminal that still shows teams side by side.
	minTwoColumnWidth = 80
	minCardWidth      = 24
)

// Selection identifies one player card.
type Selection struct {
	Side  domain.TeamSide
	Index int
}

// BodyState defines the inputs needed to render the team columns.
type BodyState struct {
	Matchup  domain.Matchup
	Width    int
	Selected Selection
	Theme    theme.Theme
}

// FolderState defines the inputs needed to render the folder line.
type FolderState struct {
	Folder    string
	HasFolder bool
	Accent    domain.Tone
	Width     int
	Theme     theme.Theme
}

// StatusState defines the inputs needed to render the status line.
type StatusState struct {
	Text  string
	Tone  domain.Tone
	Width int
	Theme theme.Theme
}

// Header renders the title bar.
func Header(th theme.Theme, width int) string {
	return th.Name.Width(max(width, 0)).Render(Title)
}

// FolderLine renders the selected folder in its accent tone.
func FolderLine(state FolderState) string {
	label := state.Theme.Label.Render("Folder: ")
	if !state.HasFolder {
		return label + state.Theme.Tone(state.Accent).Render("none selected")
	}
	folder := truncate(state.Folder, state.Width-lipgloss.Width(label)-len(" (missing)"))
	text := folder
	if state.Accent == domain.ToneNegative {
		text += " (missing)"
	}
	return label + state.Theme.Tone(state.Accent).Render(text)
}

// StatusLine renders a transient message, or nothing when text is empty.
func StatusLine(state StatusState) string {
	if state.Text == "" {
		return ""
	}
	return state.Theme.Tone(state.Tone).Render(truncate(state.Text, state.Width))
}

// Body renders both teams and returns the line offset of the selected card's
// first line, so callers can scroll it into view.
func Body(state BodyState) (string, int) {
	width := state.Width
	if width <= 0 {
		width = minTwoColumnWidth
	}

	if width < minTwoColumnWidth {
		colWidth := max(width, minCardWidth)
		allies, alliesOffset := column(state, state.Matchup.Allies, colWidth)
		enemies, enemiesOffset := column(state, state.Matchup.Enemies, colWidth)
		offset := alliesOffset
		if state.Selected.Side == domain.TeamEnemies {
			offset = lipgloss.Height(allies) + 1 + enemiesOffset
		}
		return lipgloss.JoinVertical(lipgloss.Left, allies, "", enemies), offset
	}

	colWidth := max((width-columnGap)/2, minCardWidth)
	allies, alliesOffset := column(state, state.Matchup.Allies, colWidth)
	enemies, enemiesOffset := column(state, state.Matchup.Enemies, colWidth)
	offset := alliesOffset
	if state.Selected.Side == domain.TeamEnemies {
		offset = enemiesOffset
	}
	gap := strings.Repeat(" ", columnGap)
	return lipgloss.JoinHorizontal(lipgloss.Top, allies, gap, enemies), offset
}

func column(state BodyState, team domain.Team, width int) (string, int) {
	parts := []string{state.Theme.Heading.Render(teamTitle(team))}
	offset := 0
	lines := lipgloss.Height(parts[0])
	for i, p := range team.Players {
		selected := state.Selected.Side == team.Side && state.Selected.Index == i
		if selected {
			offset = lines
		}
		card := Card(state.Theme, p, width, selected)
		parts = append(parts, card)
		lines += lipgloss.Height(card)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...), offset
}

func teamTitle(team domain.Team) string {
	switch team.Side {
	case domain.TeamAllies:
		return fmt.Sprintf("Allies (%d)", len(team.Players))
	case domain.TeamEnemies:
		return fmt.Sprintf("Enemies (%d)", len(team.Players))
	default:
		return fmt.Sprintf("Team (%d)", len(team.Players))
	}
}

// Card renders a single player card.
func Card(th theme.Theme, p domain.Player, width int, selected bool) string {
	style := th.Card
	if selected {
		style = th.Selected
	}
	inner := max(width-style.GetHorizontalBorderSize(), minCardWidth)

	stat := func(label, value string, tone domain.Tone) string {
		return th.Label.Render(label) + th.Tone(tone).Render(value)
	}

	lines := []string{
		th.Name.Render(p.Name) + "  " + th.Base.Render(p.ShipName),
		stat("PR: ", strconv.Itoa(p.PR), domain.ToneHighlight),
		stat("Account Battles: ", strconv.Itoa(p.Battles), domain.TonePositive) + "  " +
			stat("Account WR: ", percent(p.WinRate), domain.WinRateTone(p.WinRate)),
		stat("Ship Battles: ", strconv.Itoa(p.ShipBattles), domain.TonePositive) + "  " +
			stat("Ship WR: ", percent(p.ShipWinRate), domain.WinRateTone(p.ShipWinRate)),
		stat("Avg Damage: ", fmt.Sprintf("%.0f", p.AvgDamage), domain.ToneHighlight) + "  " +
			stat("Frags: ", strconv.FormatFloat(p.Frags, 'f', -1, 64), domain.TonePositive),
	}
	return style.Width(inner).Render(strings.Join(lines, "\n"))
}

func percent(rate float64) string {
	return fmt.Sprintf("%.1f%%", rate)
}

func truncate(s string, width int) string {
	if width <= 3 || lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	if len(runes) > width-3 {
		runes = runes[:width-3]
	}
	return string(runes) + "..."
}
