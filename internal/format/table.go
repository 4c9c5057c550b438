package format

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/okay-you-very-pro/oyvp/internal/domain"
)

// PlayerColumns are the table headers, in order.
var PlayerColumns = []string{"NAME", "SHIP", "PR", "BATTLES", "WR", "SHIP BATTLES", "SHIP WR", "AVG DMG", "FRAGS"}

// TableFormatter draws each team as a bordered table.
type TableFormatter struct {
	Border lipgloss.Border
}

// NewTableFormatter returns a TableFormatter with a normal border.
func NewTableFormatter() *TableFormatter {
	return &TableFormatter{Border: lipgloss.NormalBorder()}
}

// FormatMatchup implements Formatter.
func (f *TableFormatter) FormatMatchup(m domain.Matchup, sides []domain.TeamSide, w io.Writer) error {
	for i, team := range selectTeams(m, sides) {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%s (%d)\n%s\n", strings.ToUpper(team.Side.String()), len(team.Players), f.table(team).Render()); err != nil {
			return err
		}
	}
	return nil
}

func (f *TableFormatter) table(team domain.Team) *table.Table {
	rows := make([][]string, 0, len(team.Players))
	for _, p := range team.Players {
		rows = append(rows, playerRow(p))
	}

	return table.New().
		Border(f.Border).
		Headers(PlayerColumns...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return style.Bold(true)
			}
			return style
		})
}

func playerRow(p domain.Player) []string {
	return []string{
		p.Name,
		p.ShipName,
		strconv.Itoa(p.PR),
		strconv.Itoa(p.Battles),
		percent(p.WinRate),
		strconv.Itoa(p.ShipBattles),
		percent(p.ShipWinRate),
		fmt.Sprintf("%.0f", p.AvgDamage),
		strconv.FormatFloat(p.Frags, 'f', -1, 64),
	}
}

func percent(rate float64) string {
	return fmt.Sprintf("%.1f%%", rate)
}
