// Package format renders a matchup for CLI output in several styles.
package format

import (
	"io"
	"strings"

	"github.com/okay-you-very-pro/oyvp/internal/domain"
)

// Formatter writes the selected teams of a matchup to a writer.
type Formatter interface {
	FormatMatchup(m domain.Matchup, sides []domain.TeamSide, writer io.Writer) error
}

// FormatterType represents the type of formatter to use.
type FormatterType string

const (
	// FormatterTypeTable draws one bordered table per team.
	FormatterTypeTable FormatterType = "table"

	// FormatterTypeCompact prints one summary line per player.
	FormatterTypeCompact FormatterType = "compact"

	// FormatterTypeJSON prints the teams as a JSON document.
	FormatterTypeJSON FormatterType = "json"
)

// ParseType normalizes a user supplied format name. ok is false for unknown names.
func ParseType(name string) (FormatterType, bool) {
	switch t := FormatterType(strings.ToLower(strings.TrimSpace(name))); t {
	case "":
		return FormatterTypeTable, true
	case FormatterTypeTable, FormatterTypeCompact, FormatterTypeJSON:
		return t, true
	default:
		return "", false
	}
}

// NewFormatter creates a new formatter of the specified type.
func NewFormatter(formatterType FormatterType) Formatter {
	switch formatterType {
	case FormatterTypeCompact:
		return NewCompactFormatter()
	case FormatterTypeJSON:
		return NewJSONFormatter()
	default:
		// Default to table formatter for unknown types
		return NewTableFormatter()
	}
}

// selectTeams returns the teams named by sides, in order.
func selectTeams(m domain.Matchup, sides []domain.TeamSide) []domain.Team {
	teams := make([]domain.Team, 0, len(sides))
	for _, side := range sides {
		switch side {
		case domain.TeamAllies:
			teams = append(teams, m.Allies)
		case domain.TeamEnemies:
			teams = append(teams, m.Enemies)
		}
	}
	return teams
}
