package format

import (
	"fmt"
	"io"

	"github.com/okay-you-very-pro/oyvp/internal/domain"
)

// CompactFormatter prints one summary line per player, prefixed with the team.
type CompactFormatter struct{}

// NewCompactFormatter returns a CompactFormatter.
func NewCompactFormatter() *CompactFormatter {
	return &CompactFormatter{}
}

// FormatMatchup implements Formatter.
func (f *CompactFormatter) FormatMatchup(m domain.Matchup, sides []domain.TeamSide, w io.Writer) error {
	for _, team := range selectTeams(m, sides) {
		for _, p := range team.Players {
			if _, err := fmt.Fprintf(w, "%s\t%s\n", team.Side, p.Summary()); err != nil {
				return err
			}
		}
	}
	return nil
}
