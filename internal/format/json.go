package format

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/okay-you-very-pro/oyvp/internal/domain"
)

type jsonPlayer struct {
	Name        string  `json:"name"`
	Ship        string  `json:"ship"`
	PR          int     `json:"pr"`
	Battles     int     `json:"battles"`
	WinRate     float64 `json:"win_rate"`
	ShipBattles int     `json:"ship_battles"`
	ShipWinRate float64 `json:"ship_win_rate"`
	AvgDamage   float64 `json:"avg_damage"`
	Frags       float64 `json:"frags"`
}

type jsonTeam struct {
	Side    string       `json:"side"`
	Players []jsonPlayer `json:"players"`
}

// JSONFormatter prints the selected teams as an indented JSON array.
type JSONFormatter struct{}

// NewJSONFormatter returns a JSONFormatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// FormatMatchup implements Formatter.
func (f *JSONFormatter) FormatMatchup(m domain.Matchup, sides []domain.TeamSide, w io.Writer) error {
	teams := selectTeams(m, sides)
	out := make([]jsonTeam, 0, len(teams))
	for _, team := range teams {
		jt := jsonTeam{Side: team.Side.String(), Players: make([]jsonPlayer, 0, len(team.Players))}
		for _, p := range team.Players {
			jt.Players = append(jt.Players, jsonPlayer{
				Name:        p.Name,
				Ship:        p.ShipName,
				PR:          p.PR,
				Battles:     p.Battles,
				WinRate:     p.WinRate,
				ShipBattles: p.ShipBattles,
				ShipWinRate: p.ShipWinRate,
				AvgDamage:   p.AvgDamage,
				Frags:       p.Frags,
			})
		}
		out = append(out, jt)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode matchup: %w", err)
	}
	return nil
}
