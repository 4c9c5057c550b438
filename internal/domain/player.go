package domain

import "fmt"

// WinRateThreshold is the win rate, in percent, at or above which a rate is positive.
const WinRateThreshold = 50.0

// Player holds one player's account and ship statistics.
type Player struct {
	Name        string
	WinRate     float64
	Battles     int
	ShipName    string
	ShipWinRate float64
	ShipBattles int
	PR          int
	AvgDamage   float64
	Frags       float64
}

// TeamSide identifies one of the two teams.
type TeamSide int

const (
	TeamAllies TeamSide = iota + 1
	TeamEnemies
)

func (s TeamSide) String() string {
	switch s {
	case TeamAllies:
		return "allies"
	case TeamEnemies:
		return "enemies"
	default:
		return "unknown"
	}
}

// Team is an ordered list of players on one side.
type Team struct {
	Side    TeamSide
	Players []Player
}

// Matchup is the pair of teams shown side by side.
type Matchup struct {
	Allies  Team
	Enemies Team
}

// WinRateTone classifies a win rate percentage.
func WinRateTone(rate float64) Tone {
	if rate >= WinRateThreshold {
		return TonePositive
	}
	return ToneNegative
}

// Summary returns a one-line description of the player.
func (p Player) Summary() string {
	return fmt.Sprintf("%s (%s) PR %d, WR %.1f%% over %d battles, ship WR %.1f%% over %d",
		p.Name, p.ShipName, p.PR, p.WinRate, p.Battles, p.ShipWinRate, p.ShipBattles)
}
