package domain

import (
	"context"
	"errors"
)

// ErrRosterEmpty is returned when no players are stored.
var ErrRosterEmpty = errors.New("roster is empty")

// RosterRepository provides the two teams to display.
type RosterRepository interface {
	// Matchup returns both teams ordered by slot.
	Matchup(ctx context.Context) (Matchup, error)
}
