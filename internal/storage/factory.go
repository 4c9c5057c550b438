// Package storage selects and opens the roster backend.
package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/okay-you-very-pro/oyvp/internal/colors"
	"github.com/okay-you-very-pro/oyvp/internal/config"
	"github.com/okay-you-very-pro/oyvp/internal/domain"
	"github.com/okay-you-very-pro/oyvp/internal/roster"
	"github.com/okay-you-very-pro/oyvp/internal/storage/sqlite"
)

const (
	// BackendSQLite selects the SQLite roster database.
	BackendSQLite = "sqlite"
	// BackendStatic selects the built-in sample matchup held in memory.
	BackendStatic = "static"
)

// Roster is a roster repository that may hold open resources.
type Roster interface {
	domain.RosterRepository
	Close() error
}

var (
	_ Roster = (*sqlite.RosterStore)(nil)
	_ Roster = (*roster.StaticRepository)(nil)
)

// NewRosterFromConfig opens the roster backend named by configuration.
func NewRosterFromConfig(ctx context.Context) (Roster, error) {
	backend := config.Get("roster_backend", BackendSQLite)
	dbPath := config.Get("roster_db_path", "")
	return NewRosterForBackend(ctx, backend, dbPath)
}

// NewRosterForBackend opens the named backend. A SQLite database that cannot
// be opened or seeded falls back to the static roster with a warning.
func NewRosterForBackend(ctx context.Context, backend, dbPath string) (Roster, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", BackendSQLite:
		store, err := sqlite.NewRosterStore(dbPath)
		if err != nil {
			colors.Warning(fmt.Sprintf("failed to open roster database, using built-in roster: %v", err))
			return roster.NewStatic(), nil
		}
		seeded, err := store.SeedIfEmpty(ctx, roster.SampleMatchup())
		if err != nil {
			_ = store.Close()
			colors.Warning(fmt.Sprintf("failed to seed roster database, using built-in roster: %v", err))
			return roster.NewStatic(), nil
		}
		if seeded {
			colors.Debug("seeded roster database at " + dbPath)
		}
		return store, nil
	case BackendStatic:
		return roster.NewStatic(), nil
	default:
		return nil, fmt.Errorf("unknown roster backend %q", backend)
	}
}
