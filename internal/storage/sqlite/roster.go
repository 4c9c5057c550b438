// Package sqlite provides a SQLite-backed roster store.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/okay-you-very-pro/oyvp/internal/domain"
	_ "modernc.org/sqlite"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS players (
	side          INTEGER NOT NULL,
	slot          INTEGER NOT NULL,
	name          TEXT    NOT NULL,
	win_rate      REAL    NOT NULL,
	battles       INTEGER NOT NULL,
	ship_name     TEXT    NOT NULL,
	ship_win_rate REAL    NOT NULL,
	ship_battles  INTEGER NOT NULL,
	pr            INTEGER NOT NULL,
	avg_damage    REAL    NOT NULL,
	frags         REAL    NOT NULL,
	PRIMARY KEY (side, slot)
);`

const insertPlayerSQL = `
INSERT INTO players (side, slot, name, win_rate, battles, ship_name, ship_win_rate, ship_battles, pr, avg_damage, frags)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

const selectPlayersSQL = `
SELECT side, name, win_rate, battles, ship_name, ship_win_rate, ship_battles, pr, avg_damage, frags
FROM players
ORDER BY side, slot`

// RosterStore implements domain.RosterRepository on top of SQLite.
type RosterStore struct {
	db *sql.DB
}

var _ domain.RosterRepository = (*RosterStore)(nil)

// NewRosterStore opens (creating if needed) the roster database at dbPath.
func NewRosterStore(dbPath string) (*RosterStore, error) {
	if strings.TrimSpace(dbPath) == "" {
		return nil, fmt.Errorf("sqlite roster: db path cannot be empty")
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("sqlite roster: create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("sqlite roster: open db: %w", err)
	}

	store := &RosterStore{db: db}
	if err := store.init(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *RosterStore) init() error {
	if _, err := s.db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		return fmt.Errorf("sqlite roster: set busy timeout: %w", err)
	}
	if _, err := s.db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("sqlite roster: create schema: %w", err)
	}
	return nil
}

// Close closes the underlying SQLite connection.
func (s *RosterStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Count returns the number of stored players.
func (s *RosterStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM players").Scan(&n); err != nil {
		return 0, fmt.Errorf("sqlite roster: count players: %w", err)
	}
	return n, nil
}

// ReplaceMatchup atomically replaces all stored players with m.
func (s *RosterStore) ReplaceMatchup(ctx context.Context, m domain.Matchup) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlite roster: begin: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, "DELETE FROM players"); err != nil {
		return fmt.Errorf("sqlite roster: clear players: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, insertPlayerSQL)
	if err != nil {
		return fmt.Errorf("sqlite roster: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, team := range []domain.Team{m.Allies, m.Enemies} {
		for slot, p := range team.Players {
			if _, err := stmt.ExecContext(ctx, int(team.Side), slot, p.Name, p.WinRate, p.Battles,
				p.ShipName, p.ShipWinRate, p.ShipBattles, p.PR, p.AvgDamage, p.Frags); err != nil {
				return fmt.Errorf("sqlite roster: insert %s: %w", p.Name, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sqlite roster: commit: %w", err)
	}
	return nil
}

// SeedIfEmpty stores m only when the table has no rows. It reports whether it seeded.
func (s *RosterStore) SeedIfEmpty(ctx context.Context, m domain.Matchup) (bool, error) {
	n, err := s.Count(ctx)
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}
	if err := s.ReplaceMatchup(ctx, m); err != nil {
		return false, err
	}
	return true, nil
}

// Matchup returns both teams ordered by slot.
func (s *RosterStore) Matchup(ctx context.Context) (domain.Matchup, error) {
	rows, err := s.db.QueryContext(ctx, selectPlayersSQL)
	if err != nil {
		return domain.Matchup{}, fmt.Errorf("sqlite roster: query players: %w", err)
	}
	defer rows.Close()

	m := domain.Matchup{
		Allies:  domain.Team{Side: domain.TeamAllies},
		Enemies: domain.Team{Side: domain.TeamEnemies},
	}
	count := 0
	for rows.Next() {
		var side int
		var p domain.Player
		if err := rows.Scan(&side, &p.Name, &p.WinRate, &p.Battles, &p.ShipName,
			&p.ShipWinRate, &p.ShipBattles, &p.PR, &p.AvgDamage, &p.Frags); err != nil {
			return domain.Matchup{}, fmt.Errorf("sqlite roster: scan player: %w", err)
		}
		switch domain.TeamSide(side) {
		case domain.TeamAllies:
			m.Allies.Players = append(m.Allies.Players, p)
		case domain.TeamEnemies:
			m.Enemies.Players = append(m.Enemies.Players, p)
		default:
			continue
		}
		count++
	}
	if err := rows.Err(); err != nil {
		return domain.Matchup{}, fmt.Errorf("sqlite roster: read players: %w", err)
	}
	if count == 0 {
		return domain.Matchup{}, domain.ErrRosterEmpty
	}
	return m, nil
}
