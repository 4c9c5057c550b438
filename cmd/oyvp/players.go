package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/okay-you-very-pro/oyvp/cmd"
	"github.com/okay-you-very-pro/oyvp/internal/domain"
	"github.com/okay-you-very-pro/oyvp/internal/format"
	"github.com/okay-you-very-pro/oyvp/internal/storage"
	"github.com/spf13/cobra"
)

type rosterClient interface {
	OpenRoster(ctx context.Context) (storage.Roster, error)
}

const playersCommandLong = `Print both teams.

USAGE:
    oyvp players [OPTIONS]

OPTIONS:
    --team <side>     Only print one team: allies, enemies or all (default: all)
    --format <type>   Output format: table, compact or json (default: table)
    -h, --help        Show this help`

// NewPlayersCmd creates the players command with explicit dependencies.
func NewPlayersCmd(client rosterClient) *cobra.Command {
	if client == nil {
		panic("NewPlayersCmd: client dependency cannot be nil")
	}

	var team, formatName string
	playersCmd := &cobra.Command{
		Use:   "players",
		Short: "Print both teams",
		Long:  playersCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlayersCmd(cmd.Context(), client, team, formatName, cmd.OutOrStdout())
		},
	}
	playersCmd.Flags().StringVar(&team, "team", "all", "Team to print: allies, enemies or all")
	playersCmd.Flags().StringVar(&formatName, "format", "table", "Output format: table, compact or json")
	return playersCmd
}

func runPlayersCmd(ctx context.Context, client rosterClient, team, formatName string, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	var sides []domain.TeamSide
	switch strings.ToLower(strings.TrimSpace(team)) {
	case "", "all":
		sides = []domain.TeamSide{domain.TeamAllies, domain.TeamEnemies}
	case "allies":
		sides = []domain.TeamSide{domain.TeamAllies}
	case "enemies":
		sides = []domain.TeamSide{domain.TeamEnemies}
	default:
		return fmt.Errorf("invalid team %q: must be one of allies, enemies, all", team)
	}

	formatter, ok := format.ParseType(formatName)
	if !ok {
		return fmt.Errorf("invalid format %q: must be one of table, compact, json", formatName)
	}

	roster, err := client.OpenRoster(ctx)
	if err != nil {
		return fmt.Errorf("failed to open roster: %w", err)
	}
	defer roster.Close()

	matchup, err := roster.Matchup(ctx)
	if err != nil {
		return fmt.Errorf("failed to load players: %w", err)
	}

	return format.NewFormatter(formatter).FormatMatchup(matchup, sides, out)
}

func init() {
	cmd.RootCmd.AddCommand(NewPlayersCmd(coreClient))
}
