package format

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/okay-you-very-pro/oyvp/internal/domain"
	"github.com/okay-you-very-pro/oyvp/internal/roster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var both = []domain.TeamSide{domain.TeamAllies, domain.TeamEnemies}

func TestParseType(t *testing.T) {
	tests := []struct {
		in   string
		want FormatterType
		ok   bool
	}{
		{"", FormatterTypeTable, true},
		{"TABLE", FormatterTypeTable, true},
		{" json ", FormatterTypeJSON, true},
		{"compact", FormatterTypeCompact, true},
		{"yaml", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseType(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewFormatter(t *testing.T) {
	assert.IsType(t, &TableFormatter{}, NewFormatter(FormatterTypeTable))
	assert.IsType(t, &CompactFormatter{}, NewFormatter(FormatterTypeCompact))
	assert.IsType(t, &JSONFormatter{}, NewFormatter(FormatterTypeJSON))
	assert.IsType(t, &TableFormatter{}, NewFormatter("unknown"))
}

func TestTableFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTableFormatter().FormatMatchup(roster.SampleMatchup(), both, &buf))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "ALLIES (12)\n"))
	assert.Contains(t, out, "ENEMIES (12)")
	for _, col := range PlayerColumns {
		assert.Contains(t, out, col)
	}
	assert.Contains(t, out, "Alpha")
	assert.Contains(t, out, "50.0%")
	assert.Contains(t, out, "84849")
}

func TestTableFormatterSingleTeam(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTableFormatter().FormatMatchup(roster.SampleMatchup(), []domain.TeamSide{domain.TeamEnemies}, &buf))

	assert.NotContains(t, buf.String(), "ALLIES")
	assert.NotContains(t, buf.String(), "Alpha")
	assert.Contains(t, buf.String(), "Golf")
}

func TestCompactFormatter(t *testing.T) {
	m := roster.SampleMatchup()
	var buf bytes.Buffer
	require.NoError(t, NewCompactFormatter().FormatMatchup(m, both, &buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 24)
	assert.Equal(t, "allies\t"+m.Allies.Players[0].Summary(), lines[0])
	assert.Equal(t, "enemies\t"+m.Enemies.Players[11].Summary(), lines[23])
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONFormatter().FormatMatchup(roster.SampleMatchup(), both, &buf))

	var decoded []jsonTeam
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "allies", decoded[0].Side)
	assert.Equal(t, "enemies", decoded[1].Side)
	require.Len(t, decoded[0].Players, 12)
	assert.Equal(t, "Alpha", decoded[0].Players[0].Name)
	assert.Equal(t, 49.96, decoded[0].Players[0].WinRate)
}

func TestPlayerRow(t *testing.T) {
	row := playerRow(domain.Player{Name: "n", ShipName: "s", PR: 1, Battles: 2, WinRate: 3.14, ShipBattles: 4, ShipWinRate: 5, AvgDamage: 6.6, Frags: 1})
	assert.Equal(t, []string{"n", "s", "1", "2", "3.1%", "4", "5.0%", "7", "1"}, row)
}
