package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadServer(t *testing.T) {
	path := writeFile(t, "server.toml", `
[server]
address = "0.0.0.0"
port = 5119
log_level = "debug"
`)
	cfg, err := LoadServer(path)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0", cfg.Address)
	assert.Equal(t, uint16(5119), cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadServerRejectsBadAddress(t *testing.T) {
	path := writeFile(t, "server.toml", `
[server]
address = "not-an-ip"
port = 5119
`)
	_, err := LoadServer(path)
	assert.Error(t, err)
}

func TestLoadPlayers(t *testing.T) {
	path := writeFile(t, "players.yaml", `
players:
  - name: "PlayerOne"
    key: "17BLOhi6KZsTtldTsizvHg=="
    player_id: 100
    team: "Order"
    champion: "Nasus"
    skin_id: 2
    summoner_level: 30
    summoner_spell0: 101
    summoner_spell1: 102
    profile_icon: 7
  - name: "PlayerTwo"
    key: "KZsTtldTsizvHg==17BLOhi6"
    player_id: 200
    team: "Chaos"
    champion: "Annie"
    skin_id: 0
    summoner_level: 30
    summoner_spell0: 101
    summoner_spell1: 102
    profile_icon: 0
`)
	players, err := LoadPlayers(path)
	require.NoError(t, err)
	require.Len(t, players, 2)
	assert.Equal(t, uint64(100), players[0].PlayerID)
	assert.Equal(t, "Order", players[0].Team)
	assert.Equal(t, "Annie", players[1].Champion)
}

func TestLoadPlayersRejectsShortKey(t *testing.T) {
	path := writeFile(t, "players.yaml", `
players:
  - name: "PlayerOne"
    key: "short"
    player_id: 100
    team: "Order"
    champion: "Nasus"
`)
	_, err := LoadPlayers(path)
	assert.Error(t, err)
}

func TestLoadPlayersRejectsDuplicateIDs(t *testing.T) {
	path := writeFile(t, "players.yaml", `
players:
  - name: "PlayerOne"
    key: "17BLOhi6KZsTtldTsizvHg=="
    player_id: 100
    team: "Order"
    champion: "Nasus"
  - name: "PlayerTwo"
    key: "17BLOhi6KZsTtldTsizvHg=="
    player_id: 100
    team: "Chaos"
    champion: "Annie"
`)
	_, err := LoadPlayers(path)
	assert.Error(t, err)
}

func TestLoadPlayersRejectsBadTeam(t *testing.T) {
	path := writeFile(t, "players.yaml", `
players:
  - name: "PlayerOne"
    key: "17BLOhi6KZsTtldTsizvHg=="
    player_id: 100
    team: "Neutral"
    champion: "Nasus"
`)
	_, err := LoadPlayers(path)
	assert.Error(t, err)
}

func TestLoadPlayersTruncatesRoster(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("players:\n")
	for i := 0; i < 14; i++ {
		team := "Order"
		if i%2 == 1 {
			team = "Chaos"
		}
		fmt.Fprintf(&sb, `  - name: "P%d"
    key: "17BLOhi6KZsTtldTsizvHg=="
    player_id: %d
    team: %q
    champion: "Nasus"
`, i, 100+i, team)
	}
	path := writeFile(t, "players.yaml", sb.String())
	players, err := LoadPlayers(path)
	require.NoError(t, err)
	assert.Len(t, players, MaxPlayers)
}
