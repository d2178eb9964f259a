// Package config loads the server binding and the player roster.
package config

import (
	"fmt"
	"log/slog"
	"net"
	"os"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// MaxPlayers caps the roster size.
const MaxPlayers = 12

// MinKeyLength is the shortest accepted per-player secret.
const MinKeyLength = 16

// Server holds the network binding.
type Server struct {
	Address  string `toml:"address"`
	Port     uint16 `toml:"port"`
	LogLevel string `toml:"log_level"`
}

type serverFile struct {
	Server Server `toml:"server"`
}

// DefaultServer returns the server config defaults.
func DefaultServer() Server {
	return Server{
		Address:  "127.0.0.1",
		Port:     5119,
		LogLevel: "info",
	}
}

// LoadServer reads and validates the server config.
func LoadServer(path string) (Server, error) {
	cfg := serverFile{Server: DefaultServer()}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Server{}, fmt.Errorf("loading server config %s: %w", path, err)
	}
	if ip := net.ParseIP(cfg.Server.Address); ip == nil || ip.To4() == nil {
		return Server{}, fmt.Errorf("server config: %q is not an IPv4 address", cfg.Server.Address)
	}
	if cfg.Server.Port == 0 {
		return Server{}, fmt.Errorf("server config: port must be set")
	}
	return cfg.Server, nil
}

// Player is one roster entry.
type Player struct {
	Name           string `yaml:"name"`
	Key            string `yaml:"key"`
	PlayerID       uint64 `yaml:"player_id"`
	Team           string `yaml:"team"` // Order | Chaos
	Champion       string `yaml:"champion"`
	SkinID         uint32 `yaml:"skin_id"`
	SummonerLevel  uint16 `yaml:"summoner_level"`
	SummonerSpell0 uint32 `yaml:"summoner_spell0"`
	SummonerSpell1 uint32 `yaml:"summoner_spell1"`
	ProfileIcon    int32  `yaml:"profile_icon"`
}

type playersFile struct {
	Players []Player `yaml:"players"`
}

// LoadPlayers reads and validates the roster. Rosters above MaxPlayers
// are truncated with a warning.
func LoadPlayers(path string) ([]Player, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading players config %s: %w", path, err)
	}
	var file playersFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parsing players config %s: %w", path, err)
	}
	players := file.Players
	if len(players) == 0 {
		return nil, fmt.Errorf("players config %s: roster is empty", path)
	}
	if len(players) > MaxPlayers {
		slog.Warn("player roster truncated", "configured", len(players), "max", MaxPlayers)
		players = players[:MaxPlayers]
	}

	seen := make(map[uint64]int, len(players))
	for i, p := range players {
		if len(p.Key) < MinKeyLength {
			return nil, fmt.Errorf("player %q: key must be at least %d characters", p.Name, MinKeyLength)
		}
		if p.Team != "Order" && p.Team != "Chaos" {
			return nil, fmt.Errorf("player %q: team must be Order or Chaos, got %q", p.Name, p.Team)
		}
		if prev, dup := seen[p.PlayerID]; dup {
			return nil, fmt.Errorf("players %q and %q share player_id %d",
				players[prev].Name, p.Name, p.PlayerID)
		}
		seen[p.PlayerID] = i
	}
	return players, nil
}

// ParseLogLevel maps a config log level string onto slog.
func ParseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
