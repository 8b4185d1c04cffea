package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ravenor/mistvale/internal/game/combat"
)

// CombatConfig holds the pvp ruleset knobs.
type CombatConfig struct {
	PvpEnabled             bool `yaml:"pvp_enabled"`
	FightTimerSeconds      int  `yaml:"fight_timer_seconds"`
	WhiteSkullTimerSeconds int  `yaml:"white_skull_timer_seconds"`
}

// Rules converts the config values into the combat ruleset.
func (c CombatConfig) Rules() combat.CombatRules {
	return combat.CombatRules{
		PvpEnabled:      c.PvpEnabled,
		FightTimer:      time.Duration(c.FightTimerSeconds) * time.Second,
		WhiteSkullTimer: time.Duration(c.WhiteSkullTimerSeconds) * time.Second,
	}
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// GameServer holds all configuration for the game server.
type GameServer struct {
	// Simulation
	TickMillis int `yaml:"tick_millis"`

	// Combat ruleset
	Combat CombatConfig `yaml:"combat"`

	// Spell lookup diagnostics
	SpellLookupDebug bool `yaml:"spell_lookup_debug"`

	// Persistence
	Database        DatabaseConfig `yaml:"database"`
	AutosaveSeconds int            `yaml:"autosave_seconds"`

	// Logging
	LogLevel string `yaml:"log_level"` // debug, info, warn, error
}

// TickLength returns the simulation step as a duration.
func (g GameServer) TickLength() time.Duration {
	return time.Duration(g.TickMillis) * time.Millisecond
}

// AutosaveInterval returns the autosave period as a duration.
func (g GameServer) AutosaveInterval() time.Duration {
	return time.Duration(g.AutosaveSeconds) * time.Second
}

// DefaultGameServer returns GameServer config with sensible defaults.
func DefaultGameServer() GameServer {
	return GameServer{
		TickMillis: 50,
		Combat: CombatConfig{
			PvpEnabled:             true,
			FightTimerSeconds:      60,
			WhiteSkullTimerSeconds: 60,
		},
		AutosaveSeconds: 60,
		LogLevel:        "info",
		Database: DatabaseConfig{
			Enabled:  false,
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "mistvale",
			Password: "mistvale",
			DBName:   "mistvale",
			SSLMode:  "disable",
		},
	}
}

// LoadGameServer loads game server config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadGameServer(path string) (GameServer, error) {
	cfg := DefaultGameServer()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}
