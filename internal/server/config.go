package server

import (
	"os"
	"strconv"
	"time"

	"github.com/verdict-game/verdict-backend/internal"
)

// Config holds the runtime settings for the process: listen port, room
// sizing policy, and the idle-room sweep interval.
type Config struct {
	Port              string
	MinPlayersToStart int
	MaxPlayersPerRoom int
	ReaperInterval    time.Duration
}

func defaultConfig() Config {
	return Config{
		Port:              ":8080",
		MinPlayersToStart: internal.DefaultMinPlayersToStart,
		MaxPlayersPerRoom: internal.DefaultMaxPlayersPerRoom,
		ReaperInterval:    internal.DefaultReaperInterval,
	}
}

// NewConfig creates a Config populated with default values for all settings.
func NewConfig() *Config {
	cfg := defaultConfig()
	return &cfg
}

// NewConfigFromEnv creates a Config from environment variables, falling back
// to defaults for anything unset or unparsable.
func NewConfigFromEnv() *Config {
	cfg := defaultConfig()

	if port := os.Getenv("SERVER_PORT"); port != "" {
		if port[0] != ':' {
			port = ":" + port
		}
		cfg.Port = port
	}

	if min := os.Getenv("MIN_PLAYERS_TO_START"); min != "" {
		cfg.MinPlayersToStart = parseIntValue(min, cfg.MinPlayersToStart)
	}

	if max := os.Getenv("MAX_PLAYERS_PER_ROOM"); max != "" {
		cfg.MaxPlayersPerRoom = parseIntValue(max, cfg.MaxPlayersPerRoom)
	}

	if interval := os.Getenv("REAPER_INTERVAL_SECONDS"); interval != "" {
		cfg.ReaperInterval = parseSecondsValue(interval, cfg.ReaperInterval)
	}

	return &cfg
}

func parseIntValue(value string, defaultValue int) int {
	if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
		return parsed
	}
	return defaultValue
}

func parseSecondsValue(value string, defaultValue time.Duration) time.Duration {
	if seconds, err := strconv.Atoi(value); err == nil && seconds > 0 {
		return time.Duration(seconds) * time.Second
	}
	return defaultValue
}
