package config

import (
	jlconfig "github.com/JeremyLoy/config"
	"github.com/rotisserie/eris"
)

// Settings are the process settings read from the environment
type Settings struct {
	TPS       int     `config:"SPIDER_TPS"`        // simulation ticks per second
	Scale     int     `config:"SPIDER_SCALE"`      // window scale factor
	Tree      string  `config:"SPIDER_TREE"`       // animation tree name under animations/
	LogLevel  string  `config:"SPIDER_LOG_LEVEL"`  // zerolog level name
	IdleAfter float64 `config:"SPIDER_IDLE_AFTER"` // seconds standing before idling
}

// DefaultSettings returns the settings used when no variable is set
func DefaultSettings() Settings {
	return Settings{
		TPS:       60,
		Scale:     3,
		Tree:      "spider",
		LogLevel:  "info",
		IdleAfter: 3,
	}
}

// LoadSettings overlays environment variables on DefaultSettings
func LoadSettings() (Settings, error) {
	cfg := DefaultSettings()
	if err := jlconfig.FromEnv().To(&cfg); err != nil {
		return Settings{}, eris.Wrap(err, "failed to load settings from environment")
	}
	if cfg.TPS <= 0 {
		return Settings{}, eris.Errorf("SPIDER_TPS must be positive, got %d", cfg.TPS)
	}
	if cfg.Scale <= 0 {
		cfg.Scale = 1
	}
	return cfg, nil
}

// DeltaTime returns the seconds covered by one tick
func (s Settings) DeltaTime() float64 {
	return 1 / float64(s.TPS)
}
