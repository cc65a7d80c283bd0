// Package config loads runtime settings from KLONDIKE_* environment variables
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// ErrInvalid marks a configuration value outside its allowed range
var ErrInvalid = errors.New("invalid config")

// Config holds every runtime setting; command-line flags override it in cmd/klondike
type Config struct {
	Seed         int64         `env:"KLONDIKE_SEED"`                          // 0 picks a time based seed
	TickInterval time.Duration `env:"KLONDIKE_TICK_INTERVAL" envDefault:"16ms"` // ~60 FPS
	DragDeadZone float64       `env:"KLONDIKE_DRAG_DEAD_ZONE" envDefault:"0"`   // world units

	AudioEnabled bool               `env:"KLONDIKE_AUDIO_ENABLED" envDefault:"true"`
	MasterVolume float64            `env:"KLONDIKE_MASTER_VOLUME" envDefault:"0.5"` // 0.0-1.0
	CueVolumes   map[string]float64 `env:"KLONDIKE_CUE_VOLUMES" envKeyValSeparator:":"`
	SampleRate   int                `env:"KLONDIKE_SAMPLE_RATE" envDefault:"44100"`

	Debug bool `env:"KLONDIKE_DEBUG"`
}

// Default returns the configuration used when no variables are set
func Default() *Config {
	return &Config{
		TickInterval: 16 * time.Millisecond,
		AudioEnabled: true,
		MasterVolume: 0.5,
		SampleRate:   44100,
	}
}

// ParseEnv loads configuration from environment variables
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses the environment, clamps volumes and validates the result
func Load() (*Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return nil, err
	}
	cfg.clamp()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports the first out of range value
func (c *Config) Validate() error {
	if c.TickInterval <= 0 {
		return fmt.Errorf("%w: tick interval %v", ErrInvalid, c.TickInterval)
	}
	if c.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %d", ErrInvalid, c.SampleRate)
	}
	if c.DragDeadZone < 0 {
		return fmt.Errorf("%w: drag dead zone %v", ErrInvalid, c.DragDeadZone)
	}
	return nil
}

func (c *Config) clamp() {
	c.MasterVolume = clampUnit(c.MasterVolume)
	for k, v := range c.CueVolumes {
		c.CueVolumes[k] = clampUnit(v)
	}
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
