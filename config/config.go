// Package config loads the YAML settings shared by the frametimer hosts.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/airbornedetergent/frametimer/timer"
)

type Config struct {
	// TPS is how many host steps run per second.
	TPS int `yaml:"tps"`
	// Realtime steps by measured wall-clock frame time instead of 1/TPS.
	Realtime  bool          `yaml:"realtime"`
	Debug     bool          `yaml:"debug"`
	Format    string        `yaml:"format"`
	StateFile string        `yaml:"state_file"`
	BeepHz    float64       `yaml:"beep_hz"`
	Timers    []TimerConfig `yaml:"timers"`
}

type TimerConfig struct {
	Name      string     `yaml:"name"`
	Mode      timer.Mode `yaml:"mode"`
	Seconds   float64    `yaml:"seconds"`
	AutoStart bool       `yaml:"autostart"`
	Ascending bool       `yaml:"ascending"`
}

func DefaultConfig() *Config {
	return &Config{
		TPS:    60,
		Format: timer.DefaultFormat.Template(),
		BeepHz: 880,
		Timers: []TimerConfig{
			{Name: "countdown", Mode: timer.CountDown, Seconds: 90},
			{Name: "stopwatch", Mode: timer.CountUp, Ascending: true},
		},
	}
}

// Load reads path over the defaults. An empty path or a missing file yields
// the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// MaxTPS keeps the per-step interval of a ticker-driven host above zero.
const MaxTPS = 1000

func (c *Config) Validate() error {
	if c.TPS <= 0 || c.TPS > MaxTPS {
		return fmt.Errorf("tps must be in 1..%d, got %d", MaxTPS, c.TPS)
	}
	for i, tc := range c.Timers {
		switch tc.Mode {
		case timer.CountDown, timer.Idle, timer.CountUp:
		default:
			return fmt.Errorf("timer %d (%s): invalid mode %d", i, tc.Name, tc.Mode)
		}
		if math.IsNaN(tc.Seconds) || math.IsInf(tc.Seconds, 0) || tc.Seconds < 0 {
			return fmt.Errorf("timer %d (%s): seconds must be finite and non-negative, got %v", i, tc.Name, tc.Seconds)
		}
	}
	return nil
}

// Save writes the config as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
