package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/collider/internal/engine"
	"github.com/san-kum/collider/internal/particle"
)

const (
	DefaultWidth        = 800.0
	DefaultHeight       = 800.0
	DefaultChromeHeight = 28.0
	DefaultGravity      = 9.81
	DefaultFriction     = 0.0001
	DefaultFPS          = 60
	DefaultCount        = 75
	DefaultMaxAttempts  = 1000
)

type Config struct {
	Width        float64     `yaml:"width"`
	Height       float64     `yaml:"height"`
	ChromeHeight float64     `yaml:"chrome_height"`
	Gravity      float64     `yaml:"gravity"`
	Friction     float64     `yaml:"friction"`
	FPS          int         `yaml:"fps"`
	Count        int         `yaml:"count"`
	Seed         int64       `yaml:"seed"`
	GravityOn    bool        `yaml:"gravity_on"`
	FrictionOn   bool        `yaml:"friction_on"`
	MaxAttempts  int         `yaml:"max_attempts"`
	Spawn        SpawnConfig `yaml:"spawn"`
}

type SpawnConfig struct {
	RadiusMin     float64 `yaml:"radius_min"`
	RadiusMax     float64 `yaml:"radius_max"`
	MassMin       float64 `yaml:"mass_min"`
	MassMax       float64 `yaml:"mass_max"`
	SpeedMax      float64 `yaml:"speed_max"`
	ElasticityMin float64 `yaml:"elasticity_min"`
	ElasticityMax float64 `yaml:"elasticity_max"`
	Margin        float64 `yaml:"margin"`
}

func DefaultConfig() *Config {
	return &Config{
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		ChromeHeight: DefaultChromeHeight,
		Gravity:      DefaultGravity,
		Friction:     DefaultFriction,
		FPS:          DefaultFPS,
		Count:        DefaultCount,
		MaxAttempts:  DefaultMaxAttempts,
		Spawn: SpawnConfig{
			RadiusMin:     5,
			RadiusMax:     30,
			MassMin:       0.5,
			MassMax:       5,
			SpeedMax:      200,
			ElasticityMin: 0.8,
			ElasticityMax: 0.95,
			Margin:        20,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config: arena dimensions must be positive")
	}
	if c.ChromeHeight < 0 || c.ChromeHeight >= c.Height {
		return fmt.Errorf("config: chrome height %g leaves no playable area", c.ChromeHeight)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("config: fps must be positive, got %d", c.FPS)
	}
	if c.Count < 0 {
		return fmt.Errorf("config: count must not be negative, got %d", c.Count)
	}
	if c.Spawn.RadiusMin <= 0 || c.Spawn.RadiusMax < c.Spawn.RadiusMin {
		return fmt.Errorf("config: spawn radius range [%g, %g] invalid",
			c.Spawn.RadiusMin, c.Spawn.RadiusMax)
	}
	if c.Spawn.MassMin <= 0 || c.Spawn.MassMax < c.Spawn.MassMin {
		return fmt.Errorf("config: spawn mass range [%g, %g] invalid",
			c.Spawn.MassMin, c.Spawn.MassMax)
	}
	if c.Spawn.ElasticityMin < 0 || c.Spawn.ElasticityMax > 1 ||
		c.Spawn.ElasticityMax < c.Spawn.ElasticityMin {
		return fmt.Errorf("config: spawn elasticity range [%g, %g] invalid",
			c.Spawn.ElasticityMin, c.Spawn.ElasticityMax)
	}
	return nil
}

// Dt returns the fixed simulation timestep derived from the frame rate.
func (c *Config) Dt() float64 {
	return 1.0 / float64(c.FPS)
}

// EngineConfig maps the file-facing config onto the engine's own config.
func (c *Config) EngineConfig() engine.Config {
	return engine.Config{
		Width:        c.Width,
		Height:       c.Height,
		ChromeHeight: c.ChromeHeight,
		Gravity:      c.Gravity,
		Friction:     c.Friction,
		Dt:           c.Dt(),
		InitialCount: c.Count,
		MaxAttempts:  c.MaxAttempts,
		Spawn: particle.SpawnRanges{
			RadiusMin:     c.Spawn.RadiusMin,
			RadiusMax:     c.Spawn.RadiusMax,
			MassMin:       c.Spawn.MassMin,
			MassMax:       c.Spawn.MassMax,
			SpeedMax:      c.Spawn.SpeedMax,
			ElasticityMin: c.Spawn.ElasticityMin,
			ElasticityMax: c.Spawn.ElasticityMax,
			Margin:        c.Spawn.Margin,
		},
	}
}
