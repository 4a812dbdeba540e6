// Package config loads process configuration from environment variables.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"

	"github.com/nobonobo/solar-top/schema"
	"github.com/nobonobo/solar-top/solar"
)

type Config struct {
	Seed          uint64  `env:"SOLAR_SEED"           envDefault:"1"`
	StarCount     int     `env:"SOLAR_STAR_COUNT"     envDefault:"900"`
	StarSpread    float64 `env:"SOLAR_STAR_SPREAD"    envDefault:"220"`
	StarThickness float64 `env:"SOLAR_STAR_THICKNESS" envDefault:"20"`
	PlanetsFile   string  `env:"SOLAR_PLANETS"`
	ViewRadius    float64 `env:"SOLAR_VIEW_RADIUS"    envDefault:"12"`
	GlowSize      int     `env:"SOLAR_GLOW_SIZE"      envDefault:"256"`
	AssetsDir     string  `env:"SOLAR_ASSETS"         envDefault:"./assets"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Scene converts the configuration into a scene config, reading the
// planet list from PlanetsFile when it is set.
func (c Config) Scene() (solar.Config, error) {
	result := solar.DefaultConfig()
	result.Seed = c.Seed
	result.Starfield.Count = c.StarCount
	result.Starfield.Spread = c.StarSpread
	result.Starfield.Thickness = c.StarThickness
	result.GlowSize = c.GlowSize

	if c.PlanetsFile != "" {
		data, err := os.ReadFile(c.PlanetsFile)
		if err != nil {
			return solar.Config{}, fmt.Errorf("failed to read planets file: %w", err)
		}
		planets, err := schema.ParsePlanets(data)
		if err != nil {
			return solar.Config{}, fmt.Errorf("failed to load planets from %s: %w", c.PlanetsFile, err)
		}
		result.Planets = planets
	}

	if err := result.Validate(); err != nil {
		return solar.Config{}, err
	}
	return result, nil
}
