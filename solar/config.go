package solar

import (
	"errors"
	"fmt"
	"math"

	"github.com/nobonobo/solar-top/schema"
)

var ErrInvalidConfig = errors.New("invalid scene config")

type Config struct {
	Seed      uint64
	Starfield StarfieldConfig
	Sun       Sun
	Planets   []schema.Planet
	GlowSize  int
}

func DefaultConfig() Config {
	return Config{
		Seed:      1,
		Starfield: DefaultStarfieldConfig(),
		Sun:       DefaultSun(),
		Planets:   schema.DefaultPlanets(),
		GlowSize:  256,
	}
}

func (c Config) Validate() error {
	stars := c.Starfield
	sun := c.Sun
	switch {
	case stars.Count < 0:
		return fmt.Errorf("%w: star count %d", ErrInvalidConfig, stars.Count)
	case !isFinite(stars.Spread) || stars.Spread <= 0:
		return fmt.Errorf("%w: star spread %v", ErrInvalidConfig, stars.Spread)
	case !isFinite(stars.Thickness) || stars.Thickness < 0:
		return fmt.Errorf("%w: star thickness %v", ErrInvalidConfig, stars.Thickness)
	case !isFinite(stars.MinSize) || !isFinite(stars.MaxSize) ||
		stars.MinSize <= 0 || stars.MaxSize < stars.MinSize:
		return fmt.Errorf("%w: star size range [%v, %v]", ErrInvalidConfig, stars.MinSize, stars.MaxSize)
	case c.GlowSize <= 0:
		return fmt.Errorf("%w: glow size %d", ErrInvalidConfig, c.GlowSize)
	case !isFinite(sun.Radius) || sun.Radius <= 0:
		return fmt.Errorf("%w: sun radius %v", ErrInvalidConfig, sun.Radius)
	case !isFinite(sun.GlowScale) || sun.GlowScale < 0:
		return fmt.Errorf("%w: glow scale %v", ErrInvalidConfig, sun.GlowScale)
	case !isFinite(sun.CoronaInner) || !isFinite(sun.CoronaOuter) ||
		sun.CoronaInner < 0 || sun.CoronaOuter < sun.CoronaInner:
		return fmt.Errorf("%w: corona [%v, %v]", ErrInvalidConfig, sun.CoronaInner, sun.CoronaOuter)
	case !isFinite(sun.CoronaOpacity) || sun.CoronaOpacity < 0 || sun.CoronaOpacity > 1:
		return fmt.Errorf("%w: corona opacity %v", ErrInvalidConfig, sun.CoronaOpacity)
	case !isFinite(sun.EmissiveIntensity) || !isFinite(sun.Roughness) || !isFinite(sun.LightIntensity):
		return fmt.Errorf("%w: non-finite sun material", ErrInvalidConfig)
	}
	for _, planet := range c.Planets {
		if err := planet.Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
