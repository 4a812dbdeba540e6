package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

var ErrInvalidPlanet = errors.New("invalid planet")

// Planet describes a body on a circular orbit around the origin.
// Speed is in radians per frame unit; Angle is the starting angle.
type Planet struct {
	Name   string  `json:"name"`
	Radius float64 `json:"radius"`
	Size   float64 `json:"size"`
	Color  Color   `json:"color"`
	Speed  float64 `json:"speed"`
	Angle  float64 `json:"angle,omitempty"`
}

func (p Planet) Validate() error {
	switch {
	case p.Name == "":
		return fmt.Errorf("%w: missing name", ErrInvalidPlanet)
	case !isFinite(p.Radius) || p.Radius < 0:
		return fmt.Errorf("%w: %s: radius %v", ErrInvalidPlanet, p.Name, p.Radius)
	case !isFinite(p.Size) || p.Size <= 0:
		return fmt.Errorf("%w: %s: size %v", ErrInvalidPlanet, p.Name, p.Size)
	case !isFinite(p.Speed) || !isFinite(p.Angle):
		return fmt.Errorf("%w: %s: non-finite motion", ErrInvalidPlanet, p.Name)
	}
	return nil
}

// DefaultPlanets returns the inner planets, scaled for a top-down view.
func DefaultPlanets() []Planet {
	return []Planet{
		{Name: "Mercury", Radius: 3.6, Size: 0.2, Color: 0xaaa9a9, Speed: 0.018},
		{Name: "Venus", Radius: 5.0, Size: 0.32, Color: 0xffd6a6, Speed: 0.013},
		{Name: "Earth", Radius: 6.6, Size: 0.36, Color: 0x3b8eed, Speed: 0.01},
		{Name: "Mars", Radius: 8.2, Size: 0.28, Color: 0xff6a3d, Speed: 0.008},
	}
}

// ParsePlanets decodes a JSON array of planets and validates each entry.
func ParsePlanets(data []byte) ([]Planet, error) {
	var planets []Planet
	if err := json.Unmarshal(data, &planets); err != nil {
		return nil, fmt.Errorf("failed to decode planets: %w", err)
	}
	for _, planet := range planets {
		if err := planet.Validate(); err != nil {
			return nil, err
		}
	}
	return planets, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
