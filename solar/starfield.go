package solar

import (
	"math"
	"math/rand/v2"

	"github.com/mokiat/gomath/sprec"
)

// RadiusExponent shapes the disk sampling so that stars thin out
// toward the center instead of crowding it.
const RadiusExponent = 0.6

type StarfieldConfig struct {
	Count     int
	Spread    float64
	Thickness float64
	MinSize   float64
	MaxSize   float64
}

func DefaultStarfieldConfig() StarfieldConfig {
	return StarfieldConfig{
		Count:     900,
		Spread:    220.0,
		Thickness: 20.0,
		MinSize:   0.8,
		MaxSize:   4.0,
	}
}

type Star struct {
	Position sprec.Vec3
	Phase    float32
	Size     float32
}

// Starfield keeps star attributes in parallel arrays indexed by star id,
// laid out the way they are uploaded as vertex attributes.
type Starfield struct {
	Positions []float32
	Phases    []float32
	Sizes     []float32
	Spread    float32
}

func (f *Starfield) Len() int {
	return len(f.Phases)
}

func (f *Starfield) Star(i int) Star {
	return Star{
		Position: sprec.NewVec3(f.Positions[i*3+0], f.Positions[i*3+1], f.Positions[i*3+2]),
		Phase:    f.Phases[i],
		Size:     f.Sizes[i],
	}
}

// SampleRadius maps a uniform sample u in [0, 1] to a distance from the
// vertical axis: 0 is the center, 1 is the edge of the disk.
func SampleRadius(u, spread float64) float64 {
	return math.Pow(u, RadiusExponent) * spread
}

func GenerateStars(rng *rand.Rand, cfg StarfieldConfig) *Starfield {
	field := &Starfield{
		Positions: make([]float32, cfg.Count*3),
		Phases:    make([]float32, cfg.Count),
		Sizes:     make([]float32, cfg.Count),
		Spread:    float32(cfg.Spread),
	}
	for i := range cfg.Count {
		angle := rng.Float64() * 2 * math.Pi
		radius := SampleRadius(rng.Float64(), cfg.Spread)
		field.Positions[i*3+0] = float32(math.Cos(angle) * radius)
		field.Positions[i*3+1] = float32((rng.Float64() - 0.5) * cfg.Thickness)
		field.Positions[i*3+2] = float32(math.Sin(angle) * radius)
		field.Phases[i] = phase(rng)
		field.Sizes[i] = float32(cfg.MinSize + rng.Float64()*(cfg.MaxSize-cfg.MinSize))
	}
	return field
}

// float32 rounding can turn a value just below 2π into exactly 2π.
func phase(rng *rand.Rand) float32 {
	for {
		if p := float32(rng.Float64() * 2 * math.Pi); p < 2*math.Pi {
			return p
		}
	}
}
