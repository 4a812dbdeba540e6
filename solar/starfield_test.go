package solar

import (
	"math"
	"math/rand/v2"
	"testing"
)

func TestSampleRadius(t *testing.T) {
	tests := []struct {
		name string
		u    float64
		want float64
	}{
		{"center", 0.0, 0.0},
		{"edge", 1.0, 220.0},
		{"median", 0.5, math.Pow(0.5, 0.6) * 220.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SampleRadius(tt.u, 220.0); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("SampleRadius(%v, 220) = %v, want %v", tt.u, got, tt.want)
			}
		})
	}
}

func TestSampleRadius_PushesAwayFromCenter(t *testing.T) {
	for _, u := range []float64{0.01, 0.1, 0.25, 0.5, 0.9} {
		if got := SampleRadius(u, 1.0); got <= u || got > 1.0 {
			t.Errorf("SampleRadius(%v, 1) = %v, want in (%v, 1]", u, got, u)
		}
	}
}

func TestGenerateStars_Bounds(t *testing.T) {
	cfg := DefaultStarfieldConfig()
	field := GenerateStars(rand.New(rand.NewPCG(7, 11)), cfg)

	if field.Len() != cfg.Count {
		t.Fatalf("Len() = %d, want %d", field.Len(), cfg.Count)
	}
	if len(field.Positions) != cfg.Count*3 || len(field.Sizes) != cfg.Count {
		t.Fatalf("attribute arrays out of step: %d positions, %d sizes", len(field.Positions), len(field.Sizes))
	}

	const eps = 1e-3
	for i := range field.Len() {
		star := field.Star(i)
		dist := math.Hypot(float64(star.Position.X), float64(star.Position.Z))
		if dist > cfg.Spread+eps {
			t.Errorf("star %d: distance %v exceeds spread %v", i, dist, cfg.Spread)
		}
		if y := math.Abs(float64(star.Position.Y)); y > cfg.Thickness/2+eps {
			t.Errorf("star %d: vertical offset %v outside band", i, star.Position.Y)
		}
		if star.Phase < 0 || float64(star.Phase) >= 2*math.Pi {
			t.Errorf("star %d: phase %v outside [0, 2pi)", i, star.Phase)
		}
		if star.Size < 0.8 || star.Size > 4.0 {
			t.Errorf("star %d: size %v outside [0.8, 4.0]", i, star.Size)
		}
	}
}

func TestGenerateStars_Deterministic(t *testing.T) {
	cfg := DefaultStarfieldConfig()
	cfg.Count = 32
	a := GenerateStars(rand.New(rand.NewPCG(3, 5)), cfg)
	b := GenerateStars(rand.New(rand.NewPCG(3, 5)), cfg)
	for i := range a.Positions {
		if a.Positions[i] != b.Positions[i] {
			t.Fatalf("position %d differs: %v != %v", i, a.Positions[i], b.Positions[i])
		}
	}
	for i := range a.Phases {
		if a.Phases[i] != b.Phases[i] || a.Sizes[i] != b.Sizes[i] {
			t.Fatalf("star %d differs", i)
		}
	}
}

func TestGenerateStars_Empty(t *testing.T) {
	cfg := DefaultStarfieldConfig()
	cfg.Count = 0
	if field := GenerateStars(rand.New(rand.NewPCG(1, 1)), cfg); field.Len() != 0 {
		t.Errorf("Len() = %d, want 0", field.Len())
	}
}
