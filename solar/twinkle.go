package solar

import (
	"math"
	"time"
)

const (
	MinStarAlpha = 0.35
	MaxStarAlpha = 1.0

	twinkleRate = 2.0
)

// TwinkleAlpha returns the star opacity at elapsed time t (seconds) for
// the given phase. The result is always within [MinStarAlpha, MaxStarAlpha].
func TwinkleAlpha(t, phase float64) float64 {
	tw := 0.5 + 0.5*math.Sin(t*twinkleRate+phase)
	return MinStarAlpha + (MaxStarAlpha-MinStarAlpha)*tw
}

// PointSize returns the rendered size in pixels of a star of base size
// at distance dist from the vertical axis. Stars near the center render
// larger.
func PointSize(size, dist, spread, pixelRatio float64) float64 {
	falloff := 1.0
	if spread > 0 {
		falloff = 1.0 - dist/spread
	}
	return size * (2.0 + falloff*2.5) * pixelRatio
}

// FrameUnit is the time unit in which planet speeds are expressed.
const FrameUnit = time.Second / 60

// FrameDelta converts a wall clock delta to frame units.
func FrameDelta(d time.Duration) float64 {
	return float64(d) / float64(FrameUnit)
}
