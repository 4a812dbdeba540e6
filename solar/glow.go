package solar

import (
	"image"
	"image/color"
	"math"
	"sync"
)

// GlowStop is a color stop of the sun glow gradient. Alpha is in [0, 1].
type GlowStop struct {
	Offset     float64
	R, G, B, A float64
}

var GlowStops = []GlowStop{
	{Offset: 0.0, R: 255, G: 200, B: 150, A: 0.95},
	{Offset: 0.3, R: 255, G: 120, B: 80, A: 0.55},
	{Offset: 0.6, R: 255, G: 60, B: 20, A: 0.18},
	{Offset: 1.0, R: 0, G: 0, B: 0, A: 0},
}

// glowInnerRadius is the inner gradient circle relative to the half
// extent of the texture.
const glowInnerRadius = 10.0 / 128.0

// GenerateGlowTexture renders a radial gradient centered in a width x height
// image: opaque warm center fading to fully transparent at the edge.
func GenerateGlowTexture(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	cx, cy := float64(width)/2.0, float64(height)/2.0
	outer := math.Min(cx, cy)
	inner := outer * glowInnerRadius
	for y := range height {
		for x := range width {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			t := (math.Hypot(dx, dy) - inner) / (outer - inner)
			img.SetNRGBA(x, y, glowColor(t))
		}
	}
	return img
}

func glowColor(t float64) color.NRGBA {
	t = math.Max(0.0, math.Min(1.0, t))
	for i := 1; i < len(GlowStops); i++ {
		from, to := GlowStops[i-1], GlowStops[i]
		if t > to.Offset {
			continue
		}
		f := (t - from.Offset) / (to.Offset - from.Offset)
		return color.NRGBA{
			R: channel(lerp(from.R, to.R, f)),
			G: channel(lerp(from.G, to.G, f)),
			B: channel(lerp(from.B, to.B, f)),
			A: channel(lerp(from.A, to.A, f) * 255.0),
		}
	}
	return color.NRGBA{}
}

func lerp(a, b, f float64) float64 {
	return a + (b-a)*f
}

func channel(v float64) uint8 {
	return uint8(math.Round(math.Max(0.0, math.Min(255.0, v))))
}

var glowCache struct {
	sync.Mutex
	images map[image.Point]*image.NRGBA
}

// GlowTexture returns a shared glow texture of the given size, generating
// it on first use. Callers must not modify the returned image.
func GlowTexture(width, height int) *image.NRGBA {
	glowCache.Lock()
	defer glowCache.Unlock()
	key := image.Pt(width, height)
	if img, ok := glowCache.images[key]; ok {
		return img
	}
	if glowCache.images == nil {
		glowCache.images = make(map[image.Point]*image.NRGBA)
	}
	img := GenerateGlowTexture(width, height)
	glowCache.images[key] = img
	return img
}
