package solar

import "github.com/nobonobo/solar-top/schema"

// Sun describes the central body and its additive glow layers.
// GlowScale is the side of the glow billboard in scene units.
type Sun struct {
	Radius            float64
	Color             schema.Color
	Emissive          schema.Color
	EmissiveIntensity float64
	Roughness         float64

	GlowScale float64

	CoronaInner   float64
	CoronaOuter   float64
	CoronaColor   schema.Color
	CoronaOpacity float64

	LightColor     schema.Color
	LightIntensity float64
}

func DefaultSun() Sun {
	return Sun{
		Radius:            1.6,
		Color:             0x220000,
		Emissive:          0xff2200,
		EmissiveIntensity: 6.0,
		Roughness:         0.12,
		GlowScale:         12.0,
		CoronaInner:       2.2,
		CoronaOuter:       4.0,
		CoronaColor:       0xff8a4a,
		CoronaOpacity:     0.18,
		LightColor:        0xffb089,
		LightIntensity:    2.0,
	}
}
