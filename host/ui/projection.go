package ui

import (
	"github.com/mokiat/gomath/dprec"
	"github.com/mokiat/gomath/sprec"
)

// topDownProjection maps the scene's XZ plane onto the canvas, looking
// down the Y axis. Positive Z points down the screen.
type topDownProjection struct {
	center sprec.Vec2
	scale  float32
}

// newTopDownProjection fits a circle of viewRadius scene units into the
// shorter side of the given drawing area.
func newTopDownProjection(position, size sprec.Vec2, viewRadius float64) topDownProjection {
	halfExtent := min(size.X, size.Y) / 2.0
	scale := float32(1.0)
	if viewRadius > 0 {
		scale = halfExtent / float32(viewRadius)
	}
	return topDownProjection{
		center: sprec.Vec2{
			X: position.X + size.X/2.0,
			Y: position.Y + size.Y/2.0,
		},
		scale: scale,
	}
}

func (p topDownProjection) Point(x, z float32) sprec.Vec2 {
	return sprec.Vec2{
		X: p.center.X + x*p.scale,
		Y: p.center.Y + z*p.scale,
	}
}

func (p topDownProjection) Project(position dprec.Vec3) sprec.Vec2 {
	return p.Point(float32(position.X), float32(position.Z))
}

func (p topDownProjection) Length(value float64) float32 {
	return float32(value) * p.scale
}
