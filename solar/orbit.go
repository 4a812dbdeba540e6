package solar

import (
	"math"

	"github.com/mokiat/gomath/dprec"

	"github.com/nobonobo/solar-top/schema"
)

// Orbit tracks the current angle of a planet on its circular orbit.
type Orbit struct {
	Planet schema.Planet
	Angle  float64
}

func NewOrbit(planet schema.Planet) *Orbit {
	return &Orbit{
		Planet: planet,
		Angle:  planet.Angle,
	}
}

// Advance accumulates speed*dt onto the angle. The angle is not wrapped.
func (o *Orbit) Advance(dt float64) {
	o.Angle += o.Planet.Speed * dt
}

func (o *Orbit) Position() dprec.Vec3 {
	return OrbitPosition(o.Planet.Radius, o.Angle)
}

func OrbitPosition(radius, angle float64) dprec.Vec3 {
	return dprec.NewVec3(radius*math.Cos(angle), 0.0, radius*math.Sin(angle))
}
