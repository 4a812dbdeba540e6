package main

import (
	"github.com/mokiat/lacking/game/asset/dsl"
)

// solar-screen.dat is the backdrop the solar system is drawn over.
var _ = func() any {
	sky := dsl.CreateSky(dsl.CreateColorSkyMaterial(
		dsl.RGB(0.0, 0.0, 0.0),
	))

	return dsl.Save("solar-screen.dat", dsl.CreateModel(
		dsl.AddNode(dsl.CreateNode("Sky",
			dsl.AddAttachment(sky),
		)),
	))
}()
