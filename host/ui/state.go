package ui

import (
	"github.com/mokiat/lacking/game"

	"github.com/nobonobo/solar-top/solar"
)

// Settings are fixed for the lifetime of the application.
type Settings struct {
	Scene      solar.Config
	ViewRadius float64
	PixelRatio float64
}

type GlobalState struct {
	Engine      *game.Engine
	ResourceSet *game.ResourceSet
	Settings    Settings
}
