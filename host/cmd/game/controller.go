package main

import (
	"fmt"

	"github.com/mokiat/lacking/app"
	"github.com/mokiat/lacking/game"
	"github.com/mokiat/lacking/game/graphics"
	"github.com/mokiat/lacking/storage/chunked"
	"github.com/mokiat/lacking/ui"
	"github.com/mokiat/lacking/util/resource"

	"github.com/nobonobo/solar-top/config"
	"github.com/nobonobo/solar-top/host/resources"
	gameui "github.com/nobonobo/solar-top/host/ui"
)

func createController(cfg config.Config, storage chunked.Storage, gameShaders graphics.ShaderCollection, gameBuilder graphics.ShaderBuilder, uiShaders ui.ShaderCollection) (app.Controller, error) {
	sceneConfig, err := cfg.Scene()
	if err != nil {
		return nil, fmt.Errorf("failed to configure scene: %w", err)
	}
	settings := gameui.Settings{
		Scene:      sceneConfig,
		ViewRadius: cfg.ViewRadius,
	}

	locator := ui.WrappedLocator(resource.NewFSLocator(resources.UI))

	gameController := game.NewController(storage, gameShaders, gameBuilder)
	uiController := ui.NewController(locator, uiShaders, func(w *ui.Window) {
		gameui.BootstrapApplication(w, gameController, settings)
	})

	return app.NewLayeredController(gameController, uiController), nil
}
