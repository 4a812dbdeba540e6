//go:build !js

package main

import (
	"fmt"

	nativeapp "github.com/mokiat/lacking-native/app"
	nativegame "github.com/mokiat/lacking-native/game"
	nativeui "github.com/mokiat/lacking-native/ui"
	"github.com/mokiat/lacking/storage/chunked"
	"github.com/mokiat/lacking/ui"
	"github.com/mokiat/lacking/util/resource"

	"github.com/nobonobo/solar-top/config"
	"github.com/nobonobo/solar-top/host/resources"
)

func runApplication(cfg config.Config) error {
	storage, err := chunked.NewFileStorage(cfg.AssetsDir)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	controller, err := createController(cfg, storage, nativegame.NewShaderCollection(), nativegame.NewShaderBuilder(), nativeui.NewShaderCollection())
	if err != nil {
		return err
	}

	appConfig := nativeapp.NewConfig("Solar System", 1280, 800)
	appConfig.SetFullscreen(false)
	appConfig.SetMaximized(false)
	appConfig.SetMinSize(800, 600)
	appConfig.SetVSync(true)
	appConfig.SetLocator(ui.WrappedLocator(resource.NewFSLocator(resources.UI)))
	appConfig.SetAudioEnabled(false)
	return nativeapp.Run(appConfig, controller)
}
