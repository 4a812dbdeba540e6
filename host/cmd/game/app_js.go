//go:build js

package main

import (
	"fmt"

	jsapp "github.com/mokiat/lacking-js/app"
	jsgame "github.com/mokiat/lacking-js/game"
	jsui "github.com/mokiat/lacking-js/ui"
	"github.com/mokiat/lacking/storage/chunked"

	"github.com/nobonobo/solar-top/config"
)

func runApplication(cfg config.Config) error {
	storage, err := chunked.NewWebStorage(".")
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	controller, err := createController(cfg, storage, jsgame.NewShaderCollection(), jsgame.NewShaderBuilder(), jsui.NewShaderCollection())
	if err != nil {
		return err
	}

	appConfig := jsapp.NewConfig("screen")
	appConfig.AddGLExtension("EXT_color_buffer_float")
	appConfig.SetFullscreen(false)
	appConfig.SetAudioEnabled(false)
	return jsapp.Run(appConfig, controller)
}
