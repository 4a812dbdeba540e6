//go:build js

package main

import (
	"encoding/binary"
	"fmt"
	"log"
	"log/slog"
	"math"
	"strconv"
	"syscall/js"
	"time"

	"github.com/google/uuid"

	"github.com/nobonobo/solar-top/solar"
)

const threeURL = "https://unpkg.com/three@0.160.0/build/three.module.js"

const cameraFoV = 60.0

type Application struct {
	three    js.Value
	scene    js.Value
	camera   js.Value
	renderer js.Value

	config     solar.Config
	viewRadius float64
	builder    *solar.Builder

	started   bool
	startTime float64
	lastTime  float64
}

func NewApplication(three js.Value, cfg solar.Config, viewRadius float64) *Application {
	return &Application{
		three:      three,
		config:     cfg,
		viewRadius: viewRadius,
	}
}

func (app *Application) Run() error {
	canvas := document.Call("createElement", "canvas")
	document.Get("body").Call("appendChild", canvas)

	pixelRatio := 1.0
	if ratio := window.Get("devicePixelRatio"); ratio.Truthy() {
		pixelRatio = ratio.Float()
	}

	app.renderer = app.three.Get("WebGLRenderer").New(map[string]any{
		"canvas":    canvas,
		"antialias": true,
	})
	app.renderer.Call("setPixelRatio", pixelRatio)
	app.renderer.Call("setSize", window.Get("innerWidth"), window.Get("innerHeight"))
	app.renderer.Call("setClearColor", 0x000000)

	app.scene = app.three.Get("Scene").New()
	app.camera = app.three.Get("PerspectiveCamera").New(cameraFoV, app.aspect(), 0.1, 2000.0)
	height := app.viewRadius / math.Tan(cameraFoV/2*math.Pi/180)
	app.camera.Get("position").Call("set", 0.0, height, 0.0)
	app.camera.Get("up").Call("set", 0.0, 0.0, -1.0)
	app.camera.Call("lookAt", 0.0, 0.0, 0.0)
	app.scene.Call("add", app.camera)

	builder, err := solar.NewBuilder(newThreeHost(app.three, app.scene, pixelRatio), app.config)
	if err != nil {
		return fmt.Errorf("failed to create scene builder: %w", err)
	}
	if err := builder.Build(); err != nil {
		return fmt.Errorf("failed to build scene: %w", err)
	}
	app.builder = builder

	app.renderer.Call("setAnimationLoop", js.FuncOf(func(this js.Value, args []js.Value) any {
		app.render(args[0].Float())
		return nil
	}))
	window.Call("addEventListener", "resize", js.FuncOf(func(this js.Value, args []js.Value) any {
		app.onResize()
		return nil
	}))
	return nil
}

// render is the frame callback; now is the animation timestamp in ms.
func (app *Application) render(now float64) {
	if !app.started {
		app.started = true
		app.startTime = now
		app.lastTime = now
	}
	elapsed := (now - app.startTime) / 1000.0
	delta := solar.FrameDelta(time.Duration((now - app.lastTime) * float64(time.Millisecond)))
	app.lastTime = now

	app.builder.Update(elapsed, delta)
	app.renderer.Call("render", app.scene, app.camera)
}

func (app *Application) onResize() {
	app.camera.Set("aspect", app.aspect())
	app.camera.Call("updateProjectionMatrix")
	app.renderer.Call("setSize", window.Get("innerWidth"), window.Get("innerHeight"))
}

func (app *Application) aspect() float64 {
	return window.Get("innerWidth").Float() / window.Get("innerHeight").Float()
}

// sceneConfig reads overrides from the query string. A missing seed is
// generated and written back so the current sky can be shared.
func sceneConfig() solar.Config {
	cfg := solar.DefaultConfig()
	if seed, err := strconv.ParseUint(GetParam("seed"), 10, 64); err == nil {
		cfg.Seed = seed
	} else {
		uid := uuid.New()
		cfg.Seed = binary.BigEndian.Uint64(uid[8:])
		SetParam("seed", strconv.FormatUint(cfg.Seed, 10))
	}
	if count, err := strconv.Atoi(GetParam("stars")); err == nil && count >= 0 {
		cfg.Starfield.Count = count
	}
	return cfg
}

func viewRadius() float64 {
	if radius, err := strconv.ParseFloat(GetParam("view"), 64); err == nil && radius > 0 {
		return radius
	}
	return 12.0
}

func main() {
	slog.Info("Started")
	cfg := sceneConfig()
	log.Println("seed:", cfg.Seed)

	importModule(threeURL,
		func(three js.Value) {
			app := NewApplication(three, cfg, viewRadius())
			if err := app.Run(); err != nil {
				slog.Error("Crashed",
					slog.String("error", err.Error()),
				)
			}
		},
		func(err error) {
			slog.Error("Failed to load three.js",
				slog.String("error", err.Error()),
			)
		},
	)
	select {}
}
