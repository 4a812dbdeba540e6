package ui

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"strings"
	"time"

	"github.com/mokiat/gog/opt"
	"github.com/mokiat/lacking/game"
	"github.com/mokiat/lacking/ui"
	co "github.com/mokiat/lacking/ui/component"
	"github.com/mokiat/lacking/ui/layout"
	"github.com/mokiat/lacking/ui/std"
	"github.com/mokiat/lacking/util/async"

	"github.com/nobonobo/solar-top/host/ui/widget"
	"github.com/nobonobo/solar-top/solar"
)

// Global state variables for UI
var (
	loadingState sceneLoad
	loadingError error
)

// --- Intro Screen ---

var IntroScreen = co.Define[*introScreenComponent]()

type IntroScreenData struct {
	App *applicationComponent
}

type introScreenComponent struct {
	co.BaseComponent

	titleFont *ui.Font
}

func (c *introScreenComponent) OnCreate() {
	co.Window(c.Scope()).SetCursorVisible(false)

	globalState := co.TypedValue[GlobalState](c.Scope())

	componentData := co.GetData[IntroScreenData](c.Properties())
	app := componentData.App

	c.titleFont = co.OpenFont(c.Scope(), "ui:///roboto-bold.ttf")

	loadingState = sceneLoad{
		worker:   co.Window(c.Scope()),
		fetch:    LoadSolarData(globalState.Engine, globalState.ResourceSet),
		settings: globalState.Settings,
	}

	co.After(c.Scope(), time.Second, func() {
		app.SetActiveView(ViewNameLoading)
	})
}

func (c *introScreenComponent) OnDelete() {
	co.Window(c.Scope()).SetCursorVisible(true)
}

func (c *introScreenComponent) Render() co.Instance {
	return co.New(std.Container, func() {
		co.WithData(std.ContainerData{
			BackgroundColor: opt.V(ui.Black()),
			Layout:          layout.Anchor(),
		})

		co.WithChild("title", co.New(std.Label, func() {
			co.WithLayoutData(layout.Data{
				HorizontalCenter: opt.V(0),
				VerticalCenter:   opt.V(0),
			})
			co.WithData(std.LabelData{
				Font:      c.titleFont,
				FontSize:  opt.V(float32(64)),
				FontColor: opt.V(ui.RGB(0xff, 0x8a, 0x4a)),
				Text:      "SOLAR SYSTEM",
			})
		}))
	})
}

// --- Loading Screen ---

var LoadingScreen = co.Define[*loadingScreenComponent]()

type LoadingScreenData struct {
	App *applicationComponent
}

type loadingScreenComponent struct {
	co.BaseComponent
}

func (c *loadingScreenComponent) OnCreate() {
	componentData := co.GetData[LoadingScreenData](c.Properties())
	app := componentData.App

	loadingState.Wait(c.Scope().Context(),
		func(data *SolarData) {
			solarSceneData = data
			app.SetActiveView(ViewNameSolar)
		},
		func(err error) {
			log.Printf("ERROR: failed to load solar system: %v", err)
			loadingError = err
			app.SetActiveView(ViewNameError)
		},
	)
}

func (c *loadingScreenComponent) Render() co.Instance {
	return co.New(std.Container, func() {
		co.WithData(std.ContainerData{
			BackgroundColor: opt.V(ui.Black()),
			Layout:          layout.Anchor(),
		})

		co.WithChild("loading", co.New(widget.Loading, func() {
			co.WithLayoutData(layout.Data{
				HorizontalCenter: opt.V(0),
				VerticalCenter:   opt.V(0),
			})
			co.WithData(widget.LoadingData{
				Text:     "Charting orbits",
				FontSize: 36.0,
				Interval: 400 * time.Millisecond,
			})
		}))
	})
}

// sceneLoad fetches the backdrop in the background and then builds the
// solar system on the UI worker, where the glow image can be created.
type sceneLoad struct {
	worker   game.Worker
	fetch    async.Promise[*SolarData]
	settings Settings
}

// Wait reports the outcome of the load exactly once, on the UI worker.
func (l sceneLoad) Wait(creator imageCreator, onReady func(*SolarData), onFailed func(error)) {
	l.fetch.OnSuccess(func(data *SolarData) {
		l.worker.Schedule(func() {
			l.finish(data, nil, creator, onReady, onFailed)
		})
	})
	l.fetch.OnError(func(err error) {
		l.worker.Schedule(func() {
			l.finish(nil, err, creator, onReady, onFailed)
		})
	})
}

func (l sceneLoad) finish(data *SolarData, err error, creator imageCreator, onReady func(*SolarData), onFailed func(error)) {
	if err != nil {
		onFailed(fmt.Errorf("failed to fetch backdrop: %w", err))
		return
	}
	if err := prepareSolarSystem(data, l.settings, creator); err != nil {
		onFailed(err)
		return
	}
	onReady(data)
}

// prepareSolarSystem validates the scene settings, builds the solar system
// into a fresh canvas host and uploads the glow texture.
func prepareSolarSystem(data *SolarData, settings Settings, creator imageCreator) error {
	host := newCanvasHost(settings.ViewRadius, settings.PixelRatio)
	builder, err := solar.NewBuilder(host, settings.Scene)
	if err != nil {
		return fmt.Errorf("invalid scene settings: %w", err)
	}
	if err := builder.Build(); err != nil {
		return fmt.Errorf("failed to build scene: %w", err)
	}
	if err := host.Upload(creator); err != nil {
		return fmt.Errorf("failed to create glow image: %w", err)
	}
	data.Host = host
	data.Builder = builder
	log.Printf("solar system built: %d stars, %d planets", builder.Stars().Len(), len(builder.Orbits()))
	return nil
}

// --- Error Screen ---

var ErrorScreen = co.Define[*errorScreenComponent]()

type ErrorScreenData struct {
	App *applicationComponent
}

var _ ui.ElementKeyboardHandler = (*errorScreenComponent)(nil)

type errorScreenComponent struct {
	co.BaseComponent

	titleFont     *ui.Font
	titleFontSize float32

	messageFont     *ui.Font
	messageFontSize float32

	message string
}

func (c *errorScreenComponent) OnCreate() {
	c.message = c.formatError(loadingError)

	c.titleFont = co.OpenFont(c.Scope(), "ui:///roboto-bold.ttf")
	c.titleFontSize = float32(48.0)

	c.messageFont = co.OpenFont(c.Scope(), "ui:///roboto-regular.ttf")
	c.messageFontSize = float32(24.0)
}

func (c *errorScreenComponent) Render() co.Instance {
	return co.New(std.Container, func() {
		co.WithData(std.ContainerData{
			BackgroundColor: opt.V(ui.Black()),
			Layout:          layout.Anchor(),
		})

		co.WithChild("handler", co.New(std.Element, func() {
			co.WithLayoutData(layout.Data{
				Left:   opt.V(0),
				Right:  opt.V(0),
				Top:    opt.V(0),
				Bottom: opt.V(0),
			})
			co.WithData(std.ElementData{
				Essence:       c,
				Enabled:       opt.V(true),
				CanAutoFocus:  opt.V(true),
				CreateFocused: true,
			})
		}))

		co.WithChild("title", co.New(std.Label, func() {
			co.WithLayoutData(layout.Data{
				HorizontalCenter: opt.V(0),
				VerticalCenter:   opt.V(-150),
			})
			co.WithData(std.LabelData{
				Text:      "ERROR",
				Font:      c.titleFont,
				FontSize:  opt.V(c.titleFontSize),
				FontColor: opt.V(ui.White()),
			})
		}))

		co.WithChild("info", co.New(std.Label, func() {
			co.WithLayoutData(layout.Data{
				HorizontalCenter: opt.V(0),
				VerticalCenter:   opt.V(0),
			})
			co.WithData(std.LabelData{
				Text:      c.message,
				Font:      c.messageFont,
				FontSize:  opt.V(c.messageFontSize),
				FontColor: opt.V(ui.White()),
			})
		}))
	})
}

func (c *errorScreenComponent) OnKeyboardEvent(element *ui.Element, event ui.KeyboardEvent) bool {
	if event.Action == ui.KeyboardActionUp && event.Code == ui.KeyCodeEscape {
		co.Window(c.Scope()).Close()
	}
	return true
}

func (c *errorScreenComponent) formatError(err error) string {
	if err == nil {
		err = errors.New("unknown error")
	}
	wordWrap := func(text string, maxLineLength int) iter.Seq[string] {
		return func(yield func(string) bool) {
			runes := []rune(text)
			for len(runes) > maxLineLength {
				if !yield(string(runes[:maxLineLength])) {
					return
				}
				runes = runes[maxLineLength:]
			}
			if !yield(string(runes)) {
				return
			}
		}
	}

	var builder strings.Builder
	fmt.Fprintln(&builder, "The scene could not be loaded. Press ESCAPE to exit.")
	if errors.Is(err, solar.ErrInvalidConfig) {
		fmt.Fprintln(&builder, "Check the SOLAR_* environment variables or the planets file.")
	}
	fmt.Fprintln(&builder)
	fmt.Fprint(&builder, "Error: ")
	for line := range wordWrap(err.Error(), 80) {
		fmt.Fprintln(&builder, line)
	}
	return builder.String()
}
