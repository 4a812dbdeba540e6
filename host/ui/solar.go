package ui

import (
	"fmt"
	"log"
	"net/url"
	"strconv"
	"time"

	"github.com/mokiat/gog/opt"
	"github.com/mokiat/gomath/sprec"
	"github.com/mokiat/lacking/debug/metric/metricui"
	"github.com/mokiat/lacking/game"
	"github.com/mokiat/lacking/game/graphics"
	"github.com/mokiat/lacking/ui"
	co "github.com/mokiat/lacking/ui/component"
	"github.com/mokiat/lacking/ui/layout"
	"github.com/mokiat/lacking/ui/std"
	"github.com/mokiat/lacking/util/async"

	"github.com/nobonobo/solar-top/host/resources"
	"github.com/nobonobo/solar-top/host/ui/widget"
	"github.com/nobonobo/solar-top/solar"
)

func LoadSolarData(engine *game.Engine, resourceSet *game.ResourceSet) async.Promise[*SolarData] {
	var data SolarData
	return async.InjectionPromise(async.JoinOperations(
		resourceSet.FetchResource("solar-screen.dat", &data.Scene),
	), &data)
}

// SolarData is the result of loading: the backdrop template fetched in the
// background, plus the solar system built from it on the UI worker.
type SolarData struct {
	Scene   *game.ModelTemplate
	Host    *canvasHost
	Builder *solar.Builder
}

var SolarScreen = co.Define[*solarScreenComponent]()

type SolarScreenData struct {
	App *applicationComponent
}

type solarScreenComponent struct {
	co.BaseComponent

	app *applicationComponent

	debugVisible bool

	engine      *game.Engine
	resourceSet *game.ResourceSet
	settings    Settings

	sceneData *SolarData
	scene     *game.Scene

	host    *canvasHost
	builder *solar.Builder
	elapsed time.Duration

	titleFont *ui.Font
	textFont  *ui.Font
}

var _ ui.ElementKeyboardHandler = (*solarScreenComponent)(nil)

func (c *solarScreenComponent) OnCreate() {
	c.debugVisible = false

	globalState := co.TypedValue[GlobalState](c.Scope())
	c.engine = globalState.Engine
	c.resourceSet = globalState.ResourceSet
	c.settings = globalState.Settings

	componentData := co.GetData[SolarScreenData](c.Properties())
	c.app = componentData.App

	c.titleFont = co.OpenFont(c.Scope(), "ui:///roboto-bold.ttf")
	c.textFont = co.OpenFont(c.Scope(), "ui:///roboto-regular.ttf")

	c.createScene()
	c.engine.SetActiveScene(c.scene)
	c.engine.ResetDeltaTime()

	c.host = c.sceneData.Host
	c.builder = c.sceneData.Builder
	c.elapsed = 0
}

func (c *solarScreenComponent) OnDelete() {
	c.engine.SetActiveScene(nil)
	if c.host != nil {
		c.host.Release()
	}
}

var _ ui.ElementRenderHandler = (*solarScreenComponent)(nil)

func (c *solarScreenComponent) OnRender(element *ui.Element, canvas *ui.Canvas) {
	if c.builder == nil {
		return
	}
	dt := canvas.ElapsedTime()
	c.elapsed += dt
	c.builder.Update(c.elapsed.Seconds(), solar.FrameDelta(dt))

	drawBounds := canvas.DrawBounds(element, false)
	c.host.Draw(canvas, drawBounds.Position, drawBounds.Size, c.textFont)

	element.Invalidate() // force redraw
}

func (c *solarScreenComponent) OnKeyboardEvent(element *ui.Element, event ui.KeyboardEvent) bool {
	switch event.Code {

	case ui.KeyCodeEscape:
		co.Window(c.Scope()).Close()
		return true

	case ui.KeyCodeTab:
		if event.Action == ui.KeyboardActionDown {
			c.debugVisible = !c.debugVisible
			c.Invalidate()
		}
		return true

	default:
		return false
	}
}

func (c *solarScreenComponent) Render() co.Instance {
	return co.New(std.Element, func() {
		co.WithData(std.ElementData{
			Essence:       c,
			CanAutoFocus:  opt.V(true),
			CreateFocused: true,
			Layout:        layout.Anchor(),
		})

		if c.debugVisible {
			co.WithChild("flamegraph", co.New(metricui.FlameGraph, func() {
				co.WithData(metricui.FlameGraphData{
					UpdateInterval: time.Second,
				})
				co.WithLayoutData(layout.Data{
					Top:   opt.V(0),
					Left:  opt.V(0),
					Right: opt.V(0),
				})
			}))
		}

		co.WithChild("info", co.New(std.Container, func() {
			co.WithLayoutData(layout.Data{
				Left:   opt.V(16),
				Bottom: opt.V(16),
			})
			co.WithData(std.ContainerData{
				BackgroundColor: opt.V(ui.RGBA(0, 0, 0, 90)),
				Padding:         ui.Spacing{Left: 10, Right: 10, Top: 8, Bottom: 8},
				Layout: layout.Vertical(layout.VerticalSettings{
					ContentAlignment: layout.HorizontalAlignmentLeft,
					ContentSpacing:   6,
				}),
			})

			co.WithChild("title", co.New(std.Label, func() {
				co.WithData(std.LabelData{
					Font:      c.titleFont,
					FontSize:  opt.V(float32(20)),
					FontColor: opt.V(ui.White()),
					Text:      "Solar System",
				})
			}))

			co.WithChild("description", co.New(std.Label, func() {
				co.WithData(std.LabelData{
					Font:      c.textFont,
					FontSize:  opt.V(float32(14)),
					FontColor: opt.V(ui.RGB(0xcc, 0xcc, 0xcc)),
					Text:      resources.Info,
				})
			}))

			co.WithChild("stats", co.New(std.Label, func() {
				co.WithData(std.LabelData{
					Font:      c.textFont,
					FontSize:  opt.V(float32(14)),
					FontColor: opt.V(ui.RGB(0xaa, 0xaa, 0xaa)),
					Text: fmt.Sprintf("seed %d | %d stars | %d planets",
						c.settings.Scene.Seed,
						c.settings.Scene.Starfield.Count,
						len(c.settings.Scene.Planets),
					),
				})
			}))
		}))

		link := c.shareLink()
		co.WithChild("share", co.New(widget.QRCode, func() {
			co.WithLayoutData(layout.Data{
				Right:  opt.V(16),
				Bottom: opt.V(16),
			})
			co.WithData(widget.QRCodeData{
				Text: link,
				Size: 128,
			})
			co.WithCallbackData(widget.QRCodeCallbackData{
				OnClick: func() {
					log.Println("share link clicked:", link)
					URLOpen(link)
				},
			})
		}))
	})
}

// shareLink points the browser viewer at the same sky.
func (c *solarScreenComponent) shareLink() string {
	return viewerLink(BaseURL(), c.settings.Scene.Seed)
}

// viewerLink resolves the viewer page relative to base, so a base that ends
// in a file name such as index.html is replaced rather than extended.
func viewerLink(base string, seed uint64) string {
	ref := &url.URL{
		Path:     "viewer/",
		RawQuery: url.Values{"seed": {strconv.FormatUint(seed, 10)}}.Encode(),
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		log.Printf("invalid base URL %q: %v", base, err)
		return ref.String()
	}
	return baseURL.ResolveReference(ref).String()
}

func (c *solarScreenComponent) createScene() {
	c.sceneData = solarSceneData // retrieve from global storage

	c.scene = c.engine.CreateScene(game.SceneInfo{
		IncludePhysics: opt.V(false),
		IncludeECS:     opt.V(false),
	})

	c.scene.InstantiateModel(game.ModelInfo{
		Template:  c.sceneData.Scene,
		Name:      opt.V("Backdrop"),
		IsDynamic: false,
	})

	camera := c.createCamera(c.scene.Graphics())
	c.scene.Graphics().SetActiveCamera(camera)
}

func (c *solarScreenComponent) createCamera(scene *graphics.Scene) *graphics.Camera {
	result := scene.CreateCamera()
	result.SetFoVMode(graphics.FoVModeHorizontalPlus)
	result.SetFoV(sprec.Degrees(60))
	result.SetAutoExposure(false)
	result.SetExposure(1.0)
	result.SetAutoFocus(false)
	return result
}

// Temporary global storage for data across views
var solarSceneData *SolarData
