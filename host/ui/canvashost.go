package ui

import (
	"image"
	"math"

	"github.com/mokiat/gomath/dprec"
	"github.com/mokiat/gomath/sprec"
	"github.com/mokiat/lacking/ui"

	"github.com/nobonobo/solar-top/schema"
	"github.com/nobonobo/solar-top/solar"
)

const (
	coronaSegments = 64
	minPlanetSize  = float32(2.0)
	labelFontSize  = float32(14.0)
)

var _ solar.Host = (*canvasHost)(nil)

// imageCreator is satisfied by the window context of a UI scope.
type imageCreator interface {
	CreateImage(img image.Image) (*ui.Image, error)
}

// canvasHost keeps the scene built by solar.Builder and draws it top-down
// on a UI canvas. The canvas has no additive blending, so glow layers are
// alpha blended instead.
type canvasHost struct {
	viewRadius float64
	pixelRatio float64

	stars    *solar.Starfield
	starTime float64

	sun       solar.Sun
	hasSun    bool
	glow      *image.NRGBA
	glowImage *ui.Image

	planets []*canvasPlanet
}

func newCanvasHost(viewRadius, pixelRatio float64) *canvasHost {
	if pixelRatio <= 0 {
		pixelRatio = 1.0
	}
	return &canvasHost{
		viewRadius: viewRadius,
		pixelRatio: pixelRatio,
	}
}

func (h *canvasHost) PixelRatio() float64 {
	return h.pixelRatio
}

func (h *canvasHost) AddStarfield(field *solar.Starfield, shader solar.StarShader) solar.StarfieldNode {
	h.stars = field
	return starClock{host: h}
}

func (h *canvasHost) AddSun(sun solar.Sun, glow *image.NRGBA) {
	h.sun = sun
	h.hasSun = true
	h.glow = glow
}

func (h *canvasHost) AddPlanet(planet schema.Planet) solar.Node {
	result := &canvasPlanet{
		planet: planet,
		label:  []rune(planet.Name),
	}
	h.planets = append(h.planets, result)
	return result
}

// Upload creates the UI image for the sun glow.
func (h *canvasHost) Upload(creator imageCreator) error {
	if h.glow == nil {
		return nil
	}
	img, err := creator.CreateImage(h.glow)
	if err != nil {
		return err
	}
	h.glowImage = img
	return nil
}

// Release destroys the uploaded glow image.
func (h *canvasHost) Release() {
	if h.glowImage != nil {
		h.glowImage.Destroy()
		h.glowImage = nil
	}
}

func (h *canvasHost) Draw(canvas *ui.Canvas, position, size sprec.Vec2, font *ui.Font) {
	projection := newTopDownProjection(position, size, h.viewRadius)
	h.drawStars(canvas, projection, position, size)
	if h.hasSun {
		h.drawSun(canvas, projection)
	}
	h.drawPlanets(canvas, projection, font)
}

func (h *canvasHost) drawStars(canvas *ui.Canvas, projection topDownProjection, position, size sprec.Vec2) {
	if h.stars == nil {
		return
	}
	spread := float64(h.stars.Spread)
	for i := range h.stars.Len() {
		star := h.stars.Star(i)
		center := projection.Point(star.Position.X, star.Position.Z)
		if center.X < position.X || center.Y < position.Y || center.X > position.X+size.X || center.Y > position.Y+size.Y {
			continue
		}
		radius := h.starRadius(star, spread)
		alpha := solar.TwinkleAlpha(h.starTime, float64(star.Phase))

		canvas.Reset()
		canvas.Circle(center, radius)
		canvas.Fill(ui.Fill{
			Color: ui.RGBA(255, 255, 255, uint8(alpha*255.0)),
		})
	}
}

// starRadius is half the point size, which is a diameter in pixels.
func (h *canvasHost) starRadius(star solar.Star, spread float64) float32 {
	dist := math.Hypot(float64(star.Position.X), float64(star.Position.Z))
	return float32(solar.PointSize(float64(star.Size), dist, spread, h.pixelRatio) / 2.0)
}

func (h *canvasHost) drawSun(canvas *ui.Canvas, projection topDownProjection) {
	center := projection.Project(dprec.ZeroVec3())

	if h.glowImage != nil {
		side := projection.Length(h.sun.GlowScale)
		offset := sprec.Vec2{X: center.X - side/2.0, Y: center.Y - side/2.0}
		extent := sprec.Vec2{X: side, Y: side}
		canvas.Reset()
		canvas.Rectangle(offset, extent)
		canvas.Fill(ui.Fill{
			Rule:        ui.FillRuleSimple,
			Color:       ui.White(),
			Image:       h.glowImage,
			ImageOffset: offset,
			ImageSize:   extent,
		})
	}

	inner := projection.Length(h.sun.CoronaInner)
	outer := projection.Length(h.sun.CoronaOuter)
	corona := h.sun.CoronaColor
	canvas.Reset()
	for i := range coronaSegments {
		from := 2 * math.Pi * float64(i) / coronaSegments
		to := 2 * math.Pi * float64(i+1) / coronaSegments
		canvas.MoveTo(ringPoint(center, inner, from))
		canvas.LineTo(ringPoint(center, outer, from))
		canvas.LineTo(ringPoint(center, outer, to))
		canvas.LineTo(ringPoint(center, inner, to))
		canvas.CloseLoop()
	}
	canvas.Fill(ui.Fill{
		Rule:  ui.FillRuleSimple,
		Color: ui.RGBA(corona.R(), corona.G(), corona.B(), uint8(h.sun.CoronaOpacity*255.0)),
	})

	emissive := h.sun.Emissive
	canvas.Reset()
	canvas.Circle(center, projection.Length(h.sun.Radius))
	canvas.Fill(ui.Fill{
		Color: ui.RGB(emissive.R(), emissive.G(), emissive.B()),
	})
}

func (h *canvasHost) drawPlanets(canvas *ui.Canvas, projection topDownProjection, font *ui.Font) {
	for _, planet := range h.planets {
		center := projection.Project(planet.position)
		radius := max(projection.Length(planet.planet.Size), minPlanetSize)
		color := planet.planet.Color

		canvas.Reset()
		canvas.Circle(center, radius)
		canvas.Fill(ui.Fill{
			Color: ui.RGB(color.R(), color.G(), color.B()),
		})

		if font == nil {
			continue
		}
		labelWidth := font.LineWidth(planet.label, labelFontSize)
		canvas.FillTextLine(planet.label, sprec.Vec2{
			X: center.X - labelWidth/2.0,
			Y: center.Y + radius + 4.0,
		}, ui.Typography{
			Font:  font,
			Size:  labelFontSize,
			Color: ui.RGBA(255, 255, 255, 160),
		})
	}
}

func ringPoint(center sprec.Vec2, radius float32, angle float64) sprec.Vec2 {
	return sprec.Vec2{
		X: center.X + radius*float32(math.Cos(angle)),
		Y: center.Y + radius*float32(math.Sin(angle)),
	}
}

type starClock struct {
	host *canvasHost
}

func (c starClock) SetTime(seconds float64) {
	c.host.starTime = seconds
}

type canvasPlanet struct {
	planet   schema.Planet
	label    []rune
	position dprec.Vec3
}

func (p *canvasPlanet) SetPosition(position dprec.Vec3) {
	p.position = position
}
