package widget

import (
	"time"

	"github.com/mokiat/gog/opt"
	"github.com/mokiat/gomath/sprec"
	"github.com/mokiat/lacking/ui"
	co "github.com/mokiat/lacking/ui/component"
	"github.com/mokiat/lacking/ui/std"
)

var Loading = co.Define[*loadingComponent]()

type LoadingData struct {
	Text     string
	FontSize float32
	Interval time.Duration
}

var defaultLoadingData = LoadingData{
	Text:     "Loading",
	FontSize: 48.0,
	Interval: 500 * time.Millisecond,
}

// loadingComponent cycles through the label followed by zero to three dots.
type loadingComponent struct {
	co.BaseComponent

	elapsedTime time.Duration
	interval    time.Duration
	frames      [][]rune

	font     *ui.Font
	fontSize float32

	maxLabelSize sprec.Vec2
}

func (c *loadingComponent) OnUpsert() {
	data := co.GetOptionalData(c.Properties(), defaultLoadingData)
	if c.font == nil {
		c.font = co.OpenFont(c.Scope(), "ui:///roboto-bold.ttf")
	}

	c.interval = data.Interval
	c.fontSize = data.FontSize
	c.frames = c.frames[:0]
	for dots := range 4 {
		label := data.Text
		for range dots {
			label += "."
		}
		c.frames = append(c.frames, []rune(label))
	}

	lastFrame := c.frames[len(c.frames)-1]
	c.maxLabelSize = sprec.Vec2{
		X: c.font.LineWidth(lastFrame, c.fontSize),
		Y: c.font.LineHeight(c.fontSize),
	}
}

func (c *loadingComponent) Render() co.Instance {
	return co.New(std.Element, func() {
		co.WithData(std.ElementData{
			Essence:   c,
			IdealSize: opt.V(ui.NewSize(int(c.maxLabelSize.X), int(c.maxLabelSize.Y))),
		})
		co.WithLayoutData(c.Properties().LayoutData())
		co.WithChildren(c.Properties().Children())
	})
}

func (c *loadingComponent) OnRender(element *ui.Element, canvas *ui.Canvas) {
	c.elapsedTime += canvas.ElapsedTime()

	frame := c.frames[int(c.elapsedTime/c.interval)%len(c.frames)]

	drawBounds := canvas.DrawBounds(element, false)

	canvas.Push()
	canvas.Translate(drawBounds.Position)
	canvas.Translate(sprec.Vec2{
		X: (drawBounds.Size.X - c.maxLabelSize.X) / 2,
		Y: (drawBounds.Size.Y - c.maxLabelSize.Y) / 2,
	})
	canvas.FillTextLine(frame, sprec.ZeroVec2(), ui.Typography{
		Font:  c.font,
		Size:  c.fontSize,
		Color: ui.RGB(0xff, 0x8a, 0x4a),
	})
	canvas.Pop()

	element.Invalidate() // force redraw
}
