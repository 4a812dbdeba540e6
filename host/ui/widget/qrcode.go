package widget

import (
	"log"

	"github.com/mokiat/gog/opt"
	"github.com/mokiat/lacking/ui"
	co "github.com/mokiat/lacking/ui/component"
	std "github.com/mokiat/lacking/ui/std"
	"github.com/skip2/go-qrcode"
)

var QRCode = co.Define[*qrCodeComponent]()

type QRCodeData struct {
	Text string
	Size float32
}

var defaultQRCodeData = QRCodeData{
	Text: "",
	Size: 128,
}

type QRCodeCallbackData struct {
	OnClick std.OnActionFunc
}

var defaultQRCodeCallbackData = QRCodeCallbackData{
	OnClick: func() {},
}

var _ ui.ElementMouseHandler = (*qrCodeComponent)(nil)

// qrCodeComponent renders Text as a QR code and reports clicks on it.
type qrCodeComponent struct {
	co.BaseComponent

	data     QRCodeData
	callback QRCodeCallbackData
	qrImage  imageSlot
}

func (c *qrCodeComponent) OnUpsert() {
	data := co.GetOptionalData(c.Properties(), defaultQRCodeData)
	c.callback = co.GetOptionalCallbackData(c.Properties(), defaultQRCodeCallbackData)

	if data != c.data || c.qrImage.Image() == nil {
		c.data = data
		c.updateQRImage()
	}
}

func (c *qrCodeComponent) OnDelete() {
	c.qrImage.Set(nil)
}

func (c *qrCodeComponent) updateQRImage() {
	if c.data.Text == "" {
		c.qrImage.Set(nil)
		return
	}
	qr, err := qrcode.New(c.data.Text, qrcode.Medium)
	if err != nil {
		log.Printf("failed to encode QR code: %v", err)
		c.qrImage.Set(nil)
		return
	}
	ctx := c.Scope().Context()
	img, err := ctx.CreateImage(qr.Image(int(c.data.Size)))
	if err != nil {
		log.Printf("failed to create QR code image: %v", err)
		c.qrImage.Set(nil)
		return
	}
	c.qrImage.Set(img)
}

func (c *qrCodeComponent) Render() co.Instance {
	padding := ui.Spacing{Left: 5, Right: 5, Top: 5, Bottom: 5}

	return co.New(std.Element, func() {
		co.WithLayoutData(c.Properties().LayoutData())
		co.WithData(std.ElementData{
			Essence:   c,
			Padding:   padding,
			IdealSize: opt.V(ui.NewSize(int(c.data.Size), int(c.data.Size))),
		})
		co.WithChildren(c.Properties().Children())
	})
}

func (c *qrCodeComponent) OnMouseEvent(element *ui.Element, event ui.MouseEvent) bool {
	if event.Action == ui.MouseActionUp && event.Button == ui.MouseButtonLeft {
		c.callback.OnClick()
		return true
	}
	return false
}

func (c *qrCodeComponent) OnRender(element *ui.Element, canvas *ui.Canvas) {
	qrImage := c.qrImage.Image()
	if qrImage == nil {
		return
	}
	drawBounds := canvas.DrawBounds(element, false)
	canvas.Reset()
	canvas.Rectangle(
		drawBounds.Position,
		drawBounds.Size,
	)
	canvas.Fill(ui.Fill{
		Rule:        ui.FillRuleSimple,
		Color:       ui.White(),
		Image:       qrImage,
		ImageOffset: drawBounds.Position,
		ImageSize:   drawBounds.Size,
	})
}

// imageSlot owns at most one UI image and releases it when replaced.
// The zero value destroys released images.
type imageSlot struct {
	image   *ui.Image
	release func(*ui.Image)
}

func (s *imageSlot) Image() *ui.Image {
	return s.image
}

func (s *imageSlot) Set(img *ui.Image) {
	if s.image != nil && s.image != img {
		if s.release != nil {
			s.release(s.image)
		} else {
			s.image.Destroy()
		}
	}
	s.image = img
}
