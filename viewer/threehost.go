//go:build js

package main

import (
	"encoding/binary"
	"image"
	"math"
	"syscall/js"

	"github.com/mokiat/gomath/dprec"

	"github.com/nobonobo/solar-top/schema"
	"github.com/nobonobo/solar-top/solar"
)

var _ solar.Host = (*threeHost)(nil)

// threeHost attaches solar scene content to a three.js scene.
type threeHost struct {
	three      js.Value
	scene      js.Value
	pixelRatio float64
}

func newThreeHost(three, scene js.Value, pixelRatio float64) *threeHost {
	return &threeHost{
		three:      three,
		scene:      scene,
		pixelRatio: pixelRatio,
	}
}

func (h *threeHost) PixelRatio() float64 {
	return h.pixelRatio
}

func (h *threeHost) AddStarfield(field *solar.Starfield, shader solar.StarShader) solar.StarfieldNode {
	geometry := h.three.Get("BufferGeometry").New()
	geometry.Call("setAttribute", solar.AttributePosition, h.attribute(field.Positions, 3))
	geometry.Call("setAttribute", solar.AttributePhase, h.attribute(field.Phases, 1))
	geometry.Call("setAttribute", solar.AttributeSize, h.attribute(field.Sizes, 1))

	material := h.three.Get("ShaderMaterial").New(map[string]any{
		"transparent": true,
		"depthWrite":  false,
		"uniforms": map[string]any{
			solar.UniformTime:       map[string]any{"value": 0.0},
			solar.UniformPixelRatio: map[string]any{"value": h.pixelRatio},
			solar.UniformSpread:     map[string]any{"value": float64(field.Spread)},
		},
		"vertexShader":   shader.Vertex,
		"fragmentShader": shader.Fragment,
	})

	points := h.three.Get("Points").New(geometry, material)
	h.scene.Call("add", points)
	return &uniformNode{
		uniform: material.Get("uniforms").Get(solar.UniformTime),
	}
}

func (h *threeHost) AddSun(sun solar.Sun, glow *image.NRGBA) {
	sunMesh := h.three.Get("Mesh").New(
		h.three.Get("SphereGeometry").New(sun.Radius, 64, 64),
		h.three.Get("MeshStandardMaterial").New(map[string]any{
			"color":             int(sun.Color),
			"emissive":          int(sun.Emissive),
			"emissiveIntensity": sun.EmissiveIntensity,
			"roughness":         sun.Roughness,
			"metalness":         0.0,
		}),
	)
	h.scene.Call("add", sunMesh)

	halo := h.three.Get("Sprite").New(
		h.three.Get("SpriteMaterial").New(map[string]any{
			"map":         h.texture(glow),
			"blending":    h.three.Get("AdditiveBlending"),
			"transparent": true,
			"depthWrite":  false,
		}),
	)
	halo.Get("scale").Call("set", sun.GlowScale, sun.GlowScale, 1.0)
	sunMesh.Call("add", halo)

	corona := h.three.Get("Mesh").New(
		h.three.Get("RingGeometry").New(sun.CoronaInner, sun.CoronaOuter, 64),
		h.three.Get("MeshBasicMaterial").New(map[string]any{
			"color":       int(sun.CoronaColor),
			"transparent": true,
			"opacity":     sun.CoronaOpacity,
			"side":        h.three.Get("DoubleSide"),
			"blending":    h.three.Get("AdditiveBlending"),
		}),
	)
	corona.Get("rotation").Set("x", math.Pi/2)
	sunMesh.Call("add", corona)

	light := h.three.Get("PointLight").New(int(sun.LightColor), sun.LightIntensity, 0, 0)
	sunMesh.Call("add", light)
	h.scene.Call("add", h.three.Get("AmbientLight").New(0xffffff, 0.08))
}

func (h *threeHost) AddPlanet(planet schema.Planet) solar.Node {
	mesh := h.three.Get("Mesh").New(
		h.three.Get("SphereGeometry").New(planet.Size, 32, 32),
		h.three.Get("MeshStandardMaterial").New(map[string]any{
			"color":     int(planet.Color),
			"roughness": 0.8,
			"metalness": 0.0,
		}),
	)
	mesh.Set("name", planet.Name)
	h.scene.Call("add", mesh)
	return &meshNode{mesh: mesh}
}

func (h *threeHost) attribute(values []float32, itemSize int) js.Value {
	return h.three.Get("BufferAttribute").New(float32Array(values), itemSize)
}

func (h *threeHost) texture(img *image.NRGBA) js.Value {
	pixels := js.Global().Get("Uint8Array").New(len(img.Pix))
	js.CopyBytesToJS(pixels, img.Pix)
	texture := h.three.Get("DataTexture").New(
		pixels,
		img.Bounds().Dx(),
		img.Bounds().Dy(),
		h.three.Get("RGBAFormat"),
	)
	texture.Set("colorSpace", h.three.Get("SRGBColorSpace"))
	texture.Set("needsUpdate", true)
	return texture
}

func float32Array(values []float32) js.Value {
	data := make([]byte, len(values)*4)
	for i, value := range values {
		binary.LittleEndian.PutUint32(data[i*4:], math.Float32bits(value))
	}
	array := js.Global().Get("Float32Array").New(len(values))
	js.CopyBytesToJS(js.Global().Get("Uint8Array").New(array.Get("buffer")), data)
	return array
}

type uniformNode struct {
	uniform js.Value
}

func (n *uniformNode) SetTime(seconds float64) {
	n.uniform.Set("value", seconds)
}

type meshNode struct {
	mesh js.Value
}

func (n *meshNode) SetPosition(position dprec.Vec3) {
	n.mesh.Get("position").Call("set", position.X, position.Y, position.Z)
}
