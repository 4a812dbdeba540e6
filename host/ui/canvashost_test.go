package ui

import (
	"errors"
	"image"
	"math"
	"testing"

	"github.com/mokiat/gomath/sprec"
	"github.com/mokiat/lacking/ui"

	"github.com/nobonobo/solar-top/solar"
)

type fakeImageCreator struct {
	err    error
	images []image.Image
}

func (f *fakeImageCreator) CreateImage(img image.Image) (*ui.Image, error) {
	f.images = append(f.images, img)
	return nil, f.err
}

func buildCanvasHost(t *testing.T) (*canvasHost, *solar.Builder) {
	t.Helper()
	host := newCanvasHost(12.0, 1.0)
	builder, err := solar.NewBuilder(host, solar.DefaultConfig())
	if err != nil {
		t.Fatalf("NewBuilder() error = %v", err)
	}
	if err := builder.Build(); err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return host, builder
}

func TestCanvasHost_Build(t *testing.T) {
	host, builder := buildCanvasHost(t)

	if host.stars != builder.Stars() {
		t.Error("starfield not attached")
	}
	if !host.hasSun || host.sun.Radius != 1.6 || host.glow == nil {
		t.Errorf("sun not attached: %+v", host.sun)
	}
	if len(host.planets) != len(builder.Orbits()) {
		t.Fatalf("planets = %d, want %d", len(host.planets), len(builder.Orbits()))
	}
	if string(host.planets[2].label) != "Earth" {
		t.Errorf("label = %q", string(host.planets[2].label))
	}
}

func TestCanvasHost_Update(t *testing.T) {
	host, builder := buildCanvasHost(t)

	builder.Update(2.5, 100.0)

	if host.starTime != 2.5 {
		t.Errorf("star time = %v, want 2.5", host.starTime)
	}
	for i, orbit := range builder.Orbits() {
		got := host.planets[i].position
		want := orbit.Position()
		if math.Abs(got.X-want.X) > 1e-12 || math.Abs(got.Z-want.Z) > 1e-12 {
			t.Errorf("%s at %v, want %v", orbit.Planet.Name, got, want)
		}
	}
}

func TestCanvasHost_Upload(t *testing.T) {
	host, _ := buildCanvasHost(t)

	creator := &fakeImageCreator{}
	if err := host.Upload(creator); err != nil {
		t.Fatalf("Upload() error = %v", err)
	}
	if len(creator.images) != 1 || creator.images[0] != image.Image(host.glow) {
		t.Errorf("glow texture not uploaded")
	}

	failure := errors.New("no context")
	if err := host.Upload(&fakeImageCreator{err: failure}); !errors.Is(err, failure) {
		t.Errorf("Upload() error = %v, want %v", err, failure)
	}
}

func TestCanvasHost_UploadWithoutSun(t *testing.T) {
	creator := &fakeImageCreator{}
	if err := newCanvasHost(10, 1.0).Upload(creator); err != nil {
		t.Fatalf("Upload() error = %v", err)
	}
	if len(creator.images) != 0 {
		t.Error("nothing should be uploaded before the sun exists")
	}
}

func TestCanvasHost_StarRadius(t *testing.T) {
	tests := []struct {
		name       string
		pixelRatio float64
		star       solar.Star
		want       float32
	}{
		{
			name:       "center",
			pixelRatio: 1.0,
			star:       solar.Star{Size: 2.0},
			want:       4.5,
		},
		{
			name:       "edge",
			pixelRatio: 1.0,
			star:       solar.Star{Position: sprec.NewVec3(220, 0, 0), Size: 2.0},
			want:       2.0,
		},
		{
			name:       "retina",
			pixelRatio: 2.0,
			star:       solar.Star{Size: 2.0},
			want:       9.0,
		},
		{
			name:       "unknown ratio",
			pixelRatio: 0.0,
			star:       solar.Star{Size: 2.0},
			want:       4.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host := newCanvasHost(12.0, tt.pixelRatio)
			got := host.starRadius(tt.star, 220.0)
			if math.Abs(float64(got-tt.want)) > 1e-5 {
				t.Errorf("starRadius() = %v, want %v", got, tt.want)
			}
		})
	}
}
