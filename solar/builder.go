package solar

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"math/rand/v2"

	"github.com/mokiat/gomath/dprec"

	"github.com/nobonobo/solar-top/schema"
)

var ErrAlreadyBuilt = errors.New("scene already built")

// Host is the scene a Builder populates. Implementations wrap a concrete
// rendering framework.
type Host interface {
	// PixelRatio is the ratio of device pixels to layout pixels.
	PixelRatio() float64
	AddStarfield(field *Starfield, shader StarShader) StarfieldNode
	AddSun(sun Sun, glow *image.NRGBA)
	AddPlanet(planet schema.Planet) Node
}

type StarfieldNode interface {
	SetTime(seconds float64)
}

type Node interface {
	SetPosition(position dprec.Vec3)
}

// Builder constructs the solar system scene once and animates it from the
// host's frame callback. It is not safe for concurrent use.
type Builder struct {
	host   Host
	config Config
	rng    *rand.Rand

	stars    *Starfield
	starNode StarfieldNode
	orbits   []*Orbit
	nodes    []Node
	elapsed  float64
	isBuilt  bool
}

func NewBuilder(host Host, cfg Config) (*Builder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Builder{
		host:   host,
		config: cfg,
		rng:    rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)),
	}, nil
}

// Build populates the host. The builder only records the scene once every
// node was created, so a failed Build can be retried on a fixed host.
func (b *Builder) Build() error {
	if b.isBuilt {
		return ErrAlreadyBuilt
	}

	stars := GenerateStars(b.rng, b.config.Starfield)
	starNode := b.host.AddStarfield(stars, TwinkleShader)
	if starNode == nil {
		return errors.New("host returned no node for starfield")
	}
	starNode.SetTime(0.0)

	glow := GlowTexture(b.config.GlowSize, b.config.GlowSize)
	b.host.AddSun(b.config.Sun, glow)

	orbits := make([]*Orbit, len(b.config.Planets))
	nodes := make([]Node, len(b.config.Planets))
	for i, planet := range b.config.Planets {
		orbit := NewOrbit(planet)
		node := b.host.AddPlanet(planet)
		if node == nil {
			return fmt.Errorf("host returned no node for planet %q", planet.Name)
		}
		node.SetPosition(orbit.Position())
		orbits[i] = orbit
		nodes[i] = node
	}

	b.stars = stars
	b.starNode = starNode
	b.orbits = orbits
	b.nodes = nodes
	b.isBuilt = true

	slog.Debug("Scene built",
		slog.Int("stars", stars.Len()),
		slog.Int("planets", len(orbits)),
		slog.Uint64("seed", b.config.Seed),
	)
	return nil
}

// Update is called once per frame with the total elapsed time in seconds
// and the delta since the previous frame in frame units.
func (b *Builder) Update(elapsed, delta float64) {
	if !b.isBuilt {
		return
	}
	b.elapsed = elapsed
	b.starNode.SetTime(elapsed)
	for i, orbit := range b.orbits {
		orbit.Advance(delta)
		b.nodes[i].SetPosition(orbit.Position())
	}
}

func (b *Builder) Config() Config {
	return b.config
}

func (b *Builder) Stars() *Starfield {
	return b.stars
}

func (b *Builder) Orbits() []*Orbit {
	return b.orbits
}

func (b *Builder) Elapsed() float64 {
	return b.elapsed
}
