package systems

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/vectorfield/components"
	"github.com/pthm-cable/vectorfield/config"
)

// RectPainter is the paint target particles are drawn onto.
type RectPainter interface {
	FillRect(x, y, w, h float64, c color.NRGBA)
}

// Particle is a read-only copy of one particle's state.
type Particle struct {
	Pos   r2.Vec
	Color color.NRGBA
}

// ParticleSystem is the capability set shared by advection strategies.
// The host only talks to this interface.
type ParticleSystem interface {
	// Reset discards every particle and spawns Count new ones.
	Reset()
	// Advance moves each particle moveDelta along the field heading at time t.
	Advance(t, frequency, maxAngle float64)
	// Render paints each particle as a filled square.
	Render(target RectPainter)
	// Reconfigure applies new count, move delta and size.
	Reconfigure(cfg config.ParticleConfig)
	// Resize changes the container used for spawning and normalization.
	Resize(container Region)
	// SetUniform switches the normalization convention.
	SetUniform(uniform bool)
	// Particles returns a snapshot of all particles in creation order.
	Particles() []Particle
	// Len returns the number of particles.
	Len() int
}

// NewParticleSystem builds the particle system for the configured strategy.
func NewParticleSystem(field NoiseField, container Region, cfg config.ParticleConfig, uniform bool, seed int64) ParticleSystem {
	simple := NewSimpleParticles(field, container, cfg, uniform, seed)
	if cfg.Strategy == config.StrategyWrap {
		return &WrappingParticles{SimpleParticles: simple}
	}
	return simple
}

// SimpleParticles advects particles without bounding them to the container.
// Particles that drift off the canvas keep being advected.
//
// Particles are stored as entities in an ECS world; order keeps them in
// creation order so truncation and iteration are deterministic.
type SimpleParticles struct {
	world  *ecs.World
	mapper *ecs.Map2[components.Position, components.Tint]
	order  []ecs.Entity

	field     NoiseField
	container Region
	uniform   bool
	cfg       config.ParticleConfig
	rng       *rand.Rand
}

// NewSimpleParticles creates the system and spawns cfg.Count particles.
func NewSimpleParticles(field NoiseField, container Region, cfg config.ParticleConfig, uniform bool, seed int64) *SimpleParticles {
	world := ecs.NewWorld()
	s := &SimpleParticles{
		world:     world,
		mapper:    ecs.NewMap2[components.Position, components.Tint](world),
		order:     make([]ecs.Entity, 0, cfg.Count),
		field:     field,
		container: container,
		uniform:   uniform,
		cfg:       cfg,
		rng:       rand.New(rand.NewSource(seed)),
	}
	s.Reset()
	return s
}

// Reset discards every particle and spawns Count new ones.
func (s *SimpleParticles) Reset() {
	for _, e := range s.order {
		s.world.RemoveEntity(e)
	}
	s.order = s.order[:0]
	s.spawn(s.cfg.Count)
}

// spawn appends n particles at random positions inside the container.
func (s *SimpleParticles) spawn(n int) {
	for i := 0; i < n; i++ {
		pos := components.Position{
			X: s.container.X + s.rng.Float64()*s.container.W,
			Y: s.container.Y + s.rng.Float64()*s.container.H,
		}
		tint := components.Tint{
			R: uint8(s.rng.Intn(256)),
			G: uint8(s.rng.Intn(256)),
			B: uint8(s.rng.Intn(256)),
		}
		s.order = append(s.order, s.mapper.NewEntity(&pos, &tint))
	}
}

// Advance moves each particle moveDelta along the field heading at time t.
func (s *SimpleParticles) Advance(t, frequency, maxAngle float64) {
	norm := NewNormalizer(s.container, s.uniform)
	for _, e := range s.order {
		pos, _ := s.mapper.Get(e)
		angle := norm.Angle(s.field, pos.X, pos.Y, frequency, t, maxAngle)
		heading := r2.Vec{X: math.Cos(angle), Y: math.Sin(angle)}
		*pos = components.Position(r2.Add(r2.Vec(*pos), r2.Scale(s.cfg.MoveDelta, heading)))
	}
}

// Render paints each particle as a filled square centred on its position.
func (s *SimpleParticles) Render(target RectPainter) {
	size := s.cfg.Size
	half := size / 2
	for _, e := range s.order {
		pos, tint := s.mapper.Get(e)
		target.FillRect(pos.X-half, pos.Y-half, size, size, color.NRGBA{R: tint.R, G: tint.G, B: tint.B, A: 255})
	}
}

// Reconfigure applies new parameters. A lower count drops the newest
// particles; a higher count appends new random ones.
func (s *SimpleParticles) Reconfigure(cfg config.ParticleConfig) {
	if cfg.Count < 0 {
		cfg.Count = 0
	}
	s.cfg = cfg
	switch n := len(s.order); {
	case cfg.Count < n:
		for _, e := range s.order[cfg.Count:] {
			s.world.RemoveEntity(e)
		}
		s.order = s.order[:cfg.Count]
	case cfg.Count > n:
		s.spawn(cfg.Count - n)
	}
}

// Resize changes the container used for spawning and normalization.
func (s *SimpleParticles) Resize(container Region) {
	s.container = container
}

// SetUniform switches the normalization convention.
func (s *SimpleParticles) SetUniform(uniform bool) {
	s.uniform = uniform
}

// Container returns the current container region.
func (s *SimpleParticles) Container() Region {
	return s.container
}

// Particles returns a snapshot of all particles in creation order.
func (s *SimpleParticles) Particles() []Particle {
	out := make([]Particle, 0, len(s.order))
	for _, e := range s.order {
		pos, tint := s.mapper.Get(e)
		out = append(out, Particle{
			Pos:   r2.Vec(*pos),
			Color: color.NRGBA{R: tint.R, G: tint.G, B: tint.B, A: 255},
		})
	}
	return out
}

// Len returns the number of particles.
func (s *SimpleParticles) Len() int {
	return len(s.order)
}
