// Package particle simulates the exhaust smoke trailing from the figure's
// two thrusters.
//
// The pool has a fixed size and is never reallocated: a particle whose
// lifespan runs out is re-emitted in place from one of the thruster anchors
// on the same tick.
package particle

import (
	"cmp"
	"math"
	"math/rand"
	"slices"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/decker502/nanobot/pkg/rig"
	"github.com/decker502/nanobot/pkg/view"
)

// Simulation constants, in world units and ticks.
const (
	MaxLifespan = 200
	HalfWidth   = 0.24

	gravity   = 0.001
	groundY   = -1.5
	jitterPos = 0.15
	jitterVel = 0.005
	maxAlpha  = 0.5
)

// Particle is one smoke puff.
type Particle struct {
	Pos      mgl64.Vec3
	Vel      mgl64.Vec3
	Lifespan int
	// Depth is the distance in front of the camera, refreshed every step.
	Depth float64
}

// Alive reports whether the particle should be drawn.
func (p *Particle) Alive() bool {
	return p.Lifespan > 0
}

// Billboard is a camera-facing quad ready for drawing.
type Billboard struct {
	Pos       mgl64.Vec3
	Depth     float64
	HalfWidth float64
	RGB       [3]float64
	Alpha     float64
}

// System owns the particle pool and the emission state.
//
// Each Tick runs in two phases:
//  1. Recompute both thruster anchors from the joint rotations
//  2. Recycle expired particles, then step every particle
type System struct {
	particles []Particle
	source    rig.Rotations
	rng       *rand.Rand
	color     Color
	view      mgl64.Mat4

	left, right rig.Anchor
}

// Option configures a System.
type Option func(*System)

// WithPoolSize overrides DefaultPoolSize. Non-positive sizes are ignored.
func WithPoolSize(n int) Option {
	return func(s *System) {
		if n > 0 {
			s.particles = make([]Particle, n)
		}
	}
}

// WithView sets the view matrix used for depth sorting.
func WithView(m mgl64.Mat4) Option {
	return func(s *System) {
		s.view = m
	}
}

// WithColor sets the initial tint.
func WithColor(c Color) Option {
	return func(s *System) {
		s.SetColor(c)
	}
}

// NewSystem creates a system emitting from the thrusters of source.
//
// Parameters:
//   - source: joint rotations the anchors are derived from
//   - rng: random source; nil seeds one from the clock
//   - opts: pool size, view matrix and colour overrides
func NewSystem(source rig.Rotations, rng *rand.Rand, opts ...Option) *System {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	s := &System{
		source: source,
		rng:    rng,
		color:  LightGrey,
		view:   view.DefaultCamera().View(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.particles == nil {
		s.particles = make([]Particle, DefaultPoolSize)
	}
	return s
}

// Reset kills every particle. The next Tick re-emits the whole pool.
func (s *System) Reset() {
	clear(s.particles)
}

// SetView replaces the view matrix used for depth.
func (s *System) SetView(m mgl64.Mat4) {
	s.view = m
}

// SetColor changes the tint. Values outside the palette are ignored.
func (s *System) SetColor(c Color) {
	if !c.Valid() {
		return
	}
	s.color = c
}

// Color returns the current tint.
func (s *System) Color() Color {
	return s.color
}

// Len returns the pool size.
func (s *System) Len() int {
	return len(s.particles)
}

// Particles exposes the pool. Callers must treat it as read-only.
func (s *System) Particles() []Particle {
	return s.particles
}

// Anchors returns the emission anchors computed by the last Tick.
func (s *System) Anchors() (left, right rig.Anchor) {
	return s.left, s.right
}

// Tick advances the simulation one frame.
func (s *System) Tick() {
	s.left, s.right = rig.Anchors(s.source)
	for i := range s.particles {
		p := &s.particles[i]
		if p.Lifespan <= 0 {
			s.recycle(p)
		}
		s.step(p)
	}
}

// recycle re-emits p from one of the two anchors, chosen with equal odds.
func (s *System) recycle(p *Particle) {
	a := s.left
	if s.rng.Intn(2) == 0 {
		a = s.right
	}

	p.Pos = mgl64.Vec3{
		a.Pos[0] + s.uniform(jitterPos),
		a.Pos[1] + s.uniform(jitterPos),
		a.Pos[2],
	}
	p.Vel = mgl64.Vec3{
		a.Forward[0]/10 + s.uniform(jitterVel),
		a.Forward[1]/10 + s.uniform(jitterVel),
		a.Forward[2]/10 + s.uniform(jitterVel),
	}
	p.Lifespan = s.rng.Intn(MaxLifespan/3) + MaxLifespan/3
}

// uniform returns a value in [-r, r).
func (s *System) uniform(r float64) float64 {
	return s.rng.Float64()*2*r - r
}

func (s *System) step(p *Particle) {
	p.Vel[1] += gravity
	p.Pos = p.Pos.Add(p.Vel)

	if p.Pos[1] < groundY {
		// bounce off the floor and scatter sideways
		p.Vel[1] *= -0.1
		p.Vel[0] += 2 * (s.rng.Float64()*p.Vel[1] - 0.5*p.Vel[1])
		p.Vel[2] += 2 * (s.rng.Float64()*p.Vel[1] - 0.5*p.Vel[1])
		p.Vel = normalize(p.Vel).Mul(0.1)
	}

	p.Depth = view.Depth(s.view, p.Pos)
	p.Lifespan--
}

func normalize(v mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l == 0 || math.IsNaN(l) {
		return v
	}
	return v.Mul(1 / l)
}

// SortForRender orders the pool farthest-first so alpha blending composes
// back to front. The sort is stable: equal depths keep their pool order.
func (s *System) SortForRender() {
	slices.SortStableFunc(s.particles, func(a, b Particle) int {
		return cmp.Compare(b.Depth, a.Depth)
	})
}

// RenderList appends the live particles, in pool order, to dst[:0] as
// billboards. Call SortForRender first for back-to-front output.
func (s *System) RenderList(dst []Billboard) []Billboard {
	dst = dst[:0]
	rgb := s.color.RGB()
	for i := range s.particles {
		p := &s.particles[i]
		if !p.Alive() {
			continue
		}
		dst = append(dst, Billboard{
			Pos:       p.Pos,
			Depth:     p.Depth,
			HalfWidth: HalfWidth,
			RGB:       rgb,
			Alpha:     maxAlpha * float64(p.Lifespan) / MaxLifespan,
		})
	}
	return dst
}
