package particle

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decker502/nanobot/pkg/joint"
	"github.com/decker502/nanobot/pkg/rig"
)

func newTestSystem(t *testing.T, opts ...Option) (*System, *joint.Model) {
	t.Helper()
	m := joint.NewModel()
	return NewSystem(m, rand.New(rand.NewSource(7)), opts...), m
}

func nearAnchor(emitted mgl64.Vec3, a rig.Anchor) bool {
	const tol = jitterPos + 1e-9
	return math.Abs(emitted[0]-a.Pos[0]) <= tol &&
		math.Abs(emitted[1]-a.Pos[1]) <= tol &&
		math.Abs(emitted[2]-a.Pos[2]) < 1e-12
}

func TestNewSystemDefaults(t *testing.T) {
	s, _ := newTestSystem(t)
	assert.Equal(t, DefaultPoolSize, s.Len())
	assert.Equal(t, LightGrey, s.Color())
	for _, p := range s.Particles() {
		assert.False(t, p.Alive())
	}

	small, _ := newTestSystem(t, WithPoolSize(64), WithColor(Orange))
	assert.Equal(t, 64, small.Len())
	assert.Equal(t, Orange, small.Color())

	ignored, _ := newTestSystem(t, WithPoolSize(-3))
	assert.Equal(t, DefaultPoolSize, ignored.Len())
}

func TestFirstTickEmitsWholePool(t *testing.T) {
	s, _ := newTestSystem(t, WithPoolSize(500))
	s.Tick()
	left, right := s.Anchors()

	fromLeft := 0
	for i, p := range s.Particles() {
		require.True(t, p.Alive(), "particle %d", i)

		emitted := p.Pos.Sub(p.Vel)
		l, r := nearAnchor(emitted, left), nearAnchor(emitted, right)
		require.True(t, l || r, "particle %d at %v is not near an anchor", i, emitted)
		if l {
			fromLeft++
		}

		// the first step has already consumed one tick
		life := p.Lifespan + 1
		assert.GreaterOrEqual(t, life, MaxLifespan/3)
		assert.Less(t, life, 2*MaxLifespan/3)
	}
	assert.InDelta(t, 250, fromLeft, 60, "anchors are chosen with equal odds")
}

func TestVelocityFollowsThruster(t *testing.T) {
	s, _ := newTestSystem(t, WithPoolSize(200))
	s.Tick()
	left, right := s.Anchors()

	for _, p := range s.Particles() {
		v := p.Vel.Sub(mgl64.Vec3{0, gravity, 0})
		dl := v.Sub(left.Forward.Mul(0.1))
		dr := v.Sub(right.Forward.Mul(0.1))
		within := func(d mgl64.Vec3) bool {
			return math.Abs(d[0]) <= jitterVel+1e-12 && math.Abs(d[1]) <= jitterVel+1e-12 && math.Abs(d[2]) <= jitterVel+1e-12
		}
		assert.True(t, within(dl) || within(dr), "velocity %v", p.Vel)
	}
}

func TestLifespanDecreasesEveryTick(t *testing.T) {
	s, _ := newTestSystem(t, WithPoolSize(100))
	s.Tick()
	prev := make([]int, s.Len())
	for i, p := range s.Particles() {
		prev[i] = p.Lifespan
	}

	for tick := 0; tick < 3*MaxLifespan; tick++ {
		s.Tick()
		for i, p := range s.Particles() {
			if prev[i] <= 0 {
				// recycled this tick
				assert.GreaterOrEqual(t, p.Lifespan+1, MaxLifespan/3)
			} else {
				assert.Equal(t, prev[i]-1, p.Lifespan)
			}
			prev[i] = p.Lifespan
		}
	}
}

func TestGroundBounce(t *testing.T) {
	s, _ := newTestSystem(t, WithPoolSize(1))
	p := &s.particles[0]
	p.Pos = mgl64.Vec3{0, -1.49, 0}
	p.Vel = mgl64.Vec3{0.02, -0.1, 0}
	p.Lifespan = 10

	s.step(p)
	assert.Less(t, p.Pos[1], groundY)
	assert.Greater(t, p.Vel[1], 0.0, "bounced upwards")
	assert.InDelta(t, 0.1, p.Vel.Len(), 1e-12)
	assert.Equal(t, 9, p.Lifespan)
}

func TestNoBounceAboveGround(t *testing.T) {
	s, _ := newTestSystem(t, WithPoolSize(1))
	p := &s.particles[0]
	p.Pos = mgl64.Vec3{0, 0, 0}
	p.Vel = mgl64.Vec3{0.01, 0, -0.02}
	p.Lifespan = 5

	s.step(p)
	assert.InDelta(t, 0.001, p.Vel[1], 1e-15)
	assert.InDelta(t, 0.01, p.Pos[0], 1e-15)
	assert.InDelta(t, 0.001, p.Pos[1], 1e-15)
	assert.InDelta(t, -0.02, p.Pos[2], 1e-15)
	assert.InDelta(t, 4.02, p.Depth, 1e-12)
}

func TestNormalizeZero(t *testing.T) {
	assert.Equal(t, mgl64.Vec3{}, normalize(mgl64.Vec3{}))
	assert.InDelta(t, 1.0, normalize(mgl64.Vec3{3, 4, 0}).Len(), 1e-12)
}

func TestSortForRender(t *testing.T) {
	s, _ := newTestSystem(t, WithPoolSize(300))
	for i := 0; i < 50; i++ {
		s.Tick()
	}
	s.SortForRender()

	ps := s.Particles()
	for i := 1; i < len(ps); i++ {
		require.GreaterOrEqual(t, ps[i-1].Depth, ps[i].Depth, "index %d", i)
	}
}

func TestSortIsStable(t *testing.T) {
	s, _ := newTestSystem(t, WithPoolSize(4))
	s.particles[0] = Particle{Depth: 2, Lifespan: 1}
	s.particles[1] = Particle{Depth: 5, Lifespan: 2}
	s.particles[2] = Particle{Depth: 2, Lifespan: 3}
	s.particles[3] = Particle{Depth: 9, Lifespan: 4}

	s.SortForRender()
	var order []int
	for _, p := range s.Particles() {
		order = append(order, p.Lifespan)
	}
	assert.Equal(t, []int{4, 2, 1, 3}, order)
}

func TestRenderList(t *testing.T) {
	s, _ := newTestSystem(t, WithPoolSize(3), WithColor(Red))
	s.particles[0] = Particle{Lifespan: 200, Depth: 3}
	s.particles[1] = Particle{Lifespan: 0}
	s.particles[2] = Particle{Lifespan: 50, Depth: 1}

	list := s.RenderList(make([]Billboard, 7))
	require.Len(t, list, 2)
	assert.InDelta(t, 0.5, list[0].Alpha, 1e-12)
	assert.InDelta(t, 0.125, list[1].Alpha, 1e-12)
	assert.Equal(t, [3]float64{1, 0, 0}, list[0].RGB)
	assert.Equal(t, HalfWidth, list[1].HalfWidth)
}

func TestSetColor(t *testing.T) {
	s, _ := newTestSystem(t, WithPoolSize(1))
	s.SetColor(Blue)
	assert.Equal(t, Blue, s.Color())
	s.SetColor(Color(ColorCount))
	s.SetColor(-1)
	assert.Equal(t, Blue, s.Color())
}

func TestReset(t *testing.T) {
	s, _ := newTestSystem(t, WithPoolSize(10))
	s.Tick()
	s.Reset()
	for _, p := range s.Particles() {
		assert.False(t, p.Alive())
	}
	assert.Empty(t, s.RenderList(nil))
}

func TestAnchorsTrackJoints(t *testing.T) {
	s, m := newTestSystem(t, WithPoolSize(1))
	s.Tick()
	before, _ := s.Anchors()

	m.Rotate(joint.AxisX, joint.Body, 90)
	s.Tick()
	after, _ := s.Anchors()
	assert.False(t, before.Pos.ApproxEqualThreshold(after.Pos, 1e-6))
}
