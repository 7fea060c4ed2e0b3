// Package sim ties the joint model, the animation machine and the smoke
// together into one figure that front-ends tick and steer.
package sim

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/decker502/nanobot/pkg/animation"
	"github.com/decker502/nanobot/pkg/config"
	"github.com/decker502/nanobot/pkg/input"
	"github.com/decker502/nanobot/pkg/joint"
	"github.com/decker502/nanobot/pkg/logging"
	"github.com/decker502/nanobot/pkg/particle"
	"github.com/decker502/nanobot/pkg/rig"
	"github.com/decker502/nanobot/pkg/settings"
	"github.com/decker502/nanobot/pkg/view"
)

// ErrQuit is returned by Apply when the user asked to leave.
var ErrQuit = errors.New("quit requested")

// TurnStep is the body rotation per arrow key press, in degrees.
const TurnStep = 5.0

// Options configures a Simulation.
type Options struct {
	Mode     animation.Mode
	PoolSize int
	Color    particle.Color
	Camera   view.Camera

	ParticlesAnimating bool
	ParticlesVisible   bool
}

// OptionsFromConfig extracts the simulation part of cfg.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Mode:               cfg.StartMode(),
		PoolSize:           cfg.PoolSize(),
		Color:              cfg.ParticleColor(),
		Camera:             cfg.Camera.View(),
		ParticlesAnimating: cfg.Particles.Enabled,
		ParticlesVisible:   cfg.Particles.Visible,
	}
}

// Simulation is one animated figure with its smoke.
//
// It is not safe for concurrent use: ticks, Apply and Drag must all run on
// the same goroutine.
type Simulation struct {
	Model     *joint.Model
	Animation *animation.Machine
	Particles *particle.System

	// The smoke advances only while both are set.
	ParticlesAnimating bool
	ParticlesVisible   bool

	Wireframe bool
	Lights    bool

	cursor joint.Label
	pose   rig.Pose
	log    zerolog.Logger
}

// New builds a simulation with every joint at its base pose.
//
// Parameters:
//   - opts: start mode, smoke and camera settings
//   - rng: shared random source; nil seeds one from the clock
//   - log: base logger
//
// Returns:
//   - *Simulation: the figure
//   - error: opts.Mode is not a valid mode
func New(opts Options, rng *rand.Rand, log zerolog.Logger) (*Simulation, error) {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	model := joint.NewModel()
	s := &Simulation{
		Model:     model,
		Animation: animation.NewMachine(model, rng, log),
		Particles: particle.NewSystem(model, rng,
			particle.WithPoolSize(opts.PoolSize),
			particle.WithColor(opts.Color),
			particle.WithView(opts.Camera.View()),
		),
		ParticlesAnimating: opts.ParticlesAnimating,
		ParticlesVisible:   opts.ParticlesVisible,
		Lights:             true,
		cursor:             -1,
		log:                logging.Component(log, "Simulation"),
	}
	if err := s.Animation.SetMode(opts.Mode); err != nil {
		return nil, fmt.Errorf("failed to start simulation: %w", err)
	}

	s.log.Info().
		Str("mode", opts.Mode.String()).
		Int("particles", s.Particles.Len()).
		Str("color", s.Particles.Color().String()).
		Msg("simulation ready")
	return s, nil
}

// Tick advances the figure one frame: animation first, then the smoke.
func (s *Simulation) Tick() {
	s.Animation.Tick()
	if s.ParticlesAnimating && s.ParticlesVisible {
		s.Particles.Tick()
	}
}

// Pose composes the world matrices for the current rotations. The result
// is reused by the next call.
func (s *Simulation) Pose() *rig.Pose {
	rig.ComposeInto(&s.pose, s.Model, s.Animation.Frame())
	return &s.pose
}

// Status describes what the figure is doing, for the on-screen panel.
func (s *Simulation) Status() string {
	var doing string
	switch s.Animation.Mode() {
	case animation.Standby:
		doing = "standing by"
	case animation.Reset:
		doing = "rebooting"
	case animation.Fly:
		doing = "flying"
	case animation.Dance:
		doing = "dancing"
	case animation.Walk:
		doing = "walking"
	default:
		doing = "confused"
	}
	return "Nanobot is " + doing
}

var modeActions = map[input.Action]animation.Mode{
	input.ActionStandby: animation.Standby,
	input.ActionFly:     animation.Fly,
	input.ActionDance:   animation.Dance,
	input.ActionWalk:    animation.Walk,
	input.ActionReboot:  animation.Reset,
	input.ActionReset:   animation.Reset,
}

// ModeFor returns the animation mode an action selects.
func ModeFor(a input.Action) (animation.Mode, bool) {
	m, ok := modeActions[a]
	return m, ok
}

// Apply performs a bound action.
//
// Returns:
//   - error: ErrQuit for input.ActionQuit, nil otherwise
func (s *Simulation) Apply(a input.Action) error {
	if mode, ok := modeActions[a]; ok {
		return s.Animation.SetMode(mode)
	}

	switch a {
	case input.ActionTurnLeft:
		s.Model.Rotate(joint.AxisX, joint.Body, TurnStep)
	case input.ActionTurnRight:
		s.Model.Rotate(joint.AxisX, joint.Body, -TurnStep)
	case input.ActionTiltUp:
		s.Model.Rotate(joint.AxisY, joint.Body, -TurnStep)
	case input.ActionTiltDown:
		s.Model.Rotate(joint.AxisY, joint.Body, TurnStep)
	case input.ActionFreezeSmoke:
		s.ParticlesAnimating = !s.ParticlesAnimating
	case input.ActionShowSmoke:
		s.ParticlesVisible = !s.ParticlesVisible
	case input.ActionWireframe:
		s.Wireframe = !s.Wireframe
	case input.ActionLights:
		s.Lights = !s.Lights
	case input.ActionCycleColor:
		s.Particles.SetColor(s.Particles.Color().Next())
	case input.ActionSelectAll:
		s.Model.SelectAll()
	case input.ActionSelectNone:
		s.Model.SelectNone()
	case input.ActionPickNext:
		s.pickNext()
	case input.ActionQuit:
		return ErrQuit
	case input.ActionNone:
	default:
		s.log.Debug().Int("action", int(a)).Msg("unhandled action")
	}
	return nil
}

// pickNext moves the single-joint selection cursor to the following label.
func (s *Simulation) pickNext() {
	s.cursor = (s.cursor + 1) % joint.Label(joint.Count)
	s.Model.SelectNone()
	s.Model.Pick(s.cursor)
}

// Cursor returns the label last selected by ActionPickNext, -1 before the
// first one.
func (s *Simulation) Cursor() joint.Label {
	return s.cursor
}

// Drag rotates the selected joints by a pointer offset in pixels.
func (s *Simulation) Drag(dx, dy int) {
	if dx == 0 && dy == 0 {
		return
	}
	s.Model.MoveSelected(float64(dx), float64(dy))
}

// PickAt toggles the selection of the joint whose drawn segment passes
// closest to the pixel (x, y), if one lies within radius pixels.
//
// Returns:
//   - joint.Label: the toggled joint
//   - bool: false when nothing was close enough
func (s *Simulation) PickAt(proj *view.Projector, x, y, radius float64) (joint.Label, bool) {
	pose := s.Pose()
	best, bestDist := rig.Part(-1), radius
	for p := rig.Part(0); int(p) < rig.PartCount; p++ {
		ax, ay, ok1 := proj.Project(pose.Origin(p))
		bx, by, ok2 := proj.Project(pose.TipPoint(p))
		if !ok1 || !ok2 {
			continue
		}
		if d := segmentDistance(x, y, ax, ay, bx, by); d < bestDist {
			best, bestDist = p, d
		}
	}
	if best < 0 {
		return -1, false
	}

	l := best.Joint()
	s.Model.Pick(l)
	s.log.Debug().Str("joint", l.String()).Bool("selected", s.Model.Selected(l)).Msg("picked")
	return l, true
}

// segmentDistance is the distance from (px, py) to the segment a-b.
func segmentDistance(px, py, ax, ay, bx, by float64) float64 {
	vx, vy := bx-ax, by-ay
	lenSq := vx*vx + vy*vy
	t := 0.0
	if lenSq > 0 {
		t = ((px-ax)*vx + (py-ay)*vy) / lenSq
		t = math.Max(0, math.Min(1, t))
	}
	return math.Hypot(px-(ax+t*vx), py-(ay+t*vy))
}

// ApplyPreferences restores the runtime toggles saved by a previous run.
func (s *Simulation) ApplyPreferences(p *settings.Preferences) {
	s.Particles.SetColor(p.Color())
	s.Wireframe = p.Wireframe
	s.Lights = p.Lights
	s.ParticlesAnimating = p.ParticlesAnimating
	s.ParticlesVisible = p.ParticlesVisible
}

// StorePreferences copies the runtime toggles into m. It does not save.
func (s *Simulation) StorePreferences(m *settings.Manager) {
	m.SetSmokeColor(s.Particles.Color())
	m.SetWireframe(s.Wireframe)
	m.SetLights(s.Lights)
	m.SetParticles(s.ParticlesAnimating, s.ParticlesVisible)
}

// Run ticks the simulation every interval until ctx is done or onFrame
// fails. onFrame runs after each tick; returning ErrQuit stops Run cleanly.
//
// Returns:
//   - error: ctx.Err() on cancellation, onFrame's error otherwise, nil on ErrQuit
func (s *Simulation) Run(ctx context.Context, interval time.Duration, onFrame func(*Simulation) error) error {
	if interval <= 0 {
		return fmt.Errorf("tick interval must be positive, got %s", interval)
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.Tick()
			if onFrame == nil {
				continue
			}
			if err := onFrame(s); err != nil {
				if errors.Is(err, ErrQuit) {
					return nil
				}
				return err
			}
		}
	}
}
