// Package animation drives the joint model through named behaviours.
//
// A Machine holds the active mode, a frame counter and a buffer of target
// angles. Every Tick the active behaviour rewrites some targets from
// waveforms and then eases every joint toward its target with
// joint.Model.Place.
package animation

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/decker502/nanobot/pkg/joint"
)

// ErrUnknownMode is returned by SetMode for a value outside the Mode enum.
var ErrUnknownMode = errors.New("unknown animation mode")

// Machine is the animation context for one figure.
type Machine struct {
	model *joint.Model
	rng   *rand.Rand
	log   zerolog.Logger

	mode    Mode
	frame   int
	targets [joint.Count][3]float64

	// random walks owned by the fly behaviour
	walks [numFlyWalks]RandomWalk
}

// NewMachine creates a machine in Standby over model.
//
// Parameters:
//   - model: joint registry the machine writes to
//   - rng: random source for the stochastic behaviours; nil seeds one from the clock
//   - log: diagnostics sink, zerolog.Nop() to discard
func NewMachine(model *joint.Model, rng *rand.Rand, log zerolog.Logger) *Machine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	m := &Machine{
		model: model,
		rng:   rng,
		log:   log.With().Str("component", "Animation").Logger(),
		mode:  Standby,
	}
	m.clearTargets()
	return m
}

// Mode returns the active mode.
func (m *Machine) Mode() Mode {
	return m.mode
}

// Frame returns the number of ticks processed so far.
func (m *Machine) Frame() int {
	return m.frame
}

// Target returns the current target angles (x, y, z) for a joint.
func (m *Machine) Target(l joint.Label) [3]float64 {
	if !l.Valid() {
		return [3]float64{}
	}
	return m.targets[l]
}

// SetMode switches behaviour. Every mode except Standby runs its start
// routine, which re-baselines the targets to the rest pose and applies the
// mode's fixed offsets. The frame counter is not reset.
func (m *Machine) SetMode(mode Mode) error {
	if !mode.Valid() {
		m.log.Warn().Int("mode", int(mode)).Msg("invalid animation")
		return fmt.Errorf("%w: %d", ErrUnknownMode, int(mode))
	}
	m.mode = mode
	if start := behaviours[mode].start; start != nil {
		start(m)
	}
	m.log.Debug().Stringer("mode", mode).Int("frame", m.frame).Msg("mode changed")
	return nil
}

// Tick advances the frame counter and runs one frame of the active mode.
func (m *Machine) Tick() {
	m.frame++
	if run := behaviours[m.mode].run; run != nil {
		run(m)
	}
}

func (m *Machine) clearTargets() {
	base := joint.BasePose()
	for i := range base {
		m.targets[i] = base[i].Rot
	}
}

func (m *Machine) set(l joint.Label, axis int, v float64) {
	m.targets[l][axis] = v
}

// holdBodyOrientation copies the body's live rotation into the targets so
// the behaviour never fights manual orientation input.
func (m *Machine) holdBodyOrientation() {
	m.set(joint.Body, ax, m.model.Rotation(joint.AxisX, joint.Body))
	m.set(joint.Body, ay, m.model.Rotation(joint.AxisY, joint.Body))
	m.set(joint.Body, az, m.model.Rotation(joint.AxisZ, joint.Body))
}

// moveJoints eases every joint toward its target and reports whether any
// joint moved.
func (m *Machine) moveJoints(speed float64) bool {
	changed := false
	for i := range m.targets {
		t := m.targets[i]
		if m.model.Place(joint.Label(i), speed, t[ax], t[ay], t[az]) {
			changed = true
		}
	}
	return changed
}

func (m *Machine) sine(amplitude, factor, phase float64) float64 {
	return Sine(m.frame, amplitude, factor, phase)
}

func (m *Machine) saw(amplitude, factor float64) float64 {
	return Sawtooth(m.frame, amplitude, factor)
}
