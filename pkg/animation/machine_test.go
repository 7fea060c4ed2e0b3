package animation

import (
	"bytes"
	"math"
	"math/rand"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decker502/nanobot/pkg/joint"
)

func newTestMachine(t *testing.T) (*Machine, *joint.Model) {
	t.Helper()
	model := joint.NewModel()
	return NewMachine(model, rand.New(rand.NewSource(42)), zerolog.Nop()), model
}

func atBase(model *joint.Model) bool {
	for _, l := range joint.Labels() {
		if model.Joint(l).Rot != joint.Base(l).Rot {
			return false
		}
	}
	return true
}

func TestParseMode(t *testing.T) {
	for _, m := range Modes() {
		got, ok := ParseMode(m.String())
		require.True(t, ok)
		assert.Equal(t, m, got)
	}
	got, ok := ParseMode("Reboot")
	assert.True(t, ok)
	assert.Equal(t, Reset, got)

	_, ok = ParseMode("moonwalk")
	assert.False(t, ok)
	assert.Equal(t, "unknown", Mode(17).String())
}

func TestNewMachineStartsInStandby(t *testing.T) {
	m, model := newTestMachine(t)
	assert.Equal(t, Standby, m.Mode())
	assert.Zero(t, m.Frame())

	for i := 0; i < 10; i++ {
		m.Tick()
	}
	assert.Equal(t, 10, m.Frame())
	assert.True(t, atBase(model), "standby does not move joints")
}

func TestSetModeUnknown(t *testing.T) {
	var buf bytes.Buffer
	model := joint.NewModel()
	m := NewMachine(model, rand.New(rand.NewSource(1)), zerolog.New(&buf))
	require.NoError(t, m.SetMode(Walk))

	err := m.SetMode(Mode(99))
	require.ErrorIs(t, err, ErrUnknownMode)
	assert.Equal(t, Walk, m.Mode(), "state unchanged")
	assert.Contains(t, buf.String(), "invalid animation")

	assert.ErrorIs(t, m.SetMode(-1), ErrUnknownMode)
}

func TestResetReturnsToBase(t *testing.T) {
	m, model := newTestMachine(t)

	model.Rotate(joint.AxisX, joint.Body, 100.4)
	model.Place(joint.Camera, 100, 30, -20, 0)
	model.Place(joint.LeftUpperLeg, 100, 0, 45, 0)

	// largest distance from the rest pose
	d := 100.4
	limit := int(math.Ceil(d/resetSpeed)) + 1

	require.NoError(t, m.SetMode(Reset))
	ticks := 0
	for m.Mode() == Reset {
		m.Tick()
		ticks++
		require.LessOrEqual(t, ticks, limit)
		if m.Mode() == Standby {
			assert.True(t, atBase(model), "standby reached before every joint was at rest")
		}
	}
	assert.Equal(t, limit, ticks)
}

func TestResetFromRestIsImmediate(t *testing.T) {
	m, _ := newTestMachine(t)
	require.NoError(t, m.SetMode(Reset))
	m.Tick()
	assert.Equal(t, Standby, m.Mode())
}

func TestWalkKeepsLowerLegsInRange(t *testing.T) {
	m, model := newTestMachine(t)
	require.NoError(t, m.SetMode(Walk))

	for i := 0; i < 100; i++ {
		m.Tick()
		for _, l := range []joint.Label{joint.LeftLowerLeg, joint.RightLowerLeg} {
			v := model.Rotation(joint.AxisY, l)
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, 45.0)
		}
		assert.Zero(t, model.Rotation(joint.AxisZ, joint.Body))
		assert.LessOrEqual(t, math.Abs(model.Rotation(joint.AxisX, joint.Camera)), 10.0)
	}
}

func TestBehavioursPreserveBodyOrientation(t *testing.T) {
	for _, mode := range []Mode{Fly, Dance, Walk} {
		t.Run(mode.String(), func(t *testing.T) {
			m, model := newTestMachine(t)
			model.Rotate(joint.AxisX, joint.Body, 35)
			model.Rotate(joint.AxisY, joint.Body, -20)
			model.Rotate(joint.AxisZ, joint.Body, 8)
			require.NoError(t, m.SetMode(mode))

			for i := 0; i < 50; i++ {
				m.Tick()
				model.Rotate(joint.AxisX, joint.Body, 5)
			}
			assert.InDelta(t, 35.0+50*5, model.Rotation(joint.AxisX, joint.Body), 1e-9)
			assert.InDelta(t, -20.0, model.Rotation(joint.AxisY, joint.Body), 1e-9)
			assert.InDelta(t, 8.0, model.Rotation(joint.AxisZ, joint.Body), 1e-9)
		})
	}
}

func TestStartRoutinesSetTargets(t *testing.T) {
	m, _ := newTestMachine(t)

	require.NoError(t, m.SetMode(Fly))
	assert.Equal(t, [3]float64{-15, -45, 0}, m.Target(joint.LeftUpperArm))
	assert.Equal(t, [3]float64{-45, 15, 0}, m.Target(joint.RightSolarPanel))
	assert.Equal(t, 90.0, m.Target(joint.LeftLowerLeg)[ay])

	require.NoError(t, m.SetMode(Walk))
	assert.Equal(t, [3]float64{90, -90, 0}, m.Target(joint.LeftUpperArm))
	assert.Equal(t, 0.0, m.Target(joint.LeftLowerLeg)[ay], "walk re-baselines")

	require.NoError(t, m.SetMode(Dance))
	assert.Equal(t, joint.Base(joint.Camera).Rot, m.Target(joint.Camera))
	assert.Equal(t, [3]float64{}, m.Target(joint.Label(99)))
}

func TestFlyRespectsLimits(t *testing.T) {
	m, model := newTestMachine(t)
	require.NoError(t, m.SetMode(Fly))

	for i := 0; i < 2*Period; i++ {
		m.Tick()
		for _, l := range joint.Labels() {
			j := model.Joint(l)
			for a := range j.Rot {
				require.GreaterOrEqual(t, j.Rot[a], j.Min[a], "%s axis %d", l, a)
				require.LessOrEqual(t, j.Rot[a], j.Max[a], "%s axis %d", l, a)
			}
		}
		foot := m.Target(joint.LeftFoot)
		assert.GreaterOrEqual(t, foot[ay], 10.0)
		assert.LessOrEqual(t, foot[ay], 45.0)
	}
}

func TestFrameCounterSurvivesModeChange(t *testing.T) {
	m, _ := newTestMachine(t)
	m.Tick()
	m.Tick()
	require.NoError(t, m.SetMode(Dance))
	m.Tick()
	assert.Equal(t, 3, m.Frame())
}
