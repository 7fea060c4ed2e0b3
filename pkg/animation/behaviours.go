package animation

import (
	"math"

	"github.com/decker502/nanobot/pkg/joint"
)

// target axis slots
const (
	ax = iota
	ay
	az
)

// Easing speeds in degrees per frame.
const (
	resetSpeed = 0.8
	flySpeed   = 2
	danceSpeed = 5
	walkSpeed  = 2
)

type behaviour struct {
	start func(*Machine)
	run   func(*Machine)
}

// behaviours is indexed by Mode. Standby has neither routine.
var behaviours = [numModes]behaviour{
	Standby: {},
	Reset:   {start: (*Machine).clearTargets, run: (*Machine).runReset},
	Fly:     {start: (*Machine).startFly, run: (*Machine).runFly},
	Dance:   {start: (*Machine).clearTargets, run: (*Machine).runDance},
	Walk:    {start: (*Machine).startWalk, run: (*Machine).runWalk},
}

func (m *Machine) runReset() {
	if !m.moveJoints(resetSpeed) {
		m.mode = Standby
		m.log.Debug().Int("frame", m.frame).Msg("reset complete")
	}
}

const (
	flyLeftFootY = iota
	flyRightFootY
	flyLeftFootX
	flyRightFootX
	flyLeftPanelY
	flyRightPanelY
	numFlyWalks
)

func (m *Machine) startFly() {
	m.clearTargets()
	m.set(joint.LeftUpperArm, ax, -15)
	m.set(joint.LeftUpperArm, ay, -45)
	m.set(joint.RightUpperArm, ax, -15)
	m.set(joint.RightUpperArm, ay, 45)
	m.set(joint.RightForearm, ay, 0)
	m.set(joint.RightFingers, ax, 0)
	m.set(joint.RightFingers, ay, 0)
	m.set(joint.LeftUpperLeg, ay, 45)
	m.set(joint.RightUpperLeg, ay, 45)
	m.set(joint.LeftLowerLeg, ay, 90)
	m.set(joint.RightLowerLeg, ay, 90)
	m.set(joint.LeftFoot, ay, 45)
	m.set(joint.RightFoot, ay, 45)
	m.set(joint.Camera, ay, 40)
	m.set(joint.Headlights, ay, 5)
	m.set(joint.LeftThruster, ay, -15)
	m.set(joint.RightThruster, ay, -15)
	m.set(joint.LeftSolarPanel, ax, 45)
	m.set(joint.LeftSolarPanel, ay, -15)
	m.set(joint.RightSolarPanel, ax, -45)
	m.set(joint.RightSolarPanel, ay, 15)

	t := &m.targets
	m.walks[flyLeftFootY] = NewRandomWalk(t[joint.LeftFoot][ay], 10, 45, 20, 0.05)
	m.walks[flyRightFootY] = NewRandomWalk(t[joint.RightFoot][ay], 10, 45, 20, 0.05)
	m.walks[flyLeftFootX] = NewRandomWalk(t[joint.LeftFoot][ax], -20, 20, 20, 0.05)
	m.walks[flyRightFootX] = NewRandomWalk(t[joint.RightFoot][ax], -20, 20, 20, 0.05)
	m.walks[flyLeftPanelY] = NewRandomWalk(t[joint.LeftSolarPanel][ay], -30, 0, 10, 0.1)
	m.walks[flyRightPanelY] = NewRandomWalk(t[joint.RightSolarPanel][ay], 0, 30, 10, 0.1)
}

func (m *Machine) runFly() {
	m.holdBodyOrientation()

	arm := -15 + m.sine(15, 3, 0)
	m.set(joint.LeftUpperArm, ax, arm)
	m.set(joint.RightUpperArm, ax, arm)
	wrist := m.sine(40, 3, 0)
	m.set(joint.LeftWrist, ay, wrist)
	m.set(joint.RightWrist, ay, wrist)
	m.set(joint.Camera, ax, m.saw(40, 0.2)+20)
	m.set(joint.Headlights, ax, m.saw(360, 1)+180)

	m.set(joint.LeftFoot, ay, m.walks[flyLeftFootY].Step(m.frame, m.rng))
	m.set(joint.RightFoot, ay, m.walks[flyRightFootY].Step(m.frame, m.rng))
	m.set(joint.LeftFoot, ax, m.walks[flyLeftFootX].Step(m.frame, m.rng))
	m.set(joint.RightFoot, ax, m.walks[flyRightFootX].Step(m.frame, m.rng))
	m.set(joint.LeftSolarPanel, ay, m.walks[flyLeftPanelY].Step(m.frame, m.rng))
	m.set(joint.RightSolarPanel, ay, m.walks[flyRightPanelY].Step(m.frame, m.rng))

	m.moveJoints(flySpeed)
}

func (m *Machine) runDance() {
	m.holdBodyOrientation()

	m.set(joint.RightFingers, ax, m.sine(45, 5, 0))
	m.set(joint.Headlights, ay, m.sine(90, 5, 0)+45)
	m.set(joint.Headlights, ax, m.saw(360, 3)+180)
	m.set(joint.Camera, ay, m.sine(40, 5, 0)+40)
	m.set(joint.LeftToes, ay, m.sine(40, 5, 0))
	m.set(joint.RightForearm, ay, 90+m.sine(10, 5, -math.Pi/2-0.4))
	thrust := m.sine(10, 5, 0)
	m.set(joint.LeftThruster, ay, thrust)
	m.set(joint.RightThruster, ay, thrust)

	m.moveJoints(danceSpeed)
}

func (m *Machine) startWalk() {
	m.clearTargets()
	m.set(joint.Camera, ay, 30)
	m.set(joint.Headlights, ay, 25)
	m.set(joint.LeftUpperArm, ay, -90)
	m.set(joint.RightUpperArm, ay, 90)
	m.set(joint.RightForearm, ay, 0)
}

func (m *Machine) runWalk() {
	m.holdBodyOrientation()

	left := m.sine(22.5, 2, 0)
	right := m.sine(22.5, 2, math.Pi/2)
	m.set(joint.LeftUpperLeg, ay, -left-22.5)
	m.set(joint.LeftLowerLeg, ay, left+22.5)
	m.set(joint.RightUpperLeg, ay, -right-22.5)
	m.set(joint.RightLowerLeg, ay, right+22.5)
	m.set(joint.RightToes, ay, m.sine(22, 2, 0)-22)
	m.set(joint.LeftToes, ay, m.sine(22, 2, math.Pi/2)-22)

	// the head nods against the stride; the body itself stays with the user
	sway := m.sine(10, 2, 0)
	m.set(joint.Camera, ax, -sway)
	m.set(joint.Headlights, ax, -sway)

	fingers := m.sine(45, 10, 0)
	m.set(joint.LeftFingers, ax, fingers)
	m.set(joint.RightFingers, ax, fingers)

	m.moveJoints(walkSpeed)
}
