// Package rig declares the figure's skeleton: which part hangs off which,
// the static offsets between them and the axis every joint angle turns
// about. Compose turns a set of joint rotations into world matrices.
//
// The matrices follow the OpenGL convention used throughout the project:
// column-major, column vectors, each local step post-multiplied.
package rig

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/decker502/nanobot/pkg/joint"
)

// Part is a node of the skeleton.
type Part int

const (
	Body Part = iota
	LeftThruster
	LeftTurbine
	RightThruster
	RightTurbine
	Headlights
	HeadlightsRight
	LeftSolarPanel
	RightSolarPanel
	Camera
	LeftUpperArm
	LeftForearm
	LeftHand
	LeftFingers
	LeftThumb
	RightUpperArm
	RightForearm
	RightHand
	RightFingers
	RightThumb
	LeftUpperLeg
	LeftLowerLeg
	LeftFoot
	LeftToeOuter
	LeftToeInner
	LeftToeHeel
	RightUpperLeg
	RightLowerLeg
	RightFoot
	RightToeOuter
	RightToeInner
	RightToeHeel

	PartCount = int(RightToeHeel) + 1
)

// TurbineSpin is the turbine rotation rate in degrees per frame.
const TurbineSpin = 4

type node struct {
	name   string
	joint  joint.Label
	parent Part
	ops    []op
	tip    mgl64.Vec3
}

var skeleton = build()

func build() [PartCount]node {
	var s [PartCount]node

	s[Body] = node{
		name: "body", joint: joint.Body, parent: -1,
		ops: []op{
			bend(joint.Body, joint.AxisX, yAxis),
			bend(joint.Body, joint.AxisY, xAxis),
			bend(joint.Body, joint.AxisZ, zAxis),
		},
		tip: mgl64.Vec3{0, 0.6, 0},
	}

	s[LeftThruster] = node{
		name: "left thruster", joint: joint.LeftThruster, parent: Body,
		ops: []op{
			// out to the pylon sphere
			rotate(90, yAxis),
			rotate(-40, xAxis),
			translate(0, 0, 0.90),
			// attachment angle, then out to the thruster
			rotate(10, xAxis),
			translate(0, 0, 0.55),
			bend(joint.LeftThruster, joint.AxisY, zAxis),
			rotate(30, xAxis),
			rotate(180, zAxis),
			rotate(90, yAxis),
		},
		tip: mgl64.Vec3{0, 0, 0.3},
	}
	s[LeftTurbine] = node{
		name: "left turbine", joint: joint.LeftThruster, parent: LeftThruster,
		ops: []op{spin(TurbineSpin, zAxis)},
		tip: mgl64.Vec3{0.29, 0, 0},
	}
	s[RightThruster] = node{
		name: "right thruster", joint: joint.RightThruster, parent: Body,
		ops: []op{
			rotate(-90, yAxis),
			rotate(-40, xAxis),
			translate(0, 0, 0.90),
			rotate(10, xAxis),
			translate(0, 0, 0.55),
			bendScaled(joint.RightThruster, joint.AxisY, -1, zAxis),
			rotate(30, xAxis),
			rotate(90, yAxis),
		},
		tip: mgl64.Vec3{0, 0, 0.3},
	}
	s[RightTurbine] = node{
		name: "right turbine", joint: joint.RightThruster, parent: RightThruster,
		ops: []op{spin(TurbineSpin, zAxis)},
		tip: mgl64.Vec3{0.29, 0, 0},
	}

	s[Headlights] = node{
		name: "left headlight", joint: joint.Headlights, parent: Body,
		ops: []op{
			translate(0, 0.75, 0.50),
			bend(joint.Headlights, joint.AxisX, yAxis),
			translate(0, 0.5, 0.2),
			translate(-0.1, 0, -0.025),
			bend(joint.Headlights, joint.AxisY, xAxis),
		},
		tip: mgl64.Vec3{0, 0, 0.1},
	}
	s[HeadlightsRight] = node{
		name: "right headlight", joint: joint.Headlights, parent: Headlights,
		ops: []op{translate(0.2, 0, 0)},
		tip: mgl64.Vec3{0, 0, 0.1},
	}

	s[LeftSolarPanel] = node{
		name: "left solar panel", joint: joint.LeftSolarPanel, parent: Body,
		ops: []op{
			translate(0.2, 0.75, -0.30),
			rotate(90, yAxis),
			bend(joint.LeftSolarPanel, joint.AxisX, yAxis),
			translate(0, 0.5, 0),
			bend(joint.LeftSolarPanel, joint.AxisY, zAxis),
		},
		tip: mgl64.Vec3{0, 0, 0.3},
	}
	s[RightSolarPanel] = node{
		name: "right solar panel", joint: joint.RightSolarPanel, parent: Body,
		ops: []op{
			translate(-0.2, 0.75, -0.30),
			rotate(-90, yAxis),
			bend(joint.RightSolarPanel, joint.AxisX, yAxis),
			translate(0, 0.5, 0),
			bend(joint.RightSolarPanel, joint.AxisY, zAxis),
		},
		tip: mgl64.Vec3{0, 0, 0.3},
	}

	s[Camera] = node{
		name: "camera", joint: joint.Camera, parent: Body,
		ops: []op{
			rotate(-25, xAxis),
			translate(0, 0, 1),
			bend(joint.Camera, joint.AxisX, yAxis),
			bend(joint.Camera, joint.AxisY, xAxis),
		},
		tip: mgl64.Vec3{0, 0, 0.25},
	}

	arm(&s, 0, LeftUpperArm, 90)
	arm(&s, 1, RightUpperArm, -90)
	leg(&s, 0, LeftUpperLeg, -180+50, -0.025)
	leg(&s, 1, RightUpperLeg, -50, 0.025)
	return s
}

// arm fills the five parts of one arm starting at first. side is 0 for the
// left arm and 1 for the right, matching the label layout in package joint.
func arm(s *[PartCount]node, side int, first Part, yaw float64) {
	off := joint.Label(side)
	upper, fore, hand, fingers, thumb := first, first+1, first+2, first+3, first+4

	s[upper] = node{
		name: sideName(side, "upper arm"), joint: joint.LeftUpperArm + off, parent: Body,
		ops: []op{
			rotate(yaw, yAxis),
			translate(0, 0, 1.0),
			bend(joint.LeftUpperArm+off, joint.AxisY, zAxis),
			translate(0, 0, 0.125),
			bend(joint.LeftUpperArm+off, joint.AxisX, xAxis),
		},
		tip: mgl64.Vec3{0.005, 0, 0.525},
	}
	s[fore] = node{
		name: sideName(side, "forearm"), joint: joint.LeftForearm + off, parent: upper,
		ops: []op{
			translate(0.005, 0, 0.525),
			bend(joint.LeftForearm+off, joint.AxisY, yAxis),
		},
		tip: mgl64.Vec3{0, 0, 0.46},
	}
	s[hand] = node{
		name: sideName(side, "hand"), joint: joint.LeftWrist + off, parent: fore,
		ops: []op{
			translate(0, 0, 0.46),
			bend(joint.LeftWrist+off, joint.AxisX, yAxis),
			bend(joint.LeftWrist+off, joint.AxisY, xAxis),
		},
		tip: mgl64.Vec3{0, 0, 0.08},
	}
	s[fingers] = node{
		name: sideName(side, "fingers"), joint: joint.LeftFingers + off, parent: hand,
		ops: []op{
			translate(0, 0, 0.08),
			bendScaled(joint.LeftFingers+off, joint.AxisX, 0.5, xAxis),
		},
		tip: mgl64.Vec3{0, 0, 0.1},
	}
	s[thumb] = node{
		name: sideName(side, "thumb"), joint: joint.LeftFingers + off, parent: fingers,
		ops: []op{
			bendScaled(joint.LeftFingers+off, joint.AxisX, -1, xAxis),
			translate(0.015, -0.015, 0),
		},
		tip: mgl64.Vec3{0, 0, 0.075},
	}
}

// leg fills the six parts of one leg starting at first. The hip sits on a
// circle of radius 1 around the body at angle hip.
func leg(s *[PartCount]node, side int, first Part, hip, sideShift float64) {
	off := joint.Label(side)
	upper, lower, foot := first, first+1, first+2

	s[upper] = node{
		name: sideName(side, "upper leg"), joint: joint.LeftUpperLeg + off, parent: Body,
		ops: []op{
			rotate(hip, zAxis),
			translate(1.0, 0, 0),
			rotate(-hip, zAxis),
			bend(joint.LeftUpperLeg+off, joint.AxisX, yAxis),
			bend(joint.LeftUpperLeg+off, joint.AxisY, xAxis),
			translate(sideShift, -0.30, 0),
		},
		tip: mgl64.Vec3{0, -0.01, -0.135},
	}
	s[lower] = node{
		name: sideName(side, "lower leg"), joint: joint.LeftLowerLeg + off, parent: upper,
		ops: []op{
			translate(0, -0.01, -0.135),
			bend(joint.LeftLowerLeg+off, joint.AxisY, xAxis),
		},
		tip: mgl64.Vec3{0, -0.292, 0.135},
	}
	s[foot] = node{
		name: sideName(side, "foot"), joint: joint.LeftFoot + off, parent: lower,
		ops: []op{
			translate(0, -0.292, 0.135),
			bend(joint.LeftFoot+off, joint.AxisY, xAxis),
			bend(joint.LeftFoot+off, joint.AxisX, yAxis),
		},
		tip: mgl64.Vec3{0, -0.065, 0},
	}
	toes := [3]string{"outer toe", "inner toe", "heel"}
	for i, yaw := range [3]float64{32, -32, 180} {
		s[foot+1+Part(i)] = node{
			name: sideName(side, toes[i]), joint: joint.LeftToes + off, parent: foot,
			ops: []op{
				translate(0, -0.065, 0),
				rotate(yaw, yAxis),
				translate(0, 0, 0.35),
				bend(joint.LeftToes+off, joint.AxisY, xAxis),
			},
			tip: mgl64.Vec3{0, -0.035, 0.15},
		}
	}
}

func sideName(side int, part string) string {
	if side == 0 {
		return "left " + part
	}
	return "right " + part
}

// Valid reports whether p is a node of the skeleton.
func (p Part) Valid() bool {
	return p >= 0 && int(p) < PartCount
}

func (p Part) String() string {
	if !p.Valid() {
		return "unknown"
	}
	return skeleton[p].name
}

// Joint returns the joint label that drives the part. Selection and
// picking work on labels, so several parts may share one.
func (p Part) Joint() joint.Label {
	if !p.Valid() {
		return -1
	}
	return skeleton[p].joint
}

// Parent returns the part this one hangs off, or -1 for the root.
func (p Part) Parent() Part {
	if !p.Valid() {
		return -1
	}
	return skeleton[p].parent
}

// Tip is the local end point of the part's segment, used by renderers
// that draw the figure as bones.
func (p Part) Tip() mgl64.Vec3 {
	if !p.Valid() {
		return mgl64.Vec3{}
	}
	return skeleton[p].tip
}
