// Package joint holds the figure's joint registry: per-joint rotation angles,
// per-axis limits and the selection flags used by interactive manipulation.
//
// The registry is a flat, fixed-size array indexed by Label. It knows nothing
// about which joint hangs off which; that topology lives in package rig.
package joint

import "strings"

// Label identifies one of the figure's joints.
//
// Every right-side label directly follows its left-side counterpart, so
// Left*+1 is always the matching Right* label. The limb helpers in package
// rig depend on this ordering.
type Label int

const (
	Body Label = iota
	LeftThruster
	RightThruster
	Headlights
	Camera
	LeftSolarPanel
	RightSolarPanel
	LeftUpperArm
	RightUpperArm
	LeftForearm
	RightForearm
	LeftWrist
	RightWrist
	LeftFingers
	RightFingers
	LeftUpperLeg
	RightUpperLeg
	LeftLowerLeg
	RightLowerLeg
	LeftFoot
	RightFoot
	LeftToes
	RightToes

	// Count is the number of joints in the registry.
	Count = int(RightToes) + 1
)

var labelNames = [Count]string{
	Body:            "BODY",
	LeftThruster:    "L_THRUSTER",
	RightThruster:   "R_THRUSTER",
	Headlights:      "HEADLIGHTS",
	Camera:          "CAMERA",
	LeftSolarPanel:  "L_SOLARPANEL",
	RightSolarPanel: "R_SOLARPANEL",
	LeftUpperArm:    "L_UPPERARM",
	RightUpperArm:   "R_UPPERARM",
	LeftForearm:     "L_FOREARM",
	RightForearm:    "R_FOREARM",
	LeftWrist:       "L_WRIST",
	RightWrist:      "R_WRIST",
	LeftFingers:     "L_FINGERS",
	RightFingers:    "R_FINGERS",
	LeftUpperLeg:    "L_UPPERLEG",
	RightUpperLeg:   "R_UPPERLEG",
	LeftLowerLeg:    "L_LOWERLEG",
	RightLowerLeg:   "R_LOWERLEG",
	LeftFoot:        "L_FOOT",
	RightFoot:       "R_FOOT",
	LeftToes:        "L_TOES",
	RightToes:       "R_TOES",
}

// Valid reports whether l names a joint in the registry.
func (l Label) Valid() bool {
	return l >= 0 && int(l) < Count
}

// String returns the menu name of the label (e.g. "L_UPPERARM").
func (l Label) String() string {
	if !l.Valid() {
		return "UNKNOWN"
	}
	return labelNames[l]
}

// ParseLabel looks a label up by its menu name, case-insensitively.
func ParseLabel(name string) (Label, bool) {
	name = strings.ToUpper(strings.TrimSpace(name))
	for i, n := range labelNames {
		if n == name {
			return Label(i), true
		}
	}
	return -1, false
}

// Labels returns every label in registry order.
func Labels() []Label {
	out := make([]Label, Count)
	for i := range out {
		out[i] = Label(i)
	}
	return out
}
