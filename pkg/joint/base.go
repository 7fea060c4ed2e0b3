package joint

import "math"

var unbounded = math.Inf(1)

// lim builds a joint from (rot, min, max) triples for x, y and z.
func lim(x, xmin, xmax, y, ymin, ymax, z, zmin, zmax float64) Joint {
	return Joint{
		Rot: [3]float64{x, y, z},
		Min: [3]float64{xmin, ymin, zmin},
		Max: [3]float64{xmax, ymax, zmax},
	}
}

// basePose is the figure's rest pose and its per-axis constraints. It is
// copied into the live registry by Init and is the target of the reset
// animation.
var basePose = [Count]Joint{
	Body:            lim(0, -unbounded, unbounded, 0, -unbounded, unbounded, 0, -10, 10),
	LeftThruster:    lim(0, 0, 0, 0, -180, 180, 0, 0, 0),
	RightThruster:   lim(0, 0, 0, 0, -180, 180, 0, 0, 0),
	Headlights:      lim(0, -180, 180, 0, -180, 180, 0, 0, 0),
	Camera:          lim(0, -40, 40, 0, -40, 40, 0, 0, 0),
	LeftSolarPanel:  lim(0, -180, 180, 0, -45, 45, 0, 0, 0),
	RightSolarPanel: lim(0, -180, 180, 0, -45, 45, 0, 0, 0),
	LeftUpperArm:    lim(90, -90, 90, 0, -90, 90, 0, 0, 0),
	RightUpperArm:   lim(90, -90, 90, 0, -90, 90, 0, 0, 0),
	LeftForearm:     lim(0, -90, 90, 0, -90, 90, 0, 0, 0),
	RightForearm:    lim(0, -90, 90, 90, -90, 90, 0, 0, 0),
	LeftWrist:       lim(0, -90, 90, 0, -90, 90, 0, 0, 0),
	RightWrist:      lim(0, -90, 90, 0, -90, 90, 0, 0, 0),
	LeftFingers:     lim(0, -90, 20, 0, -90, 90, 0, 0, 0),
	RightFingers:    lim(-90, -90, 20, 0, -90, 90, 0, 0, 0),
	LeftUpperLeg:    lim(0, -10, 10, 0, -45, 45, 0, 0, 0),
	RightUpperLeg:   lim(0, -10, 10, 0, -45, 45, 0, 0, 0),
	LeftLowerLeg:    lim(0, 0, 0, 0, 0, 90, 0, 0, 0),
	RightLowerLeg:   lim(0, 0, 0, 0, 0, 90, 0, 0, 0),
	LeftFoot:        lim(0, -35, 35, 0, -35, 35, 0, 0, 0),
	RightFoot:       lim(0, -35, 35, 0, -35, 35, 0, 0, 0),
	LeftToes:        lim(0, 0, 0, 0, -90, 0, 0, 0, 0),
	RightToes:       lim(0, 0, 0, 0, -90, 0, 0, 0, 0),
}

// Base returns the rest-pose record for a label. An invalid label yields the
// zero Joint.
func Base(l Label) Joint {
	if !l.Valid() {
		return Joint{}
	}
	return basePose[l]
}

// BasePose returns a copy of the whole rest pose.
func BasePose() [Count]Joint {
	return basePose
}
