package joint

import "math"

// Axis names one of a joint's three rotation axes. The values are the axis
// letters so callers can pass 'x', 'y' or 'z' directly.
type Axis byte

const (
	AxisX Axis = 'x'
	AxisY Axis = 'y'
	AxisZ Axis = 'z'
)

// Axes lists the three axes in x, y, z order.
var Axes = [3]Axis{AxisX, AxisY, AxisZ}

// index maps an axis to its slot in Joint's arrays.
func (a Axis) index() (int, bool) {
	switch a {
	case AxisX:
		return 0, true
	case AxisY:
		return 1, true
	case AxisZ:
		return 2, true
	}
	return 0, false
}

// Joint is one rotational record: an angle per axis in degrees, an inclusive
// [Min, Max] limit per axis and a selection flag.
//
// A limit of [0, 0] locks the axis. Unbounded axes use ±Inf.
type Joint struct {
	Rot      [3]float64
	Min      [3]float64
	Max      [3]float64
	Selected bool
}

// Rotation returns the angle on the given axis, or 0 for an unknown axis.
func (j Joint) Rotation(axis Axis) float64 {
	i, ok := axis.index()
	if !ok {
		return 0
	}
	return j.Rot[i]
}

// clampAxis limits axis i of the joint to its configured range.
func (j *Joint) clampAxis(i int) {
	j.Rot[i] = clamp(j.Rot[i], j.Min[i], j.Max[i])
}

func clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// wrap maps an angle into (-360, 360) keeping its sign.
func wrap(deg float64) float64 {
	return math.Mod(deg, 360)
}

// step moves cur toward target by exactly speed, or snaps to target when it
// is within speed.
func step(cur, speed, target float64) float64 {
	if math.Abs(cur-target) > speed {
		if cur < target {
			return cur + speed
		}
		return cur - speed
	}
	return target
}
