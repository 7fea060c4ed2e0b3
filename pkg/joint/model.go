package joint

// Model is the live joint registry.
//
// Model is not safe for concurrent use; the animation ticker and the input
// handlers are expected to run on the same goroutine.
type Model struct {
	joints [Count]Joint
}

// NewModel returns a registry initialised to the rest pose.
func NewModel() *Model {
	m := &Model{}
	m.Init()
	return m
}

// Init copies the rest pose into the registry, clearing every selection.
func (m *Model) Init() {
	m.joints = basePose
}

// SelectAll marks every joint selected.
func (m *Model) SelectAll() {
	for i := range m.joints {
		m.joints[i].Selected = true
	}
}

// SelectNone clears every selection flag.
func (m *Model) SelectNone() {
	for i := range m.joints {
		m.joints[i].Selected = false
	}
}

// Pick toggles the selection flag of one joint.
func (m *Model) Pick(l Label) {
	if !l.Valid() {
		return
	}
	m.joints[l].Selected = !m.joints[l].Selected
}

// Selected reports whether the joint is selected.
func (m *Model) Selected(l Label) bool {
	if !l.Valid() {
		return false
	}
	return m.joints[l].Selected
}

// Rotation returns the joint's angle about axis in degrees.
//
// Parameters:
//   - axis: AxisX, AxisY or AxisZ
//   - l: joint label
//
// Returns 0 when either argument is out of range.
func (m *Model) Rotation(axis Axis, l Label) float64 {
	if !l.Valid() {
		return 0
	}
	return m.joints[l].Rotation(axis)
}

// Joint returns a copy of the live record for l.
func (m *Model) Joint(l Label) Joint {
	if !l.Valid() {
		return Joint{}
	}
	return m.joints[l]
}

// Limits returns the inclusive range of the joint's axis.
func (m *Model) Limits(axis Axis, l Label) (lo, hi float64) {
	i, ok := axis.index()
	if !ok || !l.Valid() {
		return 0, 0
	}
	return m.joints[l].Min[i], m.joints[l].Max[i]
}

// Rotate adds delta degrees to one axis and wraps the result into
// (-360, 360). Limits are not applied: this is the free manual-input path.
func (m *Model) Rotate(axis Axis, l Label, delta float64) {
	i, ok := axis.index()
	if !ok || !l.Valid() {
		return
	}
	j := &m.joints[l]
	j.Rot[i] = wrap(j.Rot[i] + delta)
}

// MoveSelected applies a drag to every selected joint: dx goes to the x
// axis and dy to the y axis. Both axes are clamped, then all three wrapped.
func (m *Model) MoveSelected(dx, dy float64) {
	for i := range m.joints {
		j := &m.joints[i]
		if !j.Selected {
			continue
		}
		j.Rot[0] += dx
		j.Rot[1] += dy
		j.clampAxis(0)
		j.clampAxis(1)
		for a := range j.Rot {
			j.Rot[a] = wrap(j.Rot[a])
		}
	}
}

// Place moves a joint toward (x, y, z), at most speed degrees per axis, and
// clamps the result to the joint's limits.
//
// Parameters:
//   - l: joint label
//   - speed: maximum step per axis in degrees
//   - x, y, z: target angles
//
// Returns:
//   - bool: true if any axis value changed
func (m *Model) Place(l Label, speed, x, y, z float64) bool {
	if !l.Valid() {
		return false
	}
	j := &m.joints[l]
	changed := false
	for i, target := range [3]float64{x, y, z} {
		old := j.Rot[i]
		j.Rot[i] = step(old, speed, target)
		j.clampAxis(i)
		if j.Rot[i] != old {
			changed = true
		}
	}
	return changed
}

// Snapshot returns a copy of every live joint in label order.
func (m *Model) Snapshot() [Count]Joint {
	return m.joints
}
