package rig

import "github.com/go-gl/mathgl/mgl64"

// Pose holds one world matrix per Part.
type Pose [PartCount]mgl64.Mat4

// Compose evaluates every part's world matrix for the given rotations and
// animation frame. Parents precede children in the Part enumeration, so a
// single forward pass is enough.
func Compose(r Rotations, frame int) *Pose {
	var p Pose
	ComposeInto(&p, r, frame)
	return &p
}

// ComposeInto is Compose without the allocation.
func ComposeInto(p *Pose, r Rotations, frame int) {
	for i := range skeleton {
		n := &skeleton[i]
		m := mgl64.Ident4()
		if n.parent >= 0 {
			m = p[n.parent]
		}
		p[i] = local(m, n, r, frame)
	}
}

// Matrix evaluates a single part by walking its ancestor chain.
func Matrix(part Part, r Rotations, frame int) mgl64.Mat4 {
	if !part.Valid() {
		return mgl64.Ident4()
	}
	var chain []Part
	for q := part; q >= 0; q = skeleton[q].parent {
		chain = append(chain, q)
	}
	m := mgl64.Ident4()
	for i := len(chain) - 1; i >= 0; i-- {
		m = local(m, &skeleton[chain[i]], r, frame)
	}
	return m
}

func local(m mgl64.Mat4, n *node, r Rotations, frame int) mgl64.Mat4 {
	for _, o := range n.ops {
		m = m.Mul4(o.matrix(r, frame))
	}
	return m
}

// Origin returns the world position of the part's origin.
func (p *Pose) Origin(part Part) mgl64.Vec3 {
	return mgl64.TransformCoordinate(mgl64.Vec3{}, p[part])
}

// TipPoint returns the world position of the part's segment end.
func (p *Pose) TipPoint(part Part) mgl64.Vec3 {
	return mgl64.TransformCoordinate(part.Tip(), p[part])
}

// Anchor is a particle emission point: a world position and the unit
// direction the exhaust leaves in.
type Anchor struct {
	Pos     mgl64.Vec3
	Forward mgl64.Vec3
}

// AnchorFrom transforms the local origin and the local (0, 0, -1) point
// through m. Forward is the difference of the two.
func AnchorFrom(m mgl64.Mat4) Anchor {
	pos := m.Mul4x1(mgl64.Vec4{0, 0, 0, 1}).Vec3()
	ahead := m.Mul4x1(mgl64.Vec4{0, 0, -1, 1}).Vec3()
	return Anchor{Pos: pos, Forward: ahead.Sub(pos)}
}

// Anchors returns the emission anchors of the left and right thrusters.
// Turbine spin does not affect them.
func Anchors(r Rotations) (left, right Anchor) {
	left = AnchorFrom(Matrix(LeftThruster, r, 0))
	right = AnchorFrom(Matrix(RightThruster, r, 0))
	return left, right
}
