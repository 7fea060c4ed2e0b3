package rig

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/decker502/nanobot/pkg/joint"
)

// Rotations is the read side of the joint registry. *joint.Model
// satisfies it.
type Rotations interface {
	Rotation(axis joint.Axis, l joint.Label) float64
}

var (
	xAxis = mgl64.Vec3{1, 0, 0}
	yAxis = mgl64.Vec3{0, 1, 0}
	zAxis = mgl64.Vec3{0, 0, 1}
)

type opKind uint8

const (
	opTranslate opKind = iota
	opRotate
	opBend
	opSpin
)

// op is one step of a part's local transform. Ops are applied in order,
// each one post-multiplied onto the parent matrix.
type op struct {
	kind opKind
	v    mgl64.Vec3 // offset for translate, rotation axis otherwise
	deg  float64    // fixed angle, joint scale or spin rate
	lbl  joint.Label
	axis joint.Axis
}

func translate(x, y, z float64) op {
	return op{kind: opTranslate, v: mgl64.Vec3{x, y, z}}
}

func rotate(deg float64, about mgl64.Vec3) op {
	return op{kind: opRotate, v: about, deg: deg}
}

// bend rotates about `about` by the joint's angle on axis a.
func bend(l joint.Label, a joint.Axis, about mgl64.Vec3) op {
	return bendScaled(l, a, 1, about)
}

func bendScaled(l joint.Label, a joint.Axis, scale float64, about mgl64.Vec3) op {
	return op{kind: opBend, v: about, deg: scale, lbl: l, axis: a}
}

// spin rotates by rate degrees per animation frame.
func spin(rate float64, about mgl64.Vec3) op {
	return op{kind: opSpin, v: about, deg: rate}
}

func (o op) matrix(r Rotations, frame int) mgl64.Mat4 {
	switch o.kind {
	case opTranslate:
		return mgl64.Translate3D(o.v[0], o.v[1], o.v[2])
	case opRotate:
		return mgl64.HomogRotate3D(mgl64.DegToRad(o.deg), o.v)
	case opBend:
		return mgl64.HomogRotate3D(mgl64.DegToRad(o.deg*r.Rotation(o.axis, o.lbl)), o.v)
	case opSpin:
		return mgl64.HomogRotate3D(mgl64.DegToRad(o.deg*float64(frame)), o.v)
	}
	return mgl64.Ident4()
}
