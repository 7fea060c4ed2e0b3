// Package view holds the scene camera: a look-at view matrix plus a
// perspective projection, and helpers to map world points to the screen.
package view

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Camera describes a perspective camera looking at a point.
type Camera struct {
	Eye    mgl64.Vec3
	Center mgl64.Vec3
	Up     mgl64.Vec3

	// FovY is the vertical field of view in degrees.
	FovY float64
	Near float64
	Far  float64
}

// DefaultCamera looks at the origin from four units down +z.
func DefaultCamera() Camera {
	return Camera{
		Eye:    mgl64.Vec3{0, 0, 4},
		Center: mgl64.Vec3{0, 0, 0},
		Up:     mgl64.Vec3{0, 1, 0},
		FovY:   60,
		Near:   1,
		Far:    15,
	}
}

// View returns the world-to-eye matrix.
func (c Camera) View() mgl64.Mat4 {
	return mgl64.LookAtV(c.Eye, c.Center, c.Up)
}

// Projection returns the perspective matrix for a viewport of the given size.
func (c Camera) Projection(width, height int) mgl64.Mat4 {
	aspect := 1.0
	if height > 0 {
		aspect = float64(width) / float64(height)
	}
	return mgl64.Perspective(mgl64.DegToRad(c.FovY), aspect, c.Near, c.Far)
}

// Depth returns how far in front of the camera p lies, measured along the
// viewing direction. Points behind the camera are negative.
func Depth(viewMatrix mgl64.Mat4, p mgl64.Vec3) float64 {
	return -viewMatrix.Mul4x1(p.Vec4(1)).Z()
}

// Projector maps world points to pixel coordinates for one viewport. Build
// one per frame with NewProjector; it caches the combined matrix.
type Projector struct {
	view   mgl64.Mat4
	mvp    mgl64.Mat4
	width  float64
	height float64
	focal  float64
}

// NewProjector prepares a projector for a width x height viewport.
func NewProjector(c Camera, width, height int) *Projector {
	v := c.View()
	return &Projector{
		view:   v,
		mvp:    c.Projection(width, height).Mul4(v),
		width:  float64(width),
		height: float64(height),
		focal:  float64(height) / 2 / math.Tan(mgl64.DegToRad(c.FovY)/2),
	}
}

// Project returns the pixel position of p with y growing downwards, and
// false when p is behind the camera.
func (pr *Projector) Project(p mgl64.Vec3) (x, y float64, ok bool) {
	clip := pr.mvp.Mul4x1(p.Vec4(1))
	if clip.W() <= 0 {
		return 0, 0, false
	}
	nx, ny := clip.X()/clip.W(), clip.Y()/clip.W()
	x = (nx + 1) / 2 * pr.width
	y = (1 - ny) / 2 * pr.height
	return x, y, true
}

// Scale returns how many pixels one world unit spans at p's depth. It is 0
// for points behind the camera.
func (pr *Projector) Scale(p mgl64.Vec3) float64 {
	d := Depth(pr.view, p)
	if d <= 0 {
		return 0
	}
	return pr.focal / d
}

// View returns the cached view matrix.
func (pr *Projector) View() mgl64.Mat4 {
	return pr.view
}
