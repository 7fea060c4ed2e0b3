package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/nanobot/pkg/particle"
	"github.com/decker502/nanobot/pkg/rig"
	"github.com/decker502/nanobot/pkg/sim"
	"github.com/decker502/nanobot/pkg/view"
)

// A terminal cell is about twice as tall as it is wide; projecting onto a
// grid of half-height rows keeps the figure's proportions.
const cellAspect = 2

var (
	styleStatus   = tcell.StyleDefault.Foreground(tcell.NewRGBColor(191, 191, 255))
	styleBone     = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleBoneDim  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleSelected = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

type termView struct {
	screen     tcell.Screen
	camera     view.Camera
	canvas     *canvas
	billboards []particle.Billboard
}

func newView(screen tcell.Screen, camera view.Camera) *termView {
	w, h := screen.Size()
	return &termView{
		screen: screen,
		camera: camera,
		canvas: newCanvas(w, h),
	}
}

func (v *termView) resize() {
	w, h := v.screen.Size()
	v.canvas.resize(w, h)
	v.screen.Sync()
}

func (v *termView) draw(s *sim.Simulation) {
	v.render(s)
	v.canvas.flush(v.screen)
}

// render paints s onto the canvas without touching the screen.
func (v *termView) render(s *sim.Simulation) {
	c := v.canvas
	c.clear()
	proj := view.NewProjector(v.camera, c.w, c.h*cellAspect)

	if s.ParticlesVisible {
		v.renderSmoke(s, proj)
	}
	v.renderBones(s, proj)

	c.text(0, 0, s.Status(), styleStatus)
	c.text(0, 1, fmt.Sprintf("frame %d  smoke %s", s.Animation.Frame(), s.Particles.Color()), styleStatus)
}

func (v *termView) renderBones(s *sim.Simulation, proj *view.Projector) {
	pose := s.Pose()
	for p := rig.Part(0); int(p) < rig.PartCount; p++ {
		x0, y0, ok0 := proj.Project(pose.Origin(p))
		x1, y1, ok1 := proj.Project(pose.TipPoint(p))
		if !ok0 || !ok1 {
			continue
		}

		r, style := '#', styleBone
		switch {
		case s.Model.Selected(p.Joint()):
			r, style = '@', styleSelected
		case s.Wireframe:
			r = '+'
		case !s.Lights:
			style = styleBoneDim
		}
		v.canvas.line(int(x0), int(y0)/cellAspect, int(x1), int(y1)/cellAspect, r, style)
	}
}

func (v *termView) renderSmoke(s *sim.Simulation, proj *view.Projector) {
	ps := s.Particles
	ps.SetView(proj.View())
	ps.SortForRender()
	v.billboards = ps.RenderList(v.billboards)

	for _, b := range v.billboards {
		x, y, ok := proj.Project(b.Pos)
		if !ok {
			continue
		}
		style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(
			int32(b.RGB[0]*255), int32(b.RGB[1]*255), int32(b.RGB[2]*255)))
		v.canvas.set(int(x), int(y)/cellAspect, smokeRune(b.Alpha), style)
	}
}

// smokeRune shades a particle by its opacity.
func smokeRune(alpha float64) rune {
	switch {
	case alpha >= 0.3:
		return '*'
	case alpha >= 0.15:
		return ':'
	default:
		return '.'
	}
}
