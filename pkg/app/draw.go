package app

import (
	"cmp"
	"fmt"
	"image/color"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/nanobot/pkg/input"
	"github.com/decker502/nanobot/pkg/rig"
	"github.com/decker502/nanobot/pkg/view"
)

var (
	background    = color.Black
	boneLit       = color.RGBA{200, 200, 215, 255}
	boneUnlit     = color.RGBA{110, 110, 120, 255}
	boneWireframe = color.White
	boneSelected  = color.RGBA{255, 210, 60, 255}
)

type bone struct {
	part           rig.Part
	x0, y0, x1, y1 float32
	depth          float64
}

// Draw renders the figure, then the smoke, then the status panel.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	proj := view.NewProjector(a.camera, a.width, a.height)
	a.drawBones(screen, proj)
	if a.sim.ParticlesVisible {
		a.drawSmoke(screen, proj)
	}
	a.drawPanel(screen)
}

func (a *App) drawBones(screen *ebiten.Image, proj *view.Projector) {
	pose := a.sim.Pose()

	bones := make([]bone, 0, rig.PartCount)
	for p := rig.Part(0); int(p) < rig.PartCount; p++ {
		from, to := pose.Origin(p), pose.TipPoint(p)
		x0, y0, ok0 := proj.Project(from)
		x1, y1, ok1 := proj.Project(to)
		if !ok0 || !ok1 {
			continue
		}
		bones = append(bones, bone{
			part: p,
			x0:   float32(x0), y0: float32(y0),
			x1: float32(x1), y1: float32(y1),
			depth: view.Depth(proj.View(), from.Add(to).Mul(0.5)),
		})
	}
	// farthest first so nearer bones overdraw
	slices.SortStableFunc(bones, func(l, r bone) int {
		return cmp.Compare(r.depth, l.depth)
	})

	width := float32(4)
	if a.sim.Wireframe {
		width = 1
	}
	for _, b := range bones {
		clr := a.boneColor(b.part)
		vector.StrokeLine(screen, b.x0, b.y0, b.x1, b.y1, width, clr, true)
		if !a.sim.Wireframe {
			vector.DrawFilledCircle(screen, b.x0, b.y0, width, clr, true)
		}
	}
}

func (a *App) boneColor(p rig.Part) color.Color {
	switch {
	case a.sim.Model.Selected(p.Joint()):
		return boneSelected
	case a.sim.Wireframe:
		return boneWireframe
	case a.sim.Lights:
		return boneLit
	default:
		return boneUnlit
	}
}

func (a *App) drawSmoke(screen *ebiten.Image, proj *view.Projector) {
	ps := a.sim.Particles
	ps.SetView(proj.View())
	ps.SortForRender()
	a.billboards = ps.RenderList(a.billboards)

	size := float64(a.smoke.Bounds().Dx())
	for _, b := range a.billboards {
		x, y, ok := proj.Project(b.Pos)
		if !ok {
			continue
		}
		scale := proj.Scale(b.Pos) * 2 * b.HalfWidth / size
		if scale <= 0 {
			continue
		}

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-size/2, -size/2)
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(x, y)
		// premultiplied alpha
		alpha := float32(b.Alpha)
		op.ColorScale.Scale(float32(b.RGB[0])*alpha, float32(b.RGB[1])*alpha, float32(b.RGB[2])*alpha, alpha)
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(a.smoke, op)
	}
}

func (a *App) drawPanel(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, a.sim.Status(), 10, 5)

	smoke := "on"
	switch {
	case !a.sim.ParticlesVisible:
		smoke = "hidden"
	case !a.sim.ParticlesAnimating:
		smoke = "frozen"
	}
	info := fmt.Sprintf("frame %d  smoke %s (%s)  TPS %.0f  FPS %.0f",
		a.sim.Animation.Frame(), smoke, a.sim.Particles.Color(), ebiten.ActualTPS(), ebiten.ActualFPS())
	ebitenutil.DebugPrintAt(screen, info, 10, 20)

	if a.mobile {
		ebitenutil.DebugPrintAt(screen, "Tap here: next mode. Tap a joint: pick. Drag: rotate selected", 10, a.height-20)
		return
	}
	if !a.showHelp {
		ebitenutil.DebugPrintAt(screen, "H - help", 10, a.height-20)
		return
	}
	y := 45
	for _, b := range input.Bindings() {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%-5s - %s", b.Label, b.Action), 10, y)
		y += 15
	}
	ebitenutil.DebugPrintAt(screen, "Click - pick joint, Right drag - move selected, F11 - fullscreen", 10, y)
}
