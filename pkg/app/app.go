// Package app is the desktop and mobile viewer for the nanobot.
//
// It wraps a sim.Simulation in an ebiten.Game: Update translates keyboard
// and mouse input into simulation actions and ticks it, Draw projects the
// skeleton and the smoke onto the screen. Desktop main.go and mobile/ both
// construct it through NewApp.
package app

import (
	"errors"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
	"github.com/rs/zerolog"

	"github.com/decker502/nanobot/pkg/animation"
	"github.com/decker502/nanobot/pkg/config"
	"github.com/decker502/nanobot/pkg/input"
	"github.com/decker502/nanobot/pkg/logging"
	"github.com/decker502/nanobot/pkg/particle"
	"github.com/decker502/nanobot/pkg/settings"
	"github.com/decker502/nanobot/pkg/sim"
	"github.com/decker502/nanobot/pkg/view"
)

const (
	// pickRadius is how close, in pixels, a click must land to a bone.
	pickRadius = 6

	// panelHeight is the status text band at the top of the screen.
	panelHeight = 35
)

// Config is what NewApp needs to start.
type Config struct {
	// Runtime is the loaded configuration.
	Runtime *config.Config

	// Store persists preferences; nil keeps them in memory.
	Store *gdata.Manager

	Log zerolog.Logger
}

// App implements ebiten.Game for one simulated figure.
type App struct {
	sim    *sim.Simulation
	prefs  *settings.Manager
	camera view.Camera
	log    zerolog.Logger

	width, height int

	pointer    pointer
	mobile     bool
	smoke      *ebiten.Image
	billboards []particle.Billboard
	showHelp   bool

	pendingWindowSizeReset   bool // restore the window size a few frames after leaving fullscreen
	windowSizeResetCountdown int
}

// NewApp creates the viewer.
//
// Call embedded.Init before config.Load so the embedded defaults apply.
//
// Parameters:
//   - cfg: runtime configuration, storage and logger
//
// Returns:
//   - *App: the ebiten game
//   - error: the simulation could not be built
func NewApp(cfg Config) (*App, error) {
	rc := cfg.Runtime
	log := logging.Component(cfg.Log, "App")

	seed := rc.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s, err := sim.New(sim.OptionsFromConfig(rc), rand.New(rand.NewSource(seed)), cfg.Log)
	if err != nil {
		return nil, err
	}

	prefs := settings.NewManager(cfg.Store, cfg.Log)
	if prefs.Persistent() {
		s.ApplyPreferences(prefs.Get())
	}

	ebiten.SetTPS(rc.TicksPerSecond())
	log.Info().Int("tps", rc.TicksPerSecond()).Int64("seed", seed).Msg("viewer ready")

	return &App{
		sim:    s,
		prefs:  prefs,
		camera: rc.Camera.View(),
		log:    log,
		width:  rc.Window.Width,
		height: rc.Window.Height,
		mobile: isMobile(),
		smoke:  ebiten.NewImageFromImage(particle.SmokeSprite(particle.SpriteSize)),
	}, nil
}

// Simulation exposes the underlying figure.
func (a *App) Simulation() *sim.Simulation {
	return a.sim
}

// Update handles input and advances the simulation one tick.
func (a *App) Update() error {
	a.updateWindow()

	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		if k == ebiten.KeyF11 {
			a.toggleFullscreen()
			continue
		}
		if k == ebiten.KeyH {
			a.showHelp = !a.showHelp
			continue
		}
		action := input.Lookup(translateKey(k))
		if action == input.ActionNone {
			continue
		}
		if err := a.sim.Apply(action); err != nil {
			if errors.Is(err, sim.ErrQuit) {
				a.log.Info().Msg("quit requested")
				return ebiten.Termination
			}
			a.log.Warn().Err(err).Stringer("action", action).Msg("action failed")
		}
	}

	a.updatePointer()
	a.sim.Tick()
	return nil
}

func (a *App) updatePointer() {
	ev := a.pointer.update()
	if ev.pick && a.mobile && ev.y < panelHeight {
		// no keyboard: tapping the status panel steps through the modes
		a.cycleMode()
		return
	}
	if ev.pick {
		proj := view.NewProjector(a.camera, a.width, a.height)
		a.sim.PickAt(proj, float64(ev.x), float64(ev.y), a.pickRadius())
	}
	a.sim.Drag(ev.dragX, ev.dragY)
}

// menuModes is the mode order of the viewer menu.
var menuModes = []input.Action{input.ActionStandby, input.ActionFly, input.ActionDance, input.ActionWalk, input.ActionReboot}

// nextMenuMode returns the action selecting the mode after current.
func nextMenuMode(current animation.Mode) input.Action {
	for i, act := range menuModes {
		if m, _ := sim.ModeFor(act); m == current {
			return menuModes[(i+1)%len(menuModes)]
		}
	}
	return menuModes[0]
}

func (a *App) cycleMode() {
	if err := a.sim.Apply(nextMenuMode(a.sim.Animation.Mode())); err != nil {
		a.log.Warn().Err(err).Msg("mode change failed")
	}
}

// pickRadius widens the hit area for fingers.
func (a *App) pickRadius() float64 {
	if a.mobile {
		return 3 * pickRadius
	}
	return pickRadius
}

func (a *App) toggleFullscreen() {
	if !ebiten.IsFullscreen() {
		ebiten.SetFullscreen(true)
		return
	}
	ebiten.SetFullscreen(false)
	if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
		ebiten.RestoreWindow()
	}
	// the window manager needs a few frames before the size sticks
	a.pendingWindowSizeReset = true
	a.windowSizeResetCountdown = 3
}

func (a *App) updateWindow() {
	if !a.pendingWindowSizeReset {
		return
	}
	a.windowSizeResetCountdown--
	if a.windowSizeResetCountdown <= 0 {
		ebiten.SetWindowSize(a.width, a.height)
		a.log.Debug().Int("width", a.width).Int("height", a.height).Msg("delayed SetWindowSize")
		a.pendingWindowSizeReset = false
	}
}

// Layout keeps the logical screen at the configured window size.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

// Close stores the runtime toggles as preferences.
func (a *App) Close() error {
	a.sim.StorePreferences(a.prefs)
	return a.prefs.Save()
}
