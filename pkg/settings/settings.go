// Package settings persists viewer preferences between runs.
//
// Preferences are global to the install, not to a config file: the
// configuration describes how the program starts, preferences remember what
// the user last toggled at runtime.
package settings

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/decker502/nanobot/pkg/logging"
	"github.com/decker502/nanobot/pkg/particle"
)

// AppName is the gdata application directory.
const AppName = "nanobot"

const (
	settingsObject   = "settings"
	settingsProperty = "viewer"
)

// Preferences are the runtime toggles of the viewers.
type Preferences struct {
	SmokeColor string `yaml:"smokeColor"`

	Wireframe bool `yaml:"wireframe"`
	Lights    bool `yaml:"lights"`

	ParticlesAnimating bool `yaml:"particlesAnimating"`
	ParticlesVisible   bool `yaml:"particlesVisible"`
}

// DefaultPreferences returns the preferences of a fresh install.
func DefaultPreferences() *Preferences {
	return &Preferences{
		SmokeColor:         particle.LightGrey.String(),
		Wireframe:          false,
		Lights:             true,
		ParticlesAnimating: true,
		ParticlesVisible:   true,
	}
}

// Color returns the smoke colour, LightGrey when the stored name is unknown.
func (p *Preferences) Color() particle.Color {
	c, ok := particle.ParseColor(p.SmokeColor)
	if !ok {
		return particle.LightGrey
	}
	return c
}

// Open opens the platform storage for AppName.
//
// A storage that cannot be opened is not fatal: the returned manager is nil
// and Manager runs in memory only.
func Open(log zerolog.Logger) *gdata.Manager {
	log = logging.Component(log, "Settings")
	if err := ensureStorageDir(); err != nil {
		log.Warn().Err(err).Msg("storage directory unavailable")
	}
	m, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Warn().Err(err).Msg("storage unavailable, preferences will not persist")
		return nil
	}
	return m
}

// Manager loads, holds and saves the preferences.
type Manager struct {
	store *gdata.Manager // nil: in-memory only
	prefs *Preferences
	log   zerolog.Logger
}

// NewManager creates a manager and loads any saved preferences.
//
// Parameters:
//   - store: gdata storage, may be nil
//   - log: base logger
//
// Returns:
//   - *Manager: never nil; falls back to defaults when loading fails
func NewManager(store *gdata.Manager, log zerolog.Logger) *Manager {
	m := &Manager{
		store: store,
		prefs: DefaultPreferences(),
		log:   logging.Component(log, "Settings"),
	}
	if err := m.Load(); err != nil {
		m.log.Warn().Err(err).Msg("failed to load preferences, using defaults")
	}
	return m
}

// Load replaces the in-memory preferences with the stored ones.
// Missing storage or a missing entry yields the defaults without error.
func (m *Manager) Load() error {
	m.prefs = DefaultPreferences()
	if m.store == nil || !m.store.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := m.store.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("failed to load preferences: %w", err)
	}

	loaded := DefaultPreferences()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		return fmt.Errorf("failed to unmarshal preferences: %w", err)
	}
	if _, ok := particle.ParseColor(loaded.SmokeColor); !ok {
		m.log.Warn().Str("color", loaded.SmokeColor).Msg("unknown stored smoke colour, keeping default")
		loaded.SmokeColor = particle.LightGrey.String()
	}

	m.prefs = loaded
	m.log.Debug().Msg("preferences loaded")
	return nil
}

// Save writes the preferences. Without storage it does nothing.
func (m *Manager) Save() error {
	if m.store == nil {
		return nil
	}

	data, err := yaml.Marshal(m.prefs)
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}
	if err := m.store.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}

	m.log.Debug().Msg("preferences saved")
	return nil
}

// Persistent reports whether Save reaches storage.
func (m *Manager) Persistent() bool {
	return m.store != nil
}

// Get returns the current preferences. Callers must not keep the pointer
// across Load.
func (m *Manager) Get() *Preferences {
	return m.prefs
}

// SetSmokeColor stores an in-range colour; others are ignored.
func (m *Manager) SetSmokeColor(c particle.Color) {
	if !c.Valid() {
		return
	}
	m.prefs.SmokeColor = c.String()
}

func (m *Manager) SetWireframe(on bool) { m.prefs.Wireframe = on }

func (m *Manager) SetLights(on bool) { m.prefs.Lights = on }

// SetParticles records the two smoke toggles.
func (m *Manager) SetParticles(animating, visible bool) {
	m.prefs.ParticlesAnimating = animating
	m.prefs.ParticlesVisible = visible
}
