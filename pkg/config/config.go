// Package config loads the runtime configuration of the nanobot viewers.
//
// Values are layered, later sources winning:
//  1. built-in defaults
//  2. the embedded data/nanobot.yaml (when pkg/embedded is initialised it
//     must be present)
//  3. an optional YAML file given on the command line
//  4. NANOBOT_* environment variables (e.g. NANOBOT_PARTICLES_COUNT)
package config

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/spf13/viper"

	"github.com/decker502/nanobot/pkg/animation"
	"github.com/decker502/nanobot/pkg/embedded"
	"github.com/decker502/nanobot/pkg/particle"
	"github.com/decker502/nanobot/pkg/view"
)

// DefaultPath is the embedded default configuration.
const DefaultPath = "data/nanobot.yaml"

// EnvPrefix prefixes every environment override.
const EnvPrefix = "NANOBOT"

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the full runtime configuration.
type Config struct {
	// TickInterval is the fixed simulation step.
	TickInterval time.Duration `mapstructure:"tickInterval"`

	// Seed for the random source; 0 seeds from the clock.
	Seed int64 `mapstructure:"seed"`

	LogLevel string `mapstructure:"logLevel"`

	Animation AnimationConfig `mapstructure:"animation"`
	Particles ParticlesConfig `mapstructure:"particles"`
	Window    WindowConfig    `mapstructure:"window"`
	Camera    CameraConfig    `mapstructure:"camera"`
}

// AnimationConfig selects the behaviour the figure starts in.
type AnimationConfig struct {
	Mode string `mapstructure:"mode"`
}

// ParticlesConfig configures the smoke.
type ParticlesConfig struct {
	// Count overrides the pool size; 0 keeps the build default.
	Count int `mapstructure:"count"`

	// Enabled lets the smoke advance; Visible lets it draw. The smoke only
	// advances while both are set.
	Enabled bool `mapstructure:"enabled"`
	Visible bool `mapstructure:"visible"`

	Color string `mapstructure:"color"`
}

// WindowConfig is the desktop viewer window.
type WindowConfig struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
}

// CameraConfig positions the scene camera.
type CameraConfig struct {
	Eye    []float64 `mapstructure:"eye"`
	Center []float64 `mapstructure:"center"`
	Up     []float64 `mapstructure:"up"`
	FovY   float64   `mapstructure:"fovY"`
	Near   float64   `mapstructure:"near"`
	Far    float64   `mapstructure:"far"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("tickInterval", 25*time.Millisecond)
	v.SetDefault("seed", 0)
	v.SetDefault("logLevel", "info")

	v.SetDefault("animation.mode", "standby")

	v.SetDefault("particles.count", 0)
	v.SetDefault("particles.enabled", true)
	v.SetDefault("particles.visible", true)
	v.SetDefault("particles.color", "lightgrey")

	v.SetDefault("window.width", 1024)
	v.SetDefault("window.height", 600)
	v.SetDefault("window.title", "Nanobot")

	v.SetDefault("camera.eye", []float64{0, 0, 4})
	v.SetDefault("camera.center", []float64{0, 0, 0})
	v.SetDefault("camera.up", []float64{0, 1, 0})
	v.SetDefault("camera.fovY", 60.0)
	v.SetDefault("camera.near", 1.0)
	v.SetDefault("camera.far", 15.0)
}

// Load builds the configuration.
//
// Parameters:
//   - path: optional YAML override file; empty skips it
//
// Returns:
//   - *Config: the validated configuration
//   - error: read, decode or validation failure
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType("yaml")

	if embedded.IsInitialized() {
		data, err := embedded.ReadFile(DefaultPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read embedded config: %w", err)
		}
		if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
			return nil, fmt.Errorf("failed to parse embedded config: %w", err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks ranges and cross-field constraints.
func (c *Config) Validate() error {
	if c.TickInterval <= 0 {
		return fmt.Errorf("%w: tickInterval must be positive, got %s", ErrInvalidConfig, c.TickInterval)
	}
	if c.Particles.Count < 0 {
		return fmt.Errorf("%w: particles.count must not be negative, got %d", ErrInvalidConfig, c.Particles.Count)
	}
	if _, ok := particle.ParseColor(c.Particles.Color); !ok {
		return fmt.Errorf("%w: unknown particles.color %q", ErrInvalidConfig, c.Particles.Color)
	}
	if _, ok := animation.ParseMode(c.Animation.Mode); !ok {
		return fmt.Errorf("%w: unknown animation.mode %q", ErrInvalidConfig, c.Animation.Mode)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size must be positive, got %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	return c.Camera.validate()
}

func (c *CameraConfig) validate() error {
	for name, v := range map[string][]float64{"eye": c.Eye, "center": c.Center, "up": c.Up} {
		if len(v) != 3 {
			return fmt.Errorf("%w: camera.%s needs 3 components, got %d", ErrInvalidConfig, name, len(v))
		}
	}
	if vec3(c.Eye) == vec3(c.Center) {
		return fmt.Errorf("%w: camera.eye and camera.center coincide", ErrInvalidConfig)
	}
	if vec3(c.Up).Len() == 0 {
		return fmt.Errorf("%w: camera.up must not be zero", ErrInvalidConfig)
	}
	if c.FovY <= 0 || c.FovY >= 180 {
		return fmt.Errorf("%w: camera.fovY must be in (0, 180), got %g", ErrInvalidConfig, c.FovY)
	}
	if c.Near <= 0 || c.Far <= c.Near {
		return fmt.Errorf("%w: camera needs 0 < near < far, got near=%g far=%g", ErrInvalidConfig, c.Near, c.Far)
	}
	return nil
}

func vec3(v []float64) mgl64.Vec3 {
	var out mgl64.Vec3
	copy(out[:], v)
	return out
}

// View converts the camera section.
func (c *CameraConfig) View() view.Camera {
	return view.Camera{
		Eye:    vec3(c.Eye),
		Center: vec3(c.Center),
		Up:     vec3(c.Up),
		FovY:   c.FovY,
		Near:   c.Near,
		Far:    c.Far,
	}
}

// ParticleColor returns the configured tint. Validate guarantees it parses.
func (c *Config) ParticleColor() particle.Color {
	col, ok := particle.ParseColor(c.Particles.Color)
	if !ok {
		return particle.LightGrey
	}
	return col
}

// StartMode returns the configured initial animation mode.
func (c *Config) StartMode() animation.Mode {
	m, ok := animation.ParseMode(c.Animation.Mode)
	if !ok {
		return animation.Standby
	}
	return m
}

// PoolSize returns the particle pool size to use.
func (c *Config) PoolSize() int {
	if c.Particles.Count > 0 {
		return c.Particles.Count
	}
	return particle.DefaultPoolSize
}

// TicksPerSecond converts TickInterval to a tick rate, at least 1.
func (c *Config) TicksPerSecond() int {
	tps := int(time.Second / c.TickInterval)
	if tps < 1 {
		return 1
	}
	return tps
}
