package config

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decker502/nanobot/pkg/animation"
	"github.com/decker502/nanobot/pkg/embedded"
	"github.com/decker502/nanobot/pkg/particle"
)

// useRepoData points pkg/embedded at the repository's data directory.
func useRepoData(t *testing.T) {
	t.Helper()
	embedded.Init(os.DirFS(filepath.Join("..", "..")))
	t.Cleanup(func() { embedded.Init(nil) })
}

func TestLoadEmbeddedMissing(t *testing.T) {
	embedded.Init(fstest.MapFS{})
	t.Cleanup(func() { embedded.Init(nil) })

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read embedded config")
}

func writeYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nanobot.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 25*time.Millisecond, cfg.TickInterval)
	assert.Equal(t, 40, cfg.TicksPerSecond())
	assert.Equal(t, particle.LightGrey, cfg.ParticleColor())
	assert.Equal(t, animation.Standby, cfg.StartMode())
	assert.Equal(t, particle.DefaultPoolSize, cfg.PoolSize())
	assert.True(t, cfg.Particles.Enabled)
	assert.True(t, cfg.Particles.Visible)
	assert.Equal(t, 1024, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height)

	cam := cfg.Camera.View()
	assert.Equal(t, mgl64.Vec3{0, 0, 4}, cam.Eye)
	assert.Equal(t, 60.0, cam.FovY)
}

func TestLoadEmbeddedDefaults(t *testing.T) {
	useRepoData(t)
	require.True(t, embedded.Exists(DefaultPath))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 25*time.Millisecond, cfg.TickInterval)
	assert.Equal(t, "Nanobot", cfg.Window.Title)
	assert.Equal(t, []float64{0, 1, 0}, cfg.Camera.Up)
}

func TestLoadOverrideFile(t *testing.T) {
	useRepoData(t)
	path := writeYAML(t, `
tickInterval: 50ms
seed: 99
animation:
  mode: walk
particles:
  count: 128
  color: orange
camera:
  eye: [1, 2, 5]
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 50*time.Millisecond, cfg.TickInterval)
	assert.Equal(t, 20, cfg.TicksPerSecond())
	assert.Equal(t, int64(99), cfg.Seed)
	assert.Equal(t, animation.Walk, cfg.StartMode())
	assert.Equal(t, 128, cfg.PoolSize())
	assert.Equal(t, particle.Orange, cfg.ParticleColor())
	assert.Equal(t, mgl64.Vec3{1, 2, 5}, cfg.Camera.View().Eye)
	// untouched keys keep the embedded values
	assert.Equal(t, 1024, cfg.Window.Width)
	assert.True(t, cfg.Particles.Visible)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("NANOBOT_PARTICLES_COLOR", "green")
	t.Setenv("NANOBOT_WINDOW_WIDTH", "640")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, particle.Green, cfg.ParticleColor())
	assert.Equal(t, 640, cfg.Window.Width)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		invalid bool
	}{
		{"negative tick", "tickInterval: -5ms\n", true},
		{"negative count", "particles:\n  count: -1\n", true},
		{"unknown colour", "particles:\n  color: mauve\n", true},
		{"unknown mode", "animation:\n  mode: moonwalk\n", true},
		{"zero window", "window:\n  width: 0\n", true},
		{"short eye", "camera:\n  eye: [0, 4]\n", true},
		{"eye at center", "camera:\n  eye: [0, 0, 0]\n", true},
		{"zero up", "camera:\n  up: [0, 0, 0]\n", true},
		{"flat fov", "camera:\n  fovY: 180\n", true},
		{"far before near", "camera:\n  near: 5\n  far: 2\n", true},
		{"broken yaml", "particles: [\n", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeYAML(t, tt.yaml))
			require.Error(t, err)
			if tt.invalid {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			} else {
				assert.NotErrorIs(t, err, ErrInvalidConfig)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
