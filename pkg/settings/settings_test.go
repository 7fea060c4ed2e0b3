package settings

import (
	"testing"

	"github.com/quasilyte/gdata/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decker502/nanobot/pkg/particle"
)

func openStore(t *testing.T) *gdata.Manager {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	store, err := gdata.Open(gdata.Config{AppName: "test_nanobot_settings"})
	require.NoError(t, err)
	return store
}

func TestDefaultPreferences(t *testing.T) {
	p := DefaultPreferences()
	assert.Equal(t, "lightgrey", p.SmokeColor)
	assert.Equal(t, particle.LightGrey, p.Color())
	assert.False(t, p.Wireframe)
	assert.True(t, p.Lights)
	assert.True(t, p.ParticlesAnimating)
	assert.True(t, p.ParticlesVisible)
}

func TestInMemoryManager(t *testing.T) {
	m := NewManager(nil, zerolog.Nop())
	assert.False(t, m.Persistent())
	assert.Equal(t, DefaultPreferences(), m.Get())

	m.SetWireframe(true)
	require.NoError(t, m.Save())
	assert.True(t, m.Get().Wireframe)

	// Load on a nil store resets to defaults
	require.NoError(t, m.Load())
	assert.False(t, m.Get().Wireframe)
}

func TestSaveAndReload(t *testing.T) {
	store := openStore(t)

	m := NewManager(store, zerolog.Nop())
	require.True(t, m.Persistent())
	m.SetSmokeColor(particle.Orange)
	m.SetWireframe(true)
	m.SetLights(false)
	m.SetParticles(false, true)
	require.NoError(t, m.Save())

	reloaded := NewManager(store, zerolog.Nop())
	p := reloaded.Get()
	assert.Equal(t, particle.Orange, p.Color())
	assert.True(t, p.Wireframe)
	assert.False(t, p.Lights)
	assert.False(t, p.ParticlesAnimating)
	assert.True(t, p.ParticlesVisible)
}

func TestSetSmokeColorIgnoresOutOfRange(t *testing.T) {
	m := NewManager(nil, zerolog.Nop())
	m.SetSmokeColor(particle.Blue)
	m.SetSmokeColor(particle.Color(particle.ColorCount))
	m.SetSmokeColor(-1)
	assert.Equal(t, particle.Blue, m.Get().Color())
}

func TestLoadRecoversFromBadData(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr bool
		color   particle.Color
	}{
		{"broken yaml", "smokeColor: [\n", true, particle.LightGrey},
		{"unknown colour", "smokeColor: mauve\nwireframe: true\n", false, particle.LightGrey},
		{"partial document", "smokeColor: red\n", false, particle.Red},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := openStore(t)
			require.NoError(t, store.SaveObjectProp(settingsObject, settingsProperty, []byte(tt.data)))

			m := &Manager{store: store, log: zerolog.Nop()}
			err := m.Load()
			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, DefaultPreferences(), m.Get())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.color, m.Get().Color())
			// keys missing from the document keep their defaults
			assert.True(t, m.Get().Lights)
		})
	}
}

func TestOpen(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	store := Open(zerolog.Nop())
	require.NotNil(t, store)

	m := NewManager(store, zerolog.Nop())
	assert.True(t, m.Persistent())
	require.NoError(t, m.Save())
	assert.True(t, store.ObjectPropExists(settingsObject, settingsProperty))
}
