package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		key  Key
		want Action
	}{
		{KeyLeft, ActionTurnLeft},
		{KeyRight, ActionTurnRight},
		{KeyUp, ActionTiltUp},
		{KeyDown, ActionTiltDown},
		{KeyR, ActionReset},
		{KeyF, ActionFreezeSmoke},
		{KeyS, ActionShowSmoke},
		{KeyW, ActionWireframe},
		{KeyL, ActionLights},
		{KeyQ, ActionQuit},
		{KeyEscape, ActionQuit},
		{Key1, ActionStandby},
		{Key2, ActionFly},
		{Key3, ActionDance},
		{Key4, ActionWalk},
		{Key5, ActionReboot},
		{KeyC, ActionCycleColor},
		{KeyA, ActionSelectAll},
		{KeyN, ActionSelectNone},
		{KeyTab, ActionPickNext},
		{KeyNone, ActionNone},
		{Key(999), ActionNone},
	}
	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, Lookup(tt.key))
		})
	}
}

func TestBindingsCoverEveryAction(t *testing.T) {
	seen := map[Action]bool{}
	for _, b := range Bindings() {
		assert.NotEmpty(t, b.Label)
		seen[b.Action] = true
	}
	for a := ActionNone + 1; a < actionCount; a++ {
		assert.True(t, seen[a], "no key for %s", a)
	}
}

func TestBindingsIsACopy(t *testing.T) {
	b := Bindings()
	b[0].Action = ActionQuit
	assert.Equal(t, ActionTurnLeft, Lookup(KeyLeft))
	assert.Equal(t, ActionTurnLeft, Bindings()[0].Action)
}

func TestKeyFromRune(t *testing.T) {
	assert.Equal(t, KeyQ, KeyFromRune('q'))
	assert.Equal(t, KeyQ, KeyFromRune('Q'))
	assert.Equal(t, Key3, KeyFromRune('3'))
	assert.Equal(t, KeyTab, KeyFromRune('\t'))
	assert.Equal(t, KeyNone, KeyFromRune('z'))
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "reboot", ActionReboot.String())
	assert.Equal(t, "unknown", Action(-1).String())
	assert.Equal(t, "unknown", actionCount.String())
}

func TestDrag(t *testing.T) {
	var d Drag
	dx, dy := d.Move(10, 10)
	assert.Zero(t, dx)
	assert.Zero(t, dy)

	d.Begin(100, 50)
	assert.True(t, d.Active())
	dx, dy = d.Move(104, 47)
	assert.Equal(t, 4, dx)
	assert.Equal(t, -3, dy)
	dx, dy = d.Move(104, 47)
	assert.Zero(t, dx)
	assert.Zero(t, dy)

	d.End()
	assert.False(t, d.Active())
	dx, _ = d.Move(200, 47)
	assert.Zero(t, dx)
}
