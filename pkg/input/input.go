// Package input maps viewer keys to actions.
//
// Front-ends translate their own key events (ebiten, tcell) into Key values
// and look the action up here, so every viewer shares one binding table.
package input

import "unicode"

// Key is a front-end independent key.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyEscape
	KeyTab
	KeyA
	KeyC
	KeyF
	KeyL
	KeyN
	KeyQ
	KeyR
	KeyS
	KeyW
	Key1
	Key2
	Key3
	Key4
	Key5
)

// Action is what a key does.
type Action int

const (
	ActionNone Action = iota
	ActionTurnLeft
	ActionTurnRight
	ActionTiltUp
	ActionTiltDown
	ActionReset
	ActionFreezeSmoke
	ActionShowSmoke
	ActionWireframe
	ActionLights
	ActionQuit
	ActionStandby
	ActionFly
	ActionDance
	ActionWalk
	ActionReboot
	ActionCycleColor
	ActionSelectAll
	ActionSelectNone
	ActionPickNext

	actionCount
)

var actionNames = [actionCount]string{
	ActionNone:        "none",
	ActionTurnLeft:    "turn left",
	ActionTurnRight:   "turn right",
	ActionTiltUp:      "tilt up",
	ActionTiltDown:    "tilt down",
	ActionReset:       "reset",
	ActionFreezeSmoke: "freeze smoke",
	ActionShowSmoke:   "show smoke",
	ActionWireframe:   "wireframe",
	ActionLights:      "switch light",
	ActionQuit:        "quit",
	ActionStandby:     "standby",
	ActionFly:         "fly",
	ActionDance:       "dance",
	ActionWalk:        "walk",
	ActionReboot:      "reboot",
	ActionCycleColor:  "smoke colour",
	ActionSelectAll:   "select all joints",
	ActionSelectNone:  "select no joints",
	ActionPickNext:    "pick next joint",
}

func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return "unknown"
	}
	return actionNames[a]
}

// Binding ties a key to an action. Label is the key as shown in help text.
type Binding struct {
	Key    Key
	Label  string
	Action Action
}

var bindings = []Binding{
	{KeyLeft, "Left", ActionTurnLeft},
	{KeyRight, "Right", ActionTurnRight},
	{KeyUp, "Up", ActionTiltUp},
	{KeyDown, "Down", ActionTiltDown},
	{KeyR, "R", ActionReset},
	{KeyF, "F", ActionFreezeSmoke},
	{KeyS, "S", ActionShowSmoke},
	{KeyW, "W", ActionWireframe},
	{KeyL, "L", ActionLights},
	{KeyQ, "Q", ActionQuit},
	{KeyEscape, "Esc", ActionQuit},
	{Key1, "1", ActionStandby},
	{Key2, "2", ActionFly},
	{Key3, "3", ActionDance},
	{Key4, "4", ActionWalk},
	{Key5, "5", ActionReboot},
	{KeyC, "C", ActionCycleColor},
	{KeyA, "A", ActionSelectAll},
	{KeyN, "N", ActionSelectNone},
	{KeyTab, "Tab", ActionPickNext},
}

var byKey = func() map[Key]Action {
	m := make(map[Key]Action, len(bindings))
	for _, b := range bindings {
		m[b.Key] = b.Action
	}
	return m
}()

// Lookup returns the action bound to k, ActionNone when unbound.
func Lookup(k Key) Action {
	return byKey[k]
}

// Bindings returns a copy of the binding table in help order.
func Bindings() []Binding {
	out := make([]Binding, len(bindings))
	copy(out, bindings)
	return out
}

var runeKeys = map[rune]Key{
	'a': KeyA, 'c': KeyC, 'f': KeyF, 'l': KeyL, 'n': KeyN,
	'q': KeyQ, 'r': KeyR, 's': KeyS, 'w': KeyW,
	'1': Key1, '2': Key2, '3': Key3, '4': Key4, '5': Key5,
	'\t': KeyTab,
}

// KeyFromRune maps a typed character to a Key, ignoring case.
func KeyFromRune(r rune) Key {
	return runeKeys[unicode.ToLower(r)]
}

// Drag accumulates a pointer drag and reports per-event deltas, the way
// joint rotation by mouse motion expects them.
type Drag struct {
	active bool
	x, y   int
}

// Begin starts a drag at (x, y).
func (d *Drag) Begin(x, y int) {
	d.active = true
	d.x, d.y = x, y
}

// End stops the drag.
func (d *Drag) End() {
	d.active = false
}

// Active reports whether a drag is in progress.
func (d *Drag) Active() bool {
	return d.active
}

// Move records the pointer at (x, y) and returns the offset since the last
// position. Outside a drag it returns zeros.
func (d *Drag) Move(x, y int) (dx, dy int) {
	if !d.active {
		return 0, 0
	}
	dx, dy = x-d.x, y-d.y
	d.x, d.y = x, y
	return dx, dy
}
