package animation

import "strings"

// Mode is one of the named animation behaviours.
type Mode int

const (
	Standby Mode = iota
	Reset
	Fly
	Dance
	Walk

	numModes = int(Walk) + 1
)

var modeNames = [numModes]string{
	Standby: "standby",
	Reset:   "reset",
	Fly:     "fly",
	Dance:   "dance",
	Walk:    "walk",
}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m >= 0 && int(m) < numModes
}

func (m Mode) String() string {
	if !m.Valid() {
		return "unknown"
	}
	return modeNames[m]
}

// ParseMode resolves a mode by name. "reboot" is accepted as an alias for
// Reset, matching the viewer menu.
func ParseMode(name string) (Mode, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "reboot" {
		return Reset, true
	}
	for i, n := range modeNames {
		if n == name {
			return Mode(i), true
		}
	}
	return -1, false
}

// Modes returns every mode in declaration order.
func Modes() []Mode {
	out := make([]Mode, numModes)
	for i := range out {
		out[i] = Mode(i)
	}
	return out
}
