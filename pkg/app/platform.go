//go:build !mobile

package app

import "os"

// isMobile reports whether touch controls replace the keyboard help.
// NANOBOT_MOBILE_EMULATE=1 turns them on for local debugging.
func isMobile() bool {
	return os.Getenv("NANOBOT_MOBILE_EMULATE") == "1"
}
