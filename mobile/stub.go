//go:build !mobile

// Package mobile holds the ebitenmobile entry; see mobile.go, which is only
// compiled with -tags mobile.
package mobile

// Dummy is an exported no-op so the package can be referenced on desktop builds.
func Dummy() {}
