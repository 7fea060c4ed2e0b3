//go:build android

package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ensureStorageDir makes sure the viewer preferences can be written on
// Android. gdata keeps its files under /data/data/{package}/ there but never
// creates the saves subdirectory, so Open calls this before gdata.Open.
//
// Returns:
//   - error: the package could not be detected or the directory is unusable
func ensureStorageDir() error {
	// package name of the running app
	pkg, err := androidPackage()
	if err != nil {
		return fmt.Errorf("failed to detect Android package: %w", err)
	}

	// /data/data/{package}/saves
	dir := filepath.Join("/data/data", pkg, "saves")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create saves directory %s: %w", dir, err)
	}

	// a read-only mount only shows up on the first write
	marker := filepath.Join(dir, ".write_test")
	if err := os.WriteFile(marker, []byte("nanobot"), 0o644); err != nil {
		return fmt.Errorf("saves directory %s is not writable: %w", dir, err)
	}
	os.Remove(marker)

	return nil
}

// androidPackage returns the app identifier (e.g. com.decker.nanobot).
// Android writes it, NUL terminated, to /proc/self/cmdline.
func androidPackage() (string, error) {
	data, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return "", err
	}

	// strip the terminator and any stray newline
	name := strings.Map(func(r rune) rune {
		if r == 0 || r == '\n' {
			return -1
		}
		return r
	}, string(data))
	if name == "" {
		return "", fmt.Errorf("empty /proc/self/cmdline")
	}
	return name, nil
}
