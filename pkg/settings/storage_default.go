//go:build !android

package settings

// ensureStorageDir is a no-op: gdata creates its directory on these
// platforms.
func ensureStorageDir() error {
	return nil
}
