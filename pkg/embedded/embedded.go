// Package embedded gives other packages access to the data files compiled
// into the binary.
//
// //go:embed only reaches files below the declaring package, so the FS is
// declared in the root embed.go and handed over here with Init at startup.
package embedded

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// ErrNotInitialized is returned before Init has been called.
var ErrNotInitialized = errors.New("embedded package not initialized, call Init() first")

var dataFS fs.FS

// Init installs the data file system. Paths handed to the other functions
// must start with "data/".
func Init(data fs.FS) {
	dataFS = data
}

// IsInitialized reports whether Init has been called with a non-nil FS.
func IsInitialized() bool {
	return dataFS != nil
}

func normalize(path string) (string, error) {
	if dataFS == nil {
		return "", ErrNotInitialized
	}
	path = strings.TrimPrefix(filepath.ToSlash(path), "./")
	if !strings.HasPrefix(path, "data/") {
		return "", fmt.Errorf("unknown resource path prefix: %s (must start with 'data/')", path)
	}
	return path, nil
}

// ReadFile reads an embedded file.
func ReadFile(path string) ([]byte, error) {
	path, err := normalize(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(dataFS, path)
}

// Exists reports whether an embedded file is present.
func Exists(path string) bool {
	path, err := normalize(path)
	if err != nil {
		return false
	}
	_, err = fs.Stat(dataFS, path)
	return err == nil
}
