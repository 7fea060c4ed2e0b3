// embed.go - data files compiled into the binary.
// It lives at the repository root because //go:embed only reaches files
// below the declaring package.
package main

import "embed"

//go:embed data/nanobot.yaml
var dataFS embed.FS
