//go:build !light

package particle

// DefaultPoolSize is the number of smoke particles kept alive.
const DefaultPoolSize = 4000
