//go:build light

package particle

// DefaultPoolSize is the reduced pool used by the light build, for
// machines that cannot blend thousands of billboards per frame.
const DefaultPoolSize = 512
