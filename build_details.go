package bricktools

import "fmt"

// version is set via ldflags during release builds.
// Development builds report "dev".
var version = "dev"

// Version returns the compiled version or 'dev' if run from source
func Version() string {
	return version
}

// UserAgent returns the User-Agent string identifying this build
func UserAgent() string {
	return fmt.Sprintf("bricktools/%s", version)
}
