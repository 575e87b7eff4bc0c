package cli

import "fmt"

var (
	version = "dev" // semantic version (e.g., "v1.2.3")
	commit  string  // git commit SHA
	date    string  // build timestamp
)

// SetVersion sets the version information displayed by --version and
// reported by GET /api/info. Typically called from main with values injected
// via ldflags.
func SetVersion(v, c, d string) {
	if v != "" {
		version = v
	}
	commit = c
	date = d
}

func versionTemplate() string {
	return fmt.Sprintf("lvtrace %s\ncommit: %s\nbuilt: %s\n", version, commit, date)
}
