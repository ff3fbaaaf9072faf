// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"

	"github.com/matiasglessi/portfolio/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv file which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/portfolio/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/site.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/portfolio") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForHighlightStyle returns hints for an unknown chroma style.
func ForHighlightStyle(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available styles: " + strings.Join(available, ", "))
}

// ForFrontMatter returns hints for a content file rejected by the loader.
// The reason selects the relevant suggestions.
func ForFrontMatter(reason string) string {
	var hints []string

	lower := strings.ToLower(reason)
	if strings.Contains(lower, "date") {
		hints = append(hints, "dates use YYYY-MM-DD, YYYY-MM-DD HH:MM or RFC3339")
	}
	if strings.Contains(lower, "layout") {
		hints = append(hints, `layout is "page" or "about"`)
	}
	if strings.Contains(lower, "title") || strings.Contains(lower, "front matter") {
		hints = append(hints, "front matter sits between two --- lines at the top of the file")
	}

	return formatHints(hints)
}

// ForServeAddress returns hints for a preview server that cannot listen.
// Inside a container the server must bind every interface to be reachable.
func ForServeAddress(addr string) string {
	hints := []string{"use --addr to choose another address"}
	if IsInContainer() && strings.HasPrefix(addr, "localhost") {
		hints = append(hints, "inside a container use --addr 0.0.0.0:8000")
	}
	return formatHints(hints)
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
