// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"strings"

	"github.com/alnah/go-execreport/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// inCI reports whether a well-known CI variable is set.
func inCI() bool {
	for _, v := range []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL"} {
		if os.Getenv(v) != "" {
			return true
		}
	}
	return false
}

// ForDependencyMissing returns the remediation for a missing rendering engine.
// It always names an install route and the HTML-only escape hatch.
func ForDependencyMissing() string {
	return format("install Chrome or Chromium (e.g. `apt install chromium`), " +
		"set ROD_BROWSER_BIN to its path, or pass --download-browser; " +
		"use --html-only to export just the HTML")
}

// ForBrowserConnect returns hints for browser connection errors.
// Detects CI/Docker environment and suggests relevant environment variables.
func ForBrowserConnect() string {
	var hints []string

	if (inCI() || IsInContainer()) && os.Getenv("ROD_NO_SANDBOX") != "1" {
		hints = append(hints, "set ROD_NO_SANDBOX=1 for Docker/CI")
	}
	if os.Getenv("ROD_BROWSER_BIN") == "" {
		hints = append(hints, "set ROD_BROWSER_BIN to use custom Chrome")
	}

	return formatHints(hints)
}

// ForTimeout returns a hint about increasing the conversion timeout.
func ForTimeout() string {
	return format("slow machines may need a longer --timeout (e.g. 2m)")
}

// ForConfigNotFound suggests --config and a user config location.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/report.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, "go-execreport") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output write errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForUnknownRenderer lists the renderers that can be selected.
func ForUnknownRenderer(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available renderers: " + strings.Join(available, ", "))
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
