package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/go-rod/rod/lib/launcher"
)

// Doctor status values.
const (
	statusReady    = "ready"
	statusWarnings = "warnings"
	statusErrors   = "errors"
)

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status    string      `json:"status"` // "ready", "warnings", "errors"
	Browser   browserInfo `json:"browser"`
	Env       envInfo     `json:"environment"`
	System    systemInfo  `json:"system"`
	Renderers []string    `json:"renderers"`
	Warnings  []string    `json:"warnings,omitempty"`
	Errors    []string    `json:"errors,omitempty"`
}

// browserInfo holds Chrome/Chromium detection results.
type browserInfo struct {
	Found   bool   `json:"found"`
	Path    string `json:"path,omitempty"`
	Version string `json:"version,omitempty"`
	Sandbox bool   `json:"sandbox"`
}

// envInfo holds environment detection results.
type envInfo struct {
	OS            string `json:"os"`
	Arch          string `json:"arch"`
	Container     bool   `json:"container"`
	ContainerHint string `json:"container_hint,omitempty"`
	CI            bool   `json:"ci"`
	NoSandbox     string `json:"rod_no_sandbox"`
	BrowserBin    string `json:"rod_browser_bin"`
}

// systemInfo holds system check results.
type systemInfo struct {
	TempWritable bool `json:"temp_writable"`
}

// doctorProbe holds the lookups used by the checks, replaced in tests.
type doctorProbe struct {
	getenv   func(string) string
	lookPath func() (string, bool)
	stat     func(string) error
	version  func(string) (string, error)
	tempDir  func() string
}

func defaultProbe(getenv func(string) string) *doctorProbe {
	return &doctorProbe{
		getenv:   getenv,
		lookPath: launcher.LookPath,
		stat: func(p string) error {
			_, err := os.Stat(p)
			return err
		},
		version: func(bin string) (string, error) {
			out, err := exec.Command(bin, "--version").Output() // #nosec G204 -- browser path from discovery
			return strings.TrimSpace(string(out)), err
		},
		tempDir: os.TempDir,
	}
}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found.
func runDoctorCmd(args []string, env *Environment) int {
	jsonOutput := false
	for _, arg := range args {
		if arg == "--json" {
			jsonOutput = true
		}
	}

	result := runDoctor(defaultProbe(env.Getenv))

	if jsonOutput {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == statusErrors {
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor performs all diagnostic checks.
func runDoctor(p *doctorProbe) *doctorResult {
	result := &doctorResult{
		Status: statusReady,
		Env: envInfo{
			OS:         runtime.GOOS,
			Arch:       runtime.GOARCH,
			NoSandbox:  p.getenv("ROD_NO_SANDBOX"),
			BrowserBin: p.getenv("ROD_BROWSER_BIN"),
		},
		Renderers: []string{"canvas"},
	}

	checkBrowser(p, result)
	checkEnvironment(p, result)
	checkSystem(p, result)

	if len(result.Errors) > 0 {
		result.Status = statusErrors
	} else if len(result.Warnings) > 0 {
		result.Status = statusWarnings
	}

	return result
}

// checkBrowser detects a Chrome/Chromium installation for the markup renderer.
func checkBrowser(p *doctorProbe, result *doctorResult) {
	path := result.Env.BrowserBin

	if path == "" {
		var found bool
		path, found = p.lookPath()
		if !found {
			result.Errors = append(result.Errors,
				"Chrome/Chromium not found. Install Chrome, set ROD_BROWSER_BIN, or use --renderer canvas")
			return
		}
	}

	if err := p.stat(path); err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Chrome not found at %s", path))
		return
	}

	result.Browser.Found = true
	result.Browser.Path = path
	result.Renderers = []string{"markup", "canvas"}

	if v, err := p.version(path); err == nil {
		result.Browser.Version = v
	} else {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Could not get Chrome version: %v", err))
	}

	result.Browser.Sandbox = result.Env.NoSandbox != "1"
}

// checkEnvironment detects container and CI environments.
func checkEnvironment(p *doctorProbe, result *doctorResult) {
	result.Env.Container, result.Env.ContainerHint = isContainer(p)

	for _, v := range []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "CIRCLECI"} {
		if p.getenv(v) != "" {
			result.Env.CI = true
			break
		}
	}

	if (result.Env.Container || result.Env.CI) && result.Env.NoSandbox != "1" {
		result.Warnings = append(result.Warnings,
			"Container/CI detected but ROD_NO_SANDBOX not set. Set ROD_NO_SANDBOX=1")
	}
}

// isContainer detects if running in a container environment.
// Returns (isContainer, hint) where hint indicates which signal was detected.
func isContainer(p *doctorProbe) (bool, string) {
	if p.getenv("EXECREPORT_CONTAINER") == "1" {
		return true, "EXECREPORT_CONTAINER=1"
	}
	if p.stat("/.dockerenv") == nil {
		return true, "/.dockerenv"
	}
	if v := p.getenv("container"); v != "" {
		return true, "container=" + v
	}
	if p.getenv("KUBERNETES_SERVICE_HOST") != "" {
		return true, "KUBERNETES_SERVICE_HOST"
	}
	return false, ""
}

// checkSystem verifies the temp directory used for browser conversion.
func checkSystem(p *doctorProbe, result *doctorResult) {
	tmpDir := p.tempDir()
	testFile := filepath.Join(tmpDir, "execreport-doctor-test")
	if err := os.WriteFile(testFile, []byte("test"), 0o600); err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Temp directory not writable: %s", tmpDir))
	} else {
		_ = os.Remove(testFile)
		result.System.TempWritable = true
	}
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintln(w, "execreport doctor")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Chrome/Chromium")
	if r.Browser.Found {
		fmt.Fprintf(w, "  [OK] Found at %s\n", r.Browser.Path)
		if r.Browser.Version != "" {
			fmt.Fprintf(w, "  [OK] Version: %s\n", r.Browser.Version)
		}
		if r.Browser.Sandbox {
			fmt.Fprintln(w, "  [OK] Sandbox: enabled")
		} else {
			fmt.Fprintln(w, "  [OK] Sandbox: disabled (ROD_NO_SANDBOX=1)")
		}
	} else {
		fmt.Fprintln(w, "  [ERROR] Not found")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Renderers")
	fmt.Fprintf(w, "  [OK] Available: %s\n", strings.Join(r.Renderers, ", "))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Environment")
	fmt.Fprintf(w, "  [OK] Platform: %s/%s\n", r.Env.OS, r.Env.Arch)
	if r.Env.Container {
		fmt.Fprintf(w, "  [OK] Container: detected (%s)\n", r.Env.ContainerHint)
	}
	if r.Env.CI {
		fmt.Fprintln(w, "  [OK] CI: detected")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "System")
	if r.System.TempWritable {
		fmt.Fprintln(w, "  [OK] Temp directory: writable")
	} else {
		fmt.Fprintln(w, "  [ERROR] Temp directory: not writable")
	}
	fmt.Fprintln(w)

	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [WARN] %s\n", warn)
		}
		fmt.Fprintln(w)
	}

	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, err := range r.Errors {
			fmt.Fprintf(w, "  [ERROR] %s\n", err)
		}
		fmt.Fprintln(w)
	}

	switch r.Status {
	case statusReady:
		fmt.Fprintln(w, "Status: Ready to generate")
	case statusWarnings:
		fmt.Fprintln(w, "Status: Ready with warnings")
	case statusErrors:
		fmt.Fprintln(w, "Status: Browser PDF not available (canvas renderer still works)")
	}
}
