//go:build windows

package process

import (
	"os/exec"
	"strconv"
)

// KillProcessGroup kills the browser process tree rooted at pid.
// /F = force kill, /T = terminate child processes.
func KillProcessGroup(pid int) {
	if pid <= 0 {
		return
	}
	// Best-effort; the launcher's own Kill is the fallback.
	_ = exec.Command("taskkill", "/F", "/T", "/PID", strconv.Itoa(pid)).Run() // #nosec G204 -- pid is numeric
}
