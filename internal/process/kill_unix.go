//go:build !windows

package process

import "syscall"

// KillProcessGroup sends SIGKILL to the process group led by pid, taking
// down the browser together with its renderer and GPU helpers.
func KillProcessGroup(pid int) {
	if pid <= 0 {
		return
	}
	// Best-effort; the launcher's own Kill is the fallback.
	_ = syscall.Kill(-pid, syscall.SIGKILL)
}
