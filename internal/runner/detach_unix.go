//go:build unix

package runner

import (
	"os/exec"
	"syscall"
)

// detach puts the child in a new session so it outlives the launcher and
// its controlling terminal.
func detach(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
}
