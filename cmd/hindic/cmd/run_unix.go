//go:build unix

package cmd

import (
	"os/exec"
	"syscall"

	"golang.org/x/sys/unix"
)

// setProcessGroup puts run in its own process group so a Ctrl-C delivered
// to hindic doesn't also race-kill the child before propagateInterrupt can
// forward it deliberately.
func setProcessGroup(run *exec.Cmd) {
	run.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}

// propagateInterrupt signals run's whole process group, mirroring what the
// shell does when it delivers Ctrl-C to the foreground job.
func propagateInterrupt(run *exec.Cmd) {
	if run.Process == nil {
		return
	}
	_ = unix.Kill(-run.Process.Pid, unix.SIGINT)
}
