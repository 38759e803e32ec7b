//go:build !unix

package cmd

import "os/exec"

func setProcessGroup(run *exec.Cmd) {}

func propagateInterrupt(run *exec.Cmd) {
	if run.Process != nil {
		_ = run.Process.Kill()
	}
}
