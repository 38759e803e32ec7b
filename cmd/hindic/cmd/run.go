package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"os/signal"

	"github.com/spf13/cobra"
)

var (
	cc        string
	keepCFile bool
)

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Compile a file to C, then compile and execute it with a host C toolchain",
	Long: `Run the full build pipeline, invoke a host C compiler (cc by
default) on the generated source, and execute the resulting binary.

This is a supplemental convenience beyond the compiler's core scope: it
shells out to whatever C toolchain is on PATH and is meant for quickly
trying out a program, not as a substitute for a real build system.`,
	Args: cobra.ExactArgs(1),
	RunE: runAndExecute,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVar(&cc, "cc", "cc", "host C compiler to invoke")
	runCmd.Flags().BoolVar(&keepCFile, "keep-c", false, "keep the intermediate .c and binary files")
}

func runAndExecute(_ *cobra.Command, args []string) error {
	filename := args[0]
	cPath := defaultOutputPath(filename)

	if err := buildFile(filename, cPath); err != nil {
		return err
	}

	binPath := cPath + ".out"
	compile := exec.Command(cc, cPath, "-o", binPath)
	compile.Stdout = os.Stdout
	compile.Stderr = os.Stderr
	if err := compile.Run(); err != nil {
		return fmt.Errorf("host C compiler failed: %w", err)
	}
	if !keepCFile {
		defer os.Remove(cPath)
		defer os.Remove(binPath)
	}

	run := exec.Command(binPath)
	run.Stdout = os.Stdout
	run.Stderr = os.Stderr
	run.Stdin = os.Stdin
	setProcessGroup(run)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	defer signal.Stop(sigCh)
	go func() {
		if _, ok := <-sigCh; ok {
			propagateInterrupt(run)
		}
	}()

	if err := run.Run(); err != nil {
		return fmt.Errorf("generated program exited with error: %w", err)
	}
	return nil
}
