package flatc

import (
	"bytes"
	"os"
	"os/exec"
)

// Launcher starts flatc. ExecLauncher is the real thing; tests swap in a fake.
type Launcher interface {
	// Output runs name with args and returns everything it wrote to stdout
	// and stderr once it has exited.
	Output(name string, args []string) (stdout, stderr []byte, err error)
	// Run runs name with args, letting it write to the parent's stdout and
	// stderr, and waits for it to exit.
	Run(name string, args []string) error
}

// ExecLauncher runs commands with os/exec. Stdin is always closed.
type ExecLauncher struct{}

func (ExecLauncher) Output(name string, args []string) ([]byte, []byte, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.Command(name, args...)
	cmd.Stdin = nil
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	// Run copies both pipes to completion before reaping the child, so a
	// chatty tool can't block on a full pipe.
	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}

func (ExecLauncher) Run(name string, args []string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = nil
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
