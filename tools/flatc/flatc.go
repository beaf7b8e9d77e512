// Package flatc invokes the FlatBuffers schema compiler (flatc) so that a
// build can regenerate helpers from .fbs files.
//
// Most callers only need Run:
//
//	err := flatc.Run(flatc.NewArgs(
//		flatc.WithInputs("flatbuffers/monster.fbs"),
//		flatc.WithOutDir("gen/flatbuffers/"),
//	))
//
// flatc itself must be installed separately (1.10.0 or newer).
package flatc

import (
	"errors"
	"fmt"
	"os/exec"

	"github.com/tobsdb/flatc-go/pkg"
)

const DEFAULT_EXEC = "flatc"

// Flatc is a handle on a flatc executable.
type Flatc struct {
	exec     string
	launcher Launcher
}

// FromEnvPath uses the flatc found in $PATH.
func FromEnvPath() *Flatc {
	return &Flatc{exec: DEFAULT_EXEC, launcher: ExecLauncher{}}
}

// FromPath uses the flatc at path.
func FromPath(path string) *Flatc {
	return &Flatc{exec: path, launcher: ExecLauncher{}}
}

// WithLauncher returns a copy of f that starts flatc through l.
func (f *Flatc) WithLauncher(l Launcher) *Flatc {
	return &Flatc{exec: f.exec, launcher: l}
}

func (f *Flatc) Exec() string { return f.exec }

func (f *Flatc) describe(args []string) string {
	return fmt.Sprintf("%q %q", f.exec, args)
}

// Check that flatc can be found and reports a sane version.
func (f *Flatc) Check() error {
	_, err := f.Version()
	return err
}

// Version runs `flatc --version`. Output is captured rather than shown.
func (f *Flatc) Version() (*Version, error) {
	args := []string{"--version"}
	pkg.DebugLog("spawning command", f.describe(args))

	stdout, stderr, err := f.launcher.Output(f.exec, args)
	if err != nil {
		var exit_err *exec.ExitError
		if errors.As(err, &exit_err) {
			return nil, fmt.Errorf("%w: %s exited with code %d: %s",
				ERR_TOOL_UNAVAILABLE, f.describe(args), exit_err.ExitCode(),
				excerpt(append(stdout, stderr...)))
		}
		return nil, fmt.Errorf("%w: failed to spawn %s: %s",
			ERR_TOOL_UNAVAILABLE, f.describe(args), err.Error())
	}

	v, err := parseVersion(stdout)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.exec, err)
	}
	pkg.DebugLog("found flatc version", v)
	return v, nil
}

// Run flatc with args and check it completed successfully.
func (f *Flatc) Run(args Args) error {
	cmd_args, err := BuildArgs(args)
	if err != nil {
		return err
	}
	return f.runWithArgs(cmd_args)
}

func (f *Flatc) runWithArgs(args []string) error {
	pkg.DebugLog("spawning command", f.describe(args))

	err := f.launcher.Run(f.exec, args)
	if err == nil {
		return nil
	}

	var exit_err *exec.ExitError
	if errors.As(err, &exit_err) {
		return fmt.Errorf("%w: %s exited with non-zero exit code %d",
			ERR_EXECUTION, f.describe(args), exit_err.ExitCode())
	}
	return fmt.Errorf("%w: failed to spawn %s: %s",
		ERR_EXECUTION, f.describe(args), err.Error())
}

// Run the flatc found in $PATH with args, checking its version first.
func Run(args Args) error {
	f := FromEnvPath()

	if err := f.Check(); err != nil {
		return err
	}

	return f.Run(args)
}
