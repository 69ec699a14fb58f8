package toolchain

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"

	"github.com/javelin-build/javelin/internal/core/domain"
	"github.com/javelin-build/javelin/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Runtime = (*Java)(nil)

// Java invokes the external Java runtime.
type Java struct {
	// Command is the runtime executable, "java" unless overridden.
	Command string
	// Stdout and Stderr receive the program's streams unmodified.
	Stdout io.Writer
	Stderr io.Writer
}

// NewJava creates a new runtime adapter wired to the process streams.
func NewJava() *Java {
	return &Java{
		Command: "java",
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
}

// Run issues one runtime invocation for className against the artifacts in
// outDir. jvmOpts precede the class name, args follow it. The program's
// streams pass through unmodified; a non-zero exit is returned as an error
// carrying the exit code.
func (j *Java) Run(ctx context.Context, outDir, className string, jvmOpts, args []string) error {
	cmdArgs := make([]string, 0, 2+len(jvmOpts)+1+len(args))
	cmdArgs = append(cmdArgs, "-cp", outDir)
	cmdArgs = append(cmdArgs, jvmOpts...)
	cmdArgs = append(cmdArgs, className)
	cmdArgs = append(cmdArgs, args...)

	cmd := exec.CommandContext(ctx, j.Command, cmdArgs...) //nolint:gosec // Command is the configured runtime
	cmd.Stdout = j.Stdout
	cmd.Stderr = j.Stderr

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return zerr.With(zerr.With(zerr.Wrap(domain.ErrRuntimeFailed, err.Error()),
			"exit_code", exitCode),
			"class", className)
	}
	return nil
}
