// Package toolchain adapts the external Java compiler and runtime as subprocesses.
package toolchain

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"

	"github.com/javelin-build/javelin/internal/core/domain"
	"github.com/javelin-build/javelin/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Compiler = (*Javac)(nil)

// Javac invokes the external Java compiler.
type Javac struct {
	// Command is the compiler executable, "javac" unless overridden.
	Command string
	logger  ports.Logger
}

// NewJavac creates a new compiler adapter.
func NewJavac(logger ports.Logger) *Javac {
	return &Javac{
		Command: "javac",
		logger:  logger,
	}
}

// Compile submits exactly one compiler invocation covering all given files.
// Batching lets the compiler resolve cross-references among the files being
// compiled together. The invocation blocks until the process exits; no
// timeout is imposed.
func (j *Javac) Compile(ctx context.Context, files []string, outDir string) error {
	args := append([]string{"-d", outDir}, files...)

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, j.Command, args...) //nolint:gosec // Command is the configured compiler
	cmd.Stdout = io.MultiWriter(&stdout, &logWriter{logger: j.logger})
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}

		// The compiler may write diagnostics to either stream; surface both,
		// unmodified, in stream order.
		diagnostics := stdout.String() + stderr.String()
		return zerr.With(zerr.With(zerr.Wrap(domain.ErrCompilationFailed, err.Error()),
			"exit_code", exitCode),
			"diagnostics", diagnostics)
	}

	return nil
}

// logWriter forwards subprocess output lines to the logger.
type logWriter struct {
	logger ports.Logger
}

func (w *logWriter) Write(p []byte) (int, error) {
	msg := strings.TrimSuffix(string(p), "\n")
	if msg == "" {
		return len(p), nil
	}
	for line := range strings.Lines(msg) {
		w.logger.Info(strings.TrimSuffix(line, "\n"))
	}
	return len(p), nil
}
