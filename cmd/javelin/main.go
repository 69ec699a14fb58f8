// Package main is the entry point for the javelin build tool.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"github.com/javelin-build/javelin/cmd/javelin/commands"
	"github.com/javelin-build/javelin/internal/app"
	"github.com/javelin-build/javelin/internal/core/domain"
	_ "github.com/javelin-build/javelin/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run(opts ...func(*app.App)) int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}

	for _, opt := range opts {
		opt(components.App)
	}

	cli := commands.New(components.App)

	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, domain.ErrRuntimeFailed) {
			// The build itself completed; the program's own failure was
			// already surfaced on the process streams.
			components.Logger.Error(err)
			return 2
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
