package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
)

// Executor runs one external tool invocation to completion. The argument
// vector always starts with the binary.
type Executor interface {
	Run(ctx context.Context, argv []string) error
}

// NewExecutor returns the process-spawning Executor. Stderr is captured for
// failure diagnostics; commands are logged at debug level.
func NewExecutor(logger *slog.Logger) Executor {
	return &commandExecutor{logger: logger}
}

type commandExecutor struct {
	logger *slog.Logger
}

func (e *commandExecutor) Run(ctx context.Context, argv []string) error {
	if len(argv) == 0 {
		return errors.New("empty command")
	}
	if e.logger != nil {
		e.logger.Debug("running command", slog.String("command", QuoteCommand(argv)))
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) //nolint:gosec
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	cmd.Stdout = io.Discard

	if err := cmd.Run(); err != nil {
		var execErr *exec.Error
		if errors.As(err, &execErr) && errors.Is(execErr.Err, exec.ErrNotFound) {
			return &ToolError{Binary: argv[0], Argv: argv, NotFound: true, Err: err}
		}
		return &ToolError{
			Binary: argv[0],
			Argv:   argv,
			Stderr: stderr.String(),
			Err:    err,
		}
	}
	return nil
}

// DryRunner is an Executor that records commands instead of spawning them.
// When Out is set each command is also echoed as a shell-quoted line. All
// control flow in the caller proceeds exactly as in a live run.
type DryRunner struct {
	Out      io.Writer
	Commands [][]string
}

func (d *DryRunner) Run(_ context.Context, argv []string) error {
	d.Commands = append(d.Commands, append([]string(nil), argv...))
	if d.Out != nil {
		fmt.Fprintln(d.Out, QuoteCommand(argv))
	}
	return nil
}
