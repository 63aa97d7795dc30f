package services

import (
	"fmt"
	"strings"
)

// ToolError reports a failed external tool invocation. NotFound
// distinguishes a missing binary from a tool that ran and exited non-zero;
// in the latter case Stderr carries the captured diagnostic stream.
type ToolError struct {
	Binary   string
	Argv     []string
	Stderr   string
	NotFound bool
	Err      error
}

func (e *ToolError) Error() string {
	if e.NotFound {
		return fmt.Sprintf("command not found: %s", e.Binary)
	}
	msg := fmt.Sprintf("command failed: %s", QuoteCommand(e.Argv))
	if detail := strings.TrimSpace(e.Stderr); detail != "" {
		msg += ": " + detail
	}
	return msg
}

func (e *ToolError) Unwrap() error {
	return e.Err
}
