package token

import (
	"context"
	"strings"

	"github.com/diagramforge/svgpress/internal/cmdrun"
)

// Default helper invocation: the GitHub CLI's own token printer.
const (
	DefaultHelperProgram = "gh"
)

// DefaultHelperArgs returns the default arguments for the helper program.
func DefaultHelperArgs() []string {
	return []string{"auth", "token"}
}

// Helper obtains a bearer token by invoking an external credential
// helper and capturing its trimmed standard output.
//
// A missing helper binary or a non-zero exit is treated as a decline,
// not an error: not having the helper installed is an ordinary state
// for this source, and the chain should simply move on.
type Helper struct {
	// Program is the helper executable (default "gh").
	Program string

	// Args are the arguments passed to the helper
	// (default "auth token").
	Args []string

	// Runner executes the helper. Defaults to a cmdrun.ExecRunner.
	Runner cmdrun.Runner
}

// NewHelper creates a Helper using the GitHub CLI with default arguments.
func NewHelper() *Helper {
	return &Helper{
		Program: DefaultHelperProgram,
		Args:    DefaultHelperArgs(),
		Runner:  cmdrun.New(),
	}
}

// Name implements Provider.
func (h *Helper) Name() string {
	return "helper"
}

// Token implements Provider.
func (h *Helper) Token(ctx context.Context) (string, error) {
	program := h.Program
	if program == "" {
		program = DefaultHelperProgram
	}
	args := h.Args
	if args == nil {
		args = DefaultHelperArgs()
	}
	runner := h.Runner
	if runner == nil {
		runner = cmdrun.New()
	}

	result, err := runner.Run(ctx, program, args...)
	if err != nil {
		// Helper absent or failing means this source has no token.
		return "", nil
	}
	return strings.TrimSpace(result.Stdout), nil
}
