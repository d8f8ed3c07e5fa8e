// Package cmdrun executes external helper programs with output capture.
// It is a thin wrapper over os/exec that normalizes exit codes and keeps
// stdout and stderr separate, so callers can treat helper output as data.
package cmdrun

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// Result holds the captured output and exit status of a completed command.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Runner defines the interface for helper program execution.
type Runner interface {
	// Run executes program with args and returns its captured output.
	// A non-zero exit is reported through Result.ExitCode together with
	// a non-nil error.
	Run(ctx context.Context, program string, args ...string) (*Result, error)
}

// ErrProgramNotFound indicates the requested program is not installed
// or not on PATH.
var ErrProgramNotFound = errors.New("cmdrun: program not found")

// Options configures command execution behavior.
type Options struct {
	// WorkingDir is the directory the command runs in. Empty means the
	// current process working directory.
	WorkingDir string

	// Env holds extra environment variables appended to the current
	// process environment.
	Env map[string]string
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithWorkingDir sets the working directory for executed commands.
func WithWorkingDir(dir string) Option {
	return func(o *Options) {
		o.WorkingDir = dir
	}
}

// WithEnvVar adds a single environment variable to executed commands.
func WithEnvVar(key, value string) Option {
	return func(o *Options) {
		if o.Env == nil {
			o.Env = make(map[string]string)
		}
		o.Env[key] = value
	}
}

// ExecRunner implements Runner using os/exec.
type ExecRunner struct {
	options Options
}

// New creates a new ExecRunner with the provided options.
func New(opts ...Option) *ExecRunner {
	options := Options{}
	for _, opt := range opts {
		opt(&options)
	}
	return &ExecRunner{options: options}
}

// Run implements Runner.
func (r *ExecRunner) Run(ctx context.Context, program string, args ...string) (*Result, error) {
	cmd := exec.CommandContext(ctx, program, args...)

	if r.options.WorkingDir != "" {
		cmd.Dir = r.options.WorkingDir
	}
	if len(r.options.Env) > 0 {
		cmd.Env = os.Environ()
		for k, v := range r.options.Env {
			cmd.Env = append(cmd.Env, fmt.Sprintf("%s=%s", k, v))
		}
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := &Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	switch {
	case err == nil:
		return result, nil
	case errors.Is(err, exec.ErrNotFound):
		result.ExitCode = -1
		return result, fmt.Errorf("%w: %q", ErrProgramNotFound, program)
	default:
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
		} else {
			result.ExitCode = -1
		}
		return result, fmt.Errorf("cmdrun: %s: %w", program, err)
	}
}
