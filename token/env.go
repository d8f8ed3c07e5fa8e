package token

import (
	"context"
	"os"
	"strings"
)

// DefaultEnvVar is the environment variable consulted by NewEnv.
const DefaultEnvVar = "GITHUB_TOKEN"

// Env reads a bearer token directly from a process environment variable.
type Env struct {
	// Var is the environment variable name holding the token.
	Var string
}

// NewEnv creates an Env provider reading DefaultEnvVar.
func NewEnv() *Env {
	return &Env{Var: DefaultEnvVar}
}

// Name implements Provider.
func (e *Env) Name() string {
	return "env"
}

// Token implements Provider. An unset or blank variable is a decline,
// never an error.
func (e *Env) Token(_ context.Context) (string, error) {
	return strings.TrimSpace(os.Getenv(e.Var)), nil
}
