// Package token resolves GitHub bearer tokens from an ordered list of
// credential sources. Each source is a Provider; a Chain polls them in
// order and the first non-empty token wins.
//
// Tokens are held in memory only for the duration of a call and are
// never logged or persisted by this package.
package token

import (
	"context"
	"errors"
)

// Provider yields a bearer token from a single credential source.
type Provider interface {
	// Name returns the source identifier (e.g., "env", "helper").
	Name() string

	// Token returns a bearer token, or an empty string when this source
	// has nothing to offer. An empty token with a nil error means
	// "declined, try the next source" rather than a failure.
	Token(ctx context.Context) (string, error)
}

// ErrNoToken indicates that no credential source produced a token.
// Callers must not attempt any network operation after receiving it.
var ErrNoToken = errors.New("token: no token available from any source")
