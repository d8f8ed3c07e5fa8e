package token

import (
	"context"
	"fmt"
)

// Chain polls an ordered list of providers and returns the first
// non-empty token. Later providers are never consulted once a token is
// found, so a set environment variable short-circuits any helper
// subprocess.
type Chain struct {
	providers []Provider
}

// NewChain creates a Chain trying the given providers in order.
func NewChain(providers ...Provider) *Chain {
	return &Chain{providers: providers}
}

// NewDefaultChain creates the standard resolution order: the
// environment variable first, then the GitHub CLI helper.
func NewDefaultChain() *Chain {
	return NewChain(NewEnv(), NewHelper())
}

// Name implements Provider.
func (c *Chain) Name() string {
	return "chain"
}

// Token implements Provider. It returns ErrNoToken when every source
// declines. A provider error is remembered but does not stop the scan;
// the next source may still succeed.
func (c *Chain) Token(ctx context.Context) (string, error) {
	var lastErr error

	for _, p := range c.providers {
		tok, err := p.Token(ctx)
		if err != nil {
			lastErr = fmt.Errorf("token: provider %q: %w", p.Name(), err)
			continue
		}
		if tok != "" {
			return tok, nil
		}
	}

	if lastErr != nil {
		return "", fmt.Errorf("%w (last provider error: %v)", ErrNoToken, lastErr)
	}
	return "", ErrNoToken
}
