package token

import "context"

// Static returns a fixed token. Useful for wiring a pre-resolved
// credential into the chain, and for tests.
type Static struct {
	Value string
}

// NewStatic creates a Static provider for the given token value.
func NewStatic(value string) *Static {
	return &Static{Value: value}
}

// Name implements Provider.
func (s *Static) Name() string {
	return "static"
}

// Token implements Provider.
func (s *Static) Token(_ context.Context) (string, error) {
	return s.Value, nil
}
