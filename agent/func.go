package agent

import (
	"context"

	"github.com/hupe1980/groupchat/core"
)

// Func adapts a plain function to the core.Agent interface. It is the
// building block for remote-tool-backed responders (wrap the REST call in the
// function) and for test stubs.
type Func struct {
	name string
	fn   func(ctx context.Context, transcript *core.Transcript) (string, error)
}

// NewFunc creates a function-backed agent.
func NewFunc(name string, fn func(ctx context.Context, transcript *core.Transcript) (string, error)) *Func {
	return &Func{name: name, fn: fn}
}

// Name implements core.Agent.
func (a *Func) Name() string { return a.name }

// Invoke implements core.Agent.
func (a *Func) Invoke(ctx context.Context, transcript *core.Transcript) (string, error) {
	return a.fn(ctx, transcript)
}
