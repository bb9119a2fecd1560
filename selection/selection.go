package selection

import (
	"context"

	"github.com/hupe1980/groupchat/core"
)

// Strategy decides which agent(s) act next given the registered agents and
// the transcript so far.
//
// Next returns a non-empty, ordered batch of registered agent names; the
// engine invokes them in order within one round. It returns a
// *core.SelectionError when no valid name can be produced even after the
// strategy's fallback.
//
// Reset clears all run-scoped state (position counters, cached plans). The
// engine calls it at the start of every run, which makes reuse of a strategy
// instance across sequential runs safe. Sharing one instance between
// concurrently executing runs is not supported.
type Strategy interface {
	Next(ctx context.Context, registry *core.Registry, transcript *core.Transcript) ([]string, error)
	Reset()
}
