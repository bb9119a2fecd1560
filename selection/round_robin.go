package selection

import (
	"context"

	"github.com/hupe1980/groupchat/core"
)

// RoundRobin selects one agent per call, cycling through the registry in
// registration order and wrapping at the end. It is deterministic and makes
// no external calls.
type RoundRobin struct {
	next int
}

// NewRoundRobin creates a round-robin selection strategy starting at the
// first registered agent.
func NewRoundRobin() *RoundRobin { return &RoundRobin{} }

// Next implements Strategy.
func (s *RoundRobin) Next(_ context.Context, registry *core.Registry, _ *core.Transcript) ([]string, error) {
	names := registry.Names()
	if len(names) == 0 {
		return nil, &core.SelectionError{Reason: "no agents registered"}
	}

	name := names[s.next%len(names)]
	s.next++

	return []string{name}, nil
}

// Reset implements Strategy by rewinding to the first registered agent.
func (s *RoundRobin) Reset() { s.next = 0 }
