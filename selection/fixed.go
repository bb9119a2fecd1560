package selection

import (
	"context"
	"fmt"

	"github.com/hupe1980/groupchat/core"
)

// FixedSequence replays a caller-supplied workflow of agent names, one per
// call, cycling with wraparound. The workflow is validated against the
// registry at construction time so a run can never select an unknown agent.
type FixedSequence struct {
	workflow []string
	next     int
}

// NewFixedSequence creates a fixed-sequence strategy for the given workflow.
// It returns a *core.ConfigurationError when the workflow is empty or names
// an agent absent from the registry.
func NewFixedSequence(registry *core.Registry, workflow []string) (*FixedSequence, error) {
	if len(workflow) == 0 {
		return nil, &core.ConfigurationError{Reason: "workflow must contain at least one agent name"}
	}

	for _, name := range workflow {
		if _, ok := registry.Get(name); !ok {
			return nil, &core.ConfigurationError{Reason: fmt.Sprintf("workflow references unregistered agent %q", name)}
		}
	}

	return &FixedSequence{workflow: append([]string{}, workflow...)}, nil
}

// Next implements Strategy.
func (s *FixedSequence) Next(_ context.Context, _ *core.Registry, _ *core.Transcript) ([]string, error) {
	if len(s.workflow) == 0 {
		return nil, &core.SelectionError{Reason: "empty workflow"}
	}

	name := s.workflow[s.next%len(s.workflow)]
	s.next++

	return []string{name}, nil
}

// Reset implements Strategy by rewinding to the start of the workflow.
func (s *FixedSequence) Reset() { s.next = 0 }
