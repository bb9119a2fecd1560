package selection

import (
	"context"
	"strings"

	"github.com/hupe1980/groupchat/core"
	"github.com/hupe1980/groupchat/logging"
)

// DecisionFunc is the external collaborator consulted by LeadSelection. It
// receives a textual rendering of the conversation so far and is expected to
// return a comma-separated list of agent names. The response is untrusted
// free text and is parsed defensively.
type DecisionFunc func(ctx context.Context, conversation string) (string, error)

// LeadSelectionOptions configures a LeadSelection strategy.
type LeadSelectionOptions struct {
	// Logger records plan construction and fallback decisions.
	// Defaults to NoOpLogger.
	Logger logging.Logger
}

// LeadSelection is the dynamic strategy: on its first call of a run it asks a
// decision function which agents should lead the conversation, turns the
// response into a fixed speaking plan, and returns that plan as one batch.
// Every later call advances through the plan with wraparound, exactly like
// FixedSequence, so the decision function is invoked at most once per run.
//
// Parsing policy: entries are trimmed, entries that do not match a registered
// agent are silently dropped, and an empty result (or a decision function
// failure) falls back to the full registry in registration order. The
// fallback is a recoverable default, not a fatal error.
type LeadSelection struct {
	decide  DecisionFunc
	logger  logging.Logger
	plan    []string
	planned bool
	next    int
}

// NewLeadSelection creates a dynamic lead-selection strategy around the given
// decision function.
func NewLeadSelection(decide DecisionFunc, optFns ...func(o *LeadSelectionOptions)) *LeadSelection {
	opts := LeadSelectionOptions{
		Logger: logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &LeadSelection{decide: decide, logger: opts.Logger}
}

// Next implements Strategy.
func (s *LeadSelection) Next(ctx context.Context, registry *core.Registry, transcript *core.Transcript) ([]string, error) {
	if registry.Len() == 0 {
		return nil, &core.SelectionError{Reason: "no agents registered"}
	}

	if !s.planned {
		s.plan = s.buildPlan(ctx, registry, transcript)
		s.planned = true
		s.next = len(s.plan)

		batch := make([]string, len(s.plan))
		copy(batch, s.plan)

		return batch, nil
	}

	name := s.plan[s.next%len(s.plan)]
	s.next++

	return []string{name}, nil
}

// Reset implements Strategy by discarding the cached plan so the next run
// consults the decision function again.
func (s *LeadSelection) Reset() {
	s.plan = nil
	s.planned = false
	s.next = 0
}

// buildPlan consults the decision function and parses its response into a
// speaking plan, falling back to the full registry when nothing usable comes
// back.
func (s *LeadSelection) buildPlan(ctx context.Context, registry *core.Registry, transcript *core.Transcript) []string {
	response, err := s.decide(ctx, transcript.Render())
	if err != nil {
		s.logger.Warn("decision function failed, falling back to full registry", "error", err)
		return registry.Names()
	}

	var plan []string
	for _, entry := range strings.Split(response, ",") {
		name := strings.TrimSpace(entry)
		if name == "" {
			continue
		}
		if _, ok := registry.Get(name); !ok {
			s.logger.Debug("dropping unknown agent from decision response", "name", name)
			continue
		}
		plan = append(plan, name)
	}

	if len(plan) == 0 {
		s.logger.Warn("decision response contained no registered agents, falling back to full registry", "response", response)
		return registry.Names()
	}

	s.logger.Debug("lead selection plan computed", "plan", strings.Join(plan, ","))

	return plan
}
