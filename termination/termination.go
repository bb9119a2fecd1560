// Package termination contains the policies deciding when a group chat run
// stops. The engine re-evaluates the policy after every individual agent
// invocation, not only after a full selection round, so a cap smaller than
// one selected batch is still honored exactly.
package termination

import "github.com/hupe1980/groupchat/core"

// Strategy decides whether a run is finished given the transcript and the
// number of agent invocations performed so far. Alternative policies (for
// example content-based stopping) can be substituted without changing the
// engine.
type Strategy interface {
	IsDone(transcript *core.Transcript, iterations int) bool
}

// MaxIterations stops a run once the given number of agent invocations has
// been reached. This is the default policy.
type MaxIterations struct {
	max int
}

// NewMaxIterations creates the default hard-cap termination policy.
func NewMaxIterations(max int) *MaxIterations { return &MaxIterations{max: max} }

// IsDone implements Strategy.
func (s *MaxIterations) IsDone(_ *core.Transcript, iterations int) bool {
	return iterations >= s.max
}

// Func adapts a plain function to the Strategy interface, mirroring
// http.HandlerFunc, for callers wanting ad-hoc stopping conditions.
type Func func(transcript *core.Transcript, iterations int) bool

// IsDone implements Strategy.
func (f Func) IsDone(transcript *core.Transcript, iterations int) bool {
	return f(transcript, iterations)
}
