// Package groupchat provides a high-level façade over the group chat engine
// and its strategy packages, enabling rapid construction of multi-agent
// conversations. Most applications interact with this package by:
//  1. Building agents (model-backed, function-backed or custom)
//  2. Calling Run() with an initial user message, optionally overriding the
//     selection strategy, termination policy, logger or invocation timeout
//  3. Reading the returned transcript
//
// The façade delegates orchestration to engine.Engine while keeping setup and
// usage ergonomics concise. All defaults are safe for local development and
// testing; production deployments typically supply a structured logger and an
// invocation timeout.
package groupchat

import (
	"context"
	"time"

	"github.com/hupe1980/groupchat/core"
	"github.com/hupe1980/groupchat/engine"
	"github.com/hupe1980/groupchat/logging"
	"github.com/hupe1980/groupchat/selection"
	"github.com/hupe1980/groupchat/termination"
)

// DefaultMaxIterations is the agent invocation cap applied when neither a
// termination strategy nor a max iteration count is configured.
const DefaultMaxIterations = 6

// Options configures a group chat run.
type Options struct {
	// Selection decides which agent speaks next.
	// Defaults to round-robin in registration order.
	Selection selection.Strategy

	// Termination decides when the run stops. When nil, a hard cap of
	// MaxIterations agent invocations is applied.
	Termination termination.Strategy

	// MaxIterations configures the default termination policy. Ignored when
	// Termination is set. Defaults to DefaultMaxIterations.
	MaxIterations int

	// Logger provides structured logging for the run.
	// Defaults to NoOpLogger if nil.
	Logger logging.Logger

	// InvokeTimeout bounds each individual agent invocation; zero disables it.
	InvokeTimeout time.Duration
}

// Run executes one multi-agent conversation and returns the completed
// transcript. The agents form the registry in the given order; names must be
// unique. The initial message is appended as a user turn before the first
// agent is selected.
func Run(ctx context.Context, agents []core.Agent, message string, optFns ...func(o *Options)) (*core.Transcript, error) {
	opts := Options{
		MaxIterations: DefaultMaxIterations,
		Logger:        logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	registry, err := core.NewRegistry(agents...)
	if err != nil {
		return nil, err
	}

	sel := opts.Selection
	if sel == nil {
		sel = selection.NewRoundRobin()
	}

	term := opts.Termination
	if term == nil {
		term = termination.NewMaxIterations(opts.MaxIterations)
	}

	e := engine.New(func(o *engine.Options) {
		o.Logger = opts.Logger
		o.InvokeTimeout = opts.InvokeTimeout
	})

	return e.Run(ctx, registry, sel, term, message)
}
