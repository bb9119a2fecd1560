package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hupe1980/groupchat/core"
	"github.com/hupe1980/groupchat/logging"
	"github.com/hupe1980/groupchat/selection"
	"github.com/hupe1980/groupchat/termination"
)

// Options holds dependency + configuration overrides passed to New().
type Options struct {
	// Logger provides structured logging for run lifecycle and failures.
	// Defaults to NoOpLogger if nil.
	Logger logging.Logger

	// InvokeTimeout bounds each individual agent invocation. A timed out
	// invocation is treated like any other invocation failure: it becomes an
	// error-marked turn and the run continues. Zero disables the bound.
	InvokeTimeout time.Duration
}

// Engine drives group chat runs. It holds no per-run state; distinct runs own
// their own transcript and registry snapshot, so one Engine may serve
// concurrent runs as long as each run gets its own strategy instances.
type Engine struct {
	logger        logging.Logger
	invokeTimeout time.Duration
}

// New constructs an Engine with optional overrides.
func New(optFns ...func(o *Options)) *Engine {
	opts := Options{
		Logger: logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Engine{
		logger:        opts.Logger,
		invokeTimeout: opts.InvokeTimeout,
	}
}

// Run executes one group chat conversation to completion.
//
// It appends the initial message as a user turn, then loops: the selection
// strategy picks the next agent batch, each agent in the batch is invoked in
// order with the current transcript, its reply is appended, and the
// termination strategy is re-evaluated after every single invocation so a
// cap smaller than one batch still stops exactly at the cap.
//
// The iteration count increments once per agent invoked, not per selection
// call. Replies appear in the transcript in exactly the order their agents
// were selected, never interleaved: the loop blocks on one invocation at a
// time.
//
// An agent invocation failure is recorded as an error-marked turn attributed
// to that agent and the batch continues with the next name. Configuration
// and selection errors abort; in that case the transcript accumulated so far
// is returned alongside the error.
func (e *Engine) Run(
	ctx context.Context,
	registry *core.Registry,
	sel selection.Strategy,
	term termination.Strategy,
	message string,
) (*core.Transcript, error) {
	if registry == nil || registry.Len() == 0 {
		return nil, &core.ConfigurationError{Reason: "registry must contain at least one agent"}
	}

	if sel == nil {
		return nil, &core.ConfigurationError{Reason: "selection strategy is required"}
	}

	if term == nil {
		return nil, &core.ConfigurationError{Reason: "termination strategy is required"}
	}

	// Strategy counters are run-scoped; resetting here makes reuse of the
	// same strategy instance across sequential runs safe.
	sel.Reset()

	runID := uuid.NewString()
	transcript := core.NewTranscript()
	transcript.Append(core.UserSpeaker, message)

	e.logger.Info("group chat run started", "run_id", runID, "agents", registry.Len())

	iterations := 0

loop:
	for {
		if term.IsDone(transcript, iterations) {
			break
		}

		names, err := sel.Next(ctx, registry, transcript)
		if err != nil {
			e.logger.Error("selection failed", "run_id", runID, "error", err)
			return transcript, err
		}

		if len(names) == 0 {
			err := &core.SelectionError{Reason: "strategy returned no agent names"}
			e.logger.Error("selection failed", "run_id", runID, "error", err)
			return transcript, err
		}

		e.logger.Debug("agents selected", "run_id", runID, "names", names)

		for _, name := range names {
			agent, ok := registry.Get(name)
			if !ok {
				err := &core.SelectionError{Reason: fmt.Sprintf("selected agent %q is not registered", name)}
				e.logger.Error("selection failed", "run_id", runID, "error", err)
				return transcript, err
			}

			reply, err := e.invoke(ctx, agent, transcript)
			if err != nil {
				transcript.AppendError(name, fmt.Sprintf("invocation failed: %v", err))
				e.logger.Warn("agent invocation failed", "run_id", runID, "agent", name, "error", err)
			} else {
				transcript.Append(name, reply)
				e.logger.Debug("agent replied", "run_id", runID, "agent", name)
			}

			iterations++

			// A cancelled parent context is fatal to the run; a per-invocation
			// timeout is not.
			if err := ctx.Err(); err != nil {
				return transcript, err
			}

			if term.IsDone(transcript, iterations) {
				break loop
			}
		}
	}

	e.logger.Info("group chat run complete", "run_id", runID, "iterations", iterations, "turns", transcript.Len())

	return transcript, nil
}

// invoke executes a single agent, applying the per-invocation timeout when
// configured.
func (e *Engine) invoke(ctx context.Context, agent core.Agent, transcript *core.Transcript) (string, error) {
	if e.invokeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.invokeTimeout)
		defer cancel()
	}

	return agent.Invoke(ctx, transcript)
}
