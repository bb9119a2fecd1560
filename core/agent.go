package core

import "context"

// Agent defines the capability every conversation participant must implement.
//
// Given the transcript so far, an agent produces exactly one reply. Concrete
// implementations are injected by the caller (a chat-completion-backed
// responder, a remote-tool-backed responder, a test stub); the orchestrator
// depends only on this interface.
//
// Implementations must:
//   - Respect context cancellation; the engine may attach a per-invocation
//     deadline
//   - Treat the transcript as read-only; appending results is the engine's job
//   - Return a transport/backend error rather than panicking on failure
type Agent interface {
	Name() string
	Invoke(ctx context.Context, transcript *Transcript) (string, error)
}
