// Package agent contains the first-class core.Agent implementations injected
// into group chat runs:
//
//  1. ModelAgent — a chat-completion-backed responder wrapping a
//     model.ChatModel with per-agent instructions
//  2. Func — an adapter turning any function into an agent, used for
//     remote-tool-backed responders and test stubs
//
// Agents receive the shared transcript read-only and return one reply; the
// engine owns appending results and recovering from invocation failures.
package agent
