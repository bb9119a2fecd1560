// Package core provides the foundational domain types used by the group chat
// orchestrator. It defines the core abstractions for:
//
//   - Turns (immutable, attributed contributions to a conversation)
//   - Transcripts (the ordered, append-only history of one run)
//   - Agents (participants that produce one reply per invocation)
//   - Registries (ordered, uniquely named agent collections)
//
// The package intentionally keeps orchestration concerns (turn scheduling,
// termination, model integration) out of scope, exposing small interfaces so
// the engine, selection and agent packages can be composed without cyclic
// dependencies.
package core
