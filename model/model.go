// Package model defines the provider-agnostic chat completion abstraction
// used by chat-completion-backed agents and model-backed decision functions.
// Concrete adapters for the OpenAI and Anthropic APIs live in the openai and
// anthropic subpackages.
package model

import "context"

// Message is a single provider-agnostic chat message. Role is "user" or
// "assistant"; adapters map anything else to user.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Info carries metadata describing a concrete model implementation.
type Info struct {
	Name     string `json:"name"`
	Provider string `json:"provider"`
}

// ChatModel abstracts one chat completion call: given caller-supplied
// instructions and an ordered message history it produces a single text
// reply. Implementations may fail with a transport/backend error and must
// respect context cancellation.
type ChatModel interface {
	Chat(ctx context.Context, instructions string, messages []Message) (string, error)
	Info() Info
}
