package agent

import (
	"context"
	"fmt"

	"github.com/hupe1980/groupchat/core"
	"github.com/hupe1980/groupchat/model"
)

// ModelAgentOptions configures a ModelAgent.
type ModelAgentOptions struct {
	// Instructions is the system prompt handed to the model on every
	// invocation. Content is entirely caller-supplied.
	Instructions string
}

// ModelAgent is a chat-completion-backed conversation participant. On each
// invocation it converts the transcript into chat messages from its own point
// of view (its previous replies become assistant messages, every other
// speaker becomes a named user message) and asks its ChatModel for one reply.
type ModelAgent struct {
	name         string
	model        model.ChatModel
	instructions string
}

// NewModelAgent creates a model-backed agent with the given name.
func NewModelAgent(name string, m model.ChatModel, optFns ...func(o *ModelAgentOptions)) *ModelAgent {
	opts := ModelAgentOptions{}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &ModelAgent{name: name, model: m, instructions: opts.Instructions}
}

// Name implements core.Agent.
func (a *ModelAgent) Name() string { return a.name }

// Invoke implements core.Agent by asking the underlying chat model for one
// reply to the conversation so far.
func (a *ModelAgent) Invoke(ctx context.Context, transcript *core.Transcript) (string, error) {
	reply, err := a.model.Chat(ctx, a.instructions, a.buildMessages(transcript))
	if err != nil {
		return "", fmt.Errorf("model call for agent %s failed: %w", a.name, err)
	}

	return reply, nil
}

// buildMessages renders the transcript from this agent's perspective. Turns
// recording recovered invocation failures are excluded from model context.
func (a *ModelAgent) buildMessages(transcript *core.Transcript) []model.Message {
	turns := transcript.All()
	messages := make([]model.Message, 0, len(turns))

	for _, turn := range turns {
		if turn.Err {
			continue
		}

		switch turn.Speaker {
		case a.name:
			messages = append(messages, model.Message{Role: "assistant", Content: turn.Content})
		case core.UserSpeaker:
			messages = append(messages, model.Message{Role: "user", Content: turn.Content})
		default:
			// Other participants are surfaced as named user messages so the
			// model can distinguish voices in the group conversation.
			messages = append(messages, model.Message{Role: "user", Content: turn.Speaker + ": " + turn.Content})
		}
	}

	return messages
}
