package model

import (
	"context"

	"github.com/hupe1980/groupchat/selection"
)

// Decision adapts a ChatModel into a selection.DecisionFunc. The rendered
// conversation is sent as a single user message together with the
// caller-supplied instructions; the raw model reply is returned untouched,
// leaving the defensive parsing to the lead-selection strategy.
func Decision(m ChatModel, instructions string) selection.DecisionFunc {
	return func(ctx context.Context, conversation string) (string, error) {
		return m.Chat(ctx, instructions, []Message{{Role: "user", Content: conversation}})
	}
}
