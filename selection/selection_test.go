package selection

import (
	"context"

	"github.com/hupe1980/groupchat/core"
)

// stubAgent satisfies core.Agent for registry construction in tests.
type stubAgent struct{ name string }

func (s stubAgent) Name() string { return s.name }

func (s stubAgent) Invoke(context.Context, *core.Transcript) (string, error) { return "", nil }

func newTestRegistry(names ...string) *core.Registry {
	agents := make([]core.Agent, len(names))
	for i, n := range names {
		agents[i] = stubAgent{name: n}
	}

	reg, err := core.NewRegistry(agents...)
	if err != nil {
		panic(err)
	}

	return reg
}
