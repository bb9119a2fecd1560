package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hupe1980/groupchat/core"
	"github.com/hupe1980/groupchat/selection"
	"github.com/hupe1980/groupchat/termination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockAgent for verifying invocation behavior.
type MockAgent struct {
	mock.Mock
	name string
}

func NewMockAgent(name string) *MockAgent {
	return &MockAgent{name: name}
}

func (m *MockAgent) Name() string { return m.name }

func (m *MockAgent) Invoke(ctx context.Context, transcript *core.Transcript) (string, error) {
	args := m.Called(ctx, transcript)
	return args.String(0), args.Error(1)
}

// echoAgent is a scripted stub replying with a fixed message.
type echoAgent struct {
	name  string
	reply string
}

func (a echoAgent) Name() string { return a.name }

func (a echoAgent) Invoke(context.Context, *core.Transcript) (string, error) {
	return a.reply, nil
}

// failingAgent always returns a backend error.
type failingAgent struct{ name string }

func (a failingAgent) Name() string { return a.name }

func (a failingAgent) Invoke(context.Context, *core.Transcript) (string, error) {
	return "", errors.New("backend unavailable")
}

// slowAgent blocks until its context is cancelled.
type slowAgent struct{ name string }

func (a slowAgent) Name() string { return a.name }

func (a slowAgent) Invoke(ctx context.Context, _ *core.Transcript) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}

func newRegistry(t *testing.T, agents ...core.Agent) *core.Registry {
	t.Helper()
	reg, err := core.NewRegistry(agents...)
	require.NoError(t, err)
	return reg
}

func speakers(transcript *core.Transcript) []string {
	var out []string
	for _, turn := range transcript.All() {
		out = append(out, turn.Speaker)
	}
	return out
}

func TestEngine_Run_RoundRobin(t *testing.T) {
	reg := newRegistry(t,
		echoAgent{"A", "reply from A"},
		echoAgent{"B", "reply from B"},
		echoAgent{"C", "reply from C"},
	)

	e := New()
	transcript, err := e.Run(context.Background(), reg, selection.NewRoundRobin(), termination.NewMaxIterations(6), "kick off")
	require.NoError(t, err)

	assert.Equal(t, []string{"user", "A", "B", "C", "A", "B", "C"}, speakers(transcript))
	assert.Equal(t, "kick off", transcript.All()[0].Content)
}

func TestEngine_Run_FixedSequenceFidelity(t *testing.T) {
	reg := newRegistry(t, echoAgent{"A", "a"}, echoAgent{"B", "b"}, echoAgent{"C", "c"})

	workflow, err := selection.NewFixedSequence(reg, []string{"A", "B", "C"})
	require.NoError(t, err)

	e := New()
	transcript, err := e.Run(context.Background(), reg, workflow, termination.NewMaxIterations(5), "start")
	require.NoError(t, err)

	assert.Equal(t, []string{"user", "A", "B", "C", "A", "B"}, speakers(transcript))
}

func TestEngine_Run_SequenceStrictlyIncreasing(t *testing.T) {
	reg := newRegistry(t, echoAgent{"A", "a"}, echoAgent{"B", "b"})

	e := New()
	transcript, err := e.Run(context.Background(), reg, selection.NewRoundRobin(), termination.NewMaxIterations(7), "go")
	require.NoError(t, err)

	turns := transcript.All()
	require.Len(t, turns, 8)
	for i, turn := range turns {
		assert.Equal(t, i, turn.Sequence)
	}
}

func TestEngine_Run_DynamicBatchReplay(t *testing.T) {
	reg := newRegistry(t, echoAgent{"X", "x"}, echoAgent{"Y", "y"}, echoAgent{"Z", "z"})

	calls := 0
	lead := selection.NewLeadSelection(func(context.Context, string) (string, error) {
		calls++
		return "X, Y", nil
	})

	e := New()
	transcript, err := e.Run(context.Background(), reg, lead, termination.NewMaxIterations(5), "plan this")
	require.NoError(t, err)

	assert.Equal(t, []string{"user", "X", "Y", "X", "Y", "X"}, speakers(transcript))
	assert.Equal(t, 1, calls)
}

func TestEngine_Run_MidBatchCap(t *testing.T) {
	reg := newRegistry(t, echoAgent{"X", "x"}, echoAgent{"Y", "y"})

	lead := selection.NewLeadSelection(func(context.Context, string) (string, error) {
		return "X, Y", nil
	})

	e := New()
	transcript, err := e.Run(context.Background(), reg, lead, termination.NewMaxIterations(1), "short run")
	require.NoError(t, err)

	// The plan has two names, but the cap must never be overrun.
	assert.Equal(t, []string{"user", "X"}, speakers(transcript))
}

func TestEngine_Run_ZeroCapAppendsOnlyUserTurn(t *testing.T) {
	reg := newRegistry(t, echoAgent{"A", "a"})

	e := New()
	transcript, err := e.Run(context.Background(), reg, selection.NewRoundRobin(), termination.NewMaxIterations(0), "hello")
	require.NoError(t, err)

	assert.Equal(t, []string{"user"}, speakers(transcript))
}

func TestEngine_Run_InvocationFailureIsolation(t *testing.T) {
	reg := newRegistry(t,
		echoAgent{"A", "fine"},
		failingAgent{"Broken"},
		echoAgent{"C", "also fine"},
	)

	e := New()
	transcript, err := e.Run(context.Background(), reg, selection.NewRoundRobin(), termination.NewMaxIterations(3), "go")
	require.NoError(t, err)

	turns := transcript.All()
	require.Len(t, turns, 4)

	assert.Equal(t, []string{"user", "A", "Broken", "C"}, speakers(transcript))
	assert.False(t, turns[1].Err)
	assert.True(t, turns[2].Err)
	assert.Contains(t, turns[2].Content, "backend unavailable")
	assert.False(t, turns[3].Err)
}

func TestEngine_Run_InvokeTimeoutBecomesErrorTurn(t *testing.T) {
	reg := newRegistry(t, slowAgent{"Slow"}, echoAgent{"Fast", "done"})

	e := New(func(o *Options) {
		o.InvokeTimeout = 10 * time.Millisecond
	})

	transcript, err := e.Run(context.Background(), reg, selection.NewRoundRobin(), termination.NewMaxIterations(2), "go")
	require.NoError(t, err)

	turns := transcript.All()
	require.Len(t, turns, 3)
	assert.True(t, turns[1].Err)
	assert.Contains(t, turns[1].Content, context.DeadlineExceeded.Error())
	assert.Equal(t, "done", turns[2].Content)
}

func TestEngine_Run_ParentCancellationAbortsRun(t *testing.T) {
	reg := newRegistry(t, slowAgent{"Slow"})

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	e := New()
	transcript, err := e.Run(ctx, reg, selection.NewRoundRobin(), termination.NewMaxIterations(100), "go")

	require.ErrorIs(t, err, context.Canceled)
	assert.NotNil(t, transcript)
}

func TestEngine_Run_ConfigurationErrors(t *testing.T) {
	reg := newRegistry(t, echoAgent{"A", "a"})
	e := New()

	var cfgErr *core.ConfigurationError

	_, err := e.Run(context.Background(), nil, selection.NewRoundRobin(), termination.NewMaxIterations(1), "m")
	require.ErrorAs(t, err, &cfgErr)

	_, err = e.Run(context.Background(), reg, nil, termination.NewMaxIterations(1), "m")
	require.ErrorAs(t, err, &cfgErr)

	_, err = e.Run(context.Background(), reg, selection.NewRoundRobin(), nil, "m")
	require.ErrorAs(t, err, &cfgErr)
}

func TestEngine_Run_ReusedStrategyIsResetPerRun(t *testing.T) {
	reg := newRegistry(t, echoAgent{"A", "a"}, echoAgent{"B", "b"}, echoAgent{"C", "c"})
	rr := selection.NewRoundRobin()
	e := New()

	first, err := e.Run(context.Background(), reg, rr, termination.NewMaxIterations(2), "one")
	require.NoError(t, err)
	assert.Equal(t, []string{"user", "A", "B"}, speakers(first))

	// The second run must start from the first registered agent again.
	second, err := e.Run(context.Background(), reg, rr, termination.NewMaxIterations(2), "two")
	require.NoError(t, err)
	assert.Equal(t, []string{"user", "A", "B"}, speakers(second))
}

func TestEngine_Run_AgentSeesCurrentTranscript(t *testing.T) {
	checker := NewMockAgent("Checker")
	checker.On("Invoke", mock.Anything, mock.AnythingOfType("*core.Transcript")).
		Run(func(args mock.Arguments) {
			transcript := args.Get(1).(*core.Transcript)
			assert.Equal(t, 2, transcript.Len())
		}).
		Return("checked", nil)

	reg := newRegistry(t, echoAgent{"A", "first answer"}, checker)

	e := New()
	transcript, err := e.Run(context.Background(), reg, selection.NewRoundRobin(), termination.NewMaxIterations(2), "question")
	require.NoError(t, err)

	checker.AssertExpectations(t)
	assert.Equal(t, []string{"user", "A", "Checker"}, speakers(transcript))
}
