package core

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// UserSpeaker is the reserved speaker identifier for caller-supplied messages.
// Agent names registered in a Registry must not collide with it.
const UserSpeaker = "user"

// Turn is one attributed contribution to a conversation. After being appended
// to a Transcript it should be treated as immutable. It captures:
//
//   - Identity (ID, Speaker)
//   - Conversational content (Content)
//   - Position (Sequence, assigned by the Transcript at append time)
//   - A high precision UTC timestamp
//
// Err marks turns that record a recovered agent invocation failure; for those
// Content holds a human-readable error message attributed to the failing agent.
type Turn struct {
	ID        string    `json:"id"`
	Speaker   string    `json:"speaker"`
	Content   string    `json:"content"`
	Sequence  int       `json:"sequence"`
	Timestamp time.Time `json:"timestamp"`
	Err       bool      `json:"err,omitempty"`
}

// Transcript is the ordered, append-only history of turns for a single run.
// Insertion order is conversation order. It is safe for concurrent access.
//
// Contract:
//   - Sequence numbers are unique, strictly increasing and assigned here,
//     never by the caller
//   - Appended turns are never mutated or removed
//   - All returns a defensive copy so repeated reads observe the same
//     ordered sequence without consumption side effects.
type Transcript struct {
	turns []Turn
	mu    sync.RWMutex
}

// NewTranscript creates an empty transcript.
func NewTranscript() *Transcript { return &Transcript{turns: []Turn{}} }

// Append stores a new turn for the given speaker, assigning the next sequence
// number, and returns the stored turn. It always succeeds.
func (t *Transcript) Append(speaker, content string) Turn {
	return t.append(speaker, content, false)
}

// AppendError records a recovered invocation failure as a visible turn
// attributed to the failing speaker.
func (t *Transcript) AppendError(speaker, message string) Turn {
	return t.append(speaker, message, true)
}

func (t *Transcript) append(speaker, content string, failed bool) Turn {
	t.mu.Lock()
	defer t.mu.Unlock()

	turn := Turn{
		ID:        uuid.NewString(),
		Speaker:   speaker,
		Content:   content,
		Sequence:  len(t.turns),
		Timestamp: time.Now().UTC(),
		Err:       failed,
	}
	t.turns = append(t.turns, turn)

	return turn
}

// All returns a copy of the full turn slice in append order.
func (t *Transcript) All() []Turn {
	t.mu.RLock()
	defer t.mu.RUnlock()
	turns := make([]Turn, len(t.turns))
	copy(turns, t.turns)
	return turns
}

// Len returns the number of turns appended so far.
func (t *Transcript) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.turns)
}

// Last returns the most recently appended turn and true, or a zero turn and
// false when the transcript is empty.
func (t *Transcript) Last() (Turn, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if len(t.turns) == 0 {
		return Turn{}, false
	}
	return t.turns[len(t.turns)-1], true
}

// Render produces a plain text view of the conversation, one "speaker: content"
// line per turn. This is the representation handed to decision functions and
// remote responders.
func (t *Transcript) Render() string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var sb strings.Builder
	for i, turn := range t.turns {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(turn.Speaker)
		sb.WriteString(": ")
		sb.WriteString(turn.Content)
	}
	return sb.String()
}
